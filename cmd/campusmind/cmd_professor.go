package main

import (
	"context"

	"github.com/spf13/cobra"

	"campusmind/internal/api"
)

var (
	profFirstName string
	profLastName  string
	profCollege   string
	profQuestion  string
)

// professorCmd submits a single professor search.
var professorCmd = &cobra.Command{
	Use:   "professor",
	Short: "Look up a professor",
	Long: `Searches the professor database. First name, last name, and college
are required; the question is optional and defaults to a general lookup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, settings, client, err := loadEnvironment(logger)
		if err != nil {
			return err
		}

		resp, err := client.SubmitProfessorQuery(context.Background(), api.ProfessorQuery{
			FirstName:   profFirstName,
			LastName:    profLastName,
			CollegeName: profCollege,
			Question:    profQuestion,
		}, settings.UserID())
		if err != nil {
			return err
		}

		printResponse(resp)
		return nil
	},
}

func init() {
	professorCmd.Flags().StringVar(&profFirstName, "first", "", "professor's first name (required)")
	professorCmd.Flags().StringVar(&profLastName, "last", "", "professor's last name (required)")
	professorCmd.Flags().StringVar(&profCollege, "college", "", "college or university name (required)")
	professorCmd.Flags().StringVar(&profQuestion, "question", "", "what to ask about the professor")

	_ = professorCmd.MarkFlagRequired("first")
	_ = professorCmd.MarkFlagRequired("last")
	_ = professorCmd.MarkFlagRequired("college")
}
