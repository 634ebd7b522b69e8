package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"campusmind/internal/api"
	"campusmind/internal/sources"
)

// askCmd submits a single general query and prints the answer with its
// rendered sources.
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the assistant a single question",
	Long: `Submits one question to the assistant and prints the answer, the
responding subsystem, and any cited sources.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		_, settings, client, err := loadEnvironment(logger)
		if err != nil {
			return err
		}

		resp, err := client.SubmitQuery(context.Background(), question, settings.UserID())
		if err != nil {
			return err
		}

		printResponse(resp)
		return nil
	},
}

func printResponse(resp *api.Response) {
	fmt.Printf("Response from: %s\n\n", sources.AgentTypeLabel(resp.AgentType))
	fmt.Println(strings.TrimSpace(resp.Response))
	fmt.Println()
	fmt.Println("Sources:")
	fmt.Println(sources.RenderMarkdown(resp.Sources))
}
