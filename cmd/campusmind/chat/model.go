// Package chat provides the interactive terminal interface for campusmind.
// The interface is split across files in the usual way:
//   - model.go: types, constructor, Init
//   - update.go: Update loop and key handling
//   - view.go: rendering
//   - process.go: async query submission
package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"campusmind/cmd/campusmind/ui"
	"campusmind/internal/api"
	"campusmind/internal/config"
	"campusmind/internal/conversation"
)

// ViewMode determines which view is active.
type ViewMode int

const (
	ConsentView ViewMode = iota
	ChatView
	ProfessorView
)

// Phase is the submission state machine each view runs independently:
// Idle -> Submitting -> (Success | Failed) -> Idle. The Submitting phase is
// the only concurrency guard; there is no request cancellation, so a late
// response still applies.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSuccess
	PhaseFailed
)

// Professor form field indexes.
const (
	fieldFirstName = iota
	fieldLastName
	fieldCollege
	fieldQuestion
	fieldCount
)

// User-facing error strings. Transport failures are generic on purpose;
// there is no status-code-specific branching.
const (
	chatErrText       = "Failed to get a response. Please try again or rephrase your question."
	professorErrText  = "Failed to get professor information. Please try again or check your search details."
	validationErrText = "Please fill in all required fields."
)

// Config holds everything the interface needs at startup.
type Config struct {
	Client       *api.Client
	Settings     *config.Settings
	SettingsPath string
	Styles       ui.Styles
	Logger       *zap.Logger
}

// Model is the bubbletea model for the whole client.
type Model struct {
	// UI components
	input    textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	fields   [fieldCount]textinput.Model
	styles   ui.Styles
	renderer *glamour.TermRenderer

	viewMode ViewMode
	width    int
	height   int
	ready    bool

	// Consent gate
	consentChoice int // 0 = agree, 1 = decline

	// Chat view state
	log       *conversation.Log
	chatPhase Phase
	chatErr   string

	// Professor view state
	focusIdx          int
	profPhase         Phase
	profErr           string
	profResult        *conversation.Turn
	hasPreviousSearch bool

	showSources bool

	// Backend
	client       *api.Client
	settings     *config.Settings
	settingsPath string
	logger       *zap.Logger
}

// New builds the initial model. The consent gate is skipped when the user
// already decided in an earlier session.
func New(cfg Config) Model {
	styles := cfg.Styles

	input := textarea.New()
	input.Placeholder = "Ask about professors, programs, transfers, and more at CUNY & SUNY schools..."
	input.CharLimit = 2000
	input.SetHeight(2)
	input.ShowLineNumbers = false
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	var fields [fieldCount]textinput.Model
	placeholders := [fieldCount]string{
		"Enter first name",
		"Enter last name",
		"Enter college or university name",
		"What would you like to know? Leave blank for general information.",
	}
	for i := range fields {
		fields[i] = textinput.New()
		fields[i].Placeholder = placeholders[i]
		fields[i].CharLimit = 200
		fields[i].Width = 50
	}
	fields[fieldFirstName].Focus()

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m := Model{
		input:        input,
		spinner:      sp,
		fields:       fields,
		styles:       styles,
		log:          conversation.NewLog(),
		showSources:  true,
		client:       cfg.Client,
		settings:     cfg.Settings,
		settingsPath: cfg.SettingsPath,
		logger:       logger,
	}

	if cfg.Settings.ConsentDecided() {
		m.viewMode = ChatView
	} else {
		m.viewMode = ConsentView
	}
	return m
}

// Init starts the spinner and cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}
