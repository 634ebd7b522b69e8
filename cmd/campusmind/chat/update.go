package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"campusmind/internal/api"
	"campusmind/internal/conversation"
)

const (
	headerHeight = 1
	footerHeight = 1
	inputHeight  = 3
)

// Update is the bubbletea event loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case spinner.TickMsg:
		if m.chatPhase == PhaseSubmitting || m.profPhase == PhaseSubmitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case queryResultMsg:
		m.chatPhase = PhaseSuccess
		m.chatErr = ""
		m.log.AppendAssistant(msg.resp.Response, msg.resp.AgentType, msg.resp.Sources)
		m.input.Focus()
		m.refreshViewport()
		m.viewport.GotoBottom()
		return m, textarea.Blink

	case queryErrMsg:
		// Terminal for this submission: history is untouched, the input is
		// re-enabled, and the error line shows a generic remediation.
		m.chatPhase = PhaseFailed
		m.chatErr = chatErrText
		m.logger.Warn("chat query failed", zap.Error(msg.err))
		m.input.Focus()
		return m, textarea.Blink

	case professorResultMsg:
		m.profPhase = PhaseSuccess
		m.profErr = ""
		turn := conversation.NewAssistantTurn(msg.resp.Response, msg.resp.AgentType, msg.resp.Sources)
		m.profResult = &turn
		m.hasPreviousSearch = true
		return m, nil

	case professorErrMsg:
		m.profPhase = PhaseFailed
		m.profErr = professorErrText
		m.logger.Warn("professor query failed", zap.Error(msg.err))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocusedComponent(msg)
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	vpHeight := msg.Height - headerHeight - footerHeight - inputHeight - 2
	if vpHeight < 3 {
		vpHeight = 3
	}
	if !m.ready {
		m.viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = vpHeight
	}

	m.input.SetWidth(msg.Width - 4)

	// Rebuild the markdown renderer at the new word wrap width.
	m.renderer, _ = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(msg.Width-4),
	)
	m.refreshViewport()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	}

	switch m.viewMode {
	case ConsentView:
		return m.handleConsentKey(msg)
	case ChatView:
		return m.handleChatKey(msg)
	case ProfessorView:
		return m.handleProfessorKey(msg)
	}
	return m, nil
}

func (m Model) handleConsentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "right", "tab", "shift+tab":
		m.consentChoice = 1 - m.consentChoice
	case "y":
		m.saveConsent(true)
		m.viewMode = ChatView
	case "n":
		m.saveConsent(false)
		m.viewMode = ChatView
	case "enter":
		m.saveConsent(m.consentChoice == 0)
		m.viewMode = ChatView
	}
	return m, nil
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+t":
		if m.chatPhase != PhaseSubmitting {
			m.viewMode = ProfessorView
		}
		return m, nil
	case "ctrl+s":
		m.showSources = !m.showSources
		m.refreshViewport()
		return m, nil
	case "enter":
		return m.submitChat()
	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.chatPhase == PhaseSubmitting {
		// Input is disabled while a request is in flight.
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitChat runs the Idle -> Submitting transition: blank input is
// ignored, the user turn is appended, the input clears, and further
// submission is disabled until the request resolves.
func (m Model) submitChat() (tea.Model, tea.Cmd) {
	if m.chatPhase == PhaseSubmitting {
		return m, nil
	}
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	m.log.AppendUser(text)
	m.input.Reset()
	m.chatPhase = PhaseSubmitting
	m.chatErr = ""
	m.refreshViewport()
	m.viewport.GotoBottom()

	return m, tea.Batch(m.submitQuery(text), m.spinner.Tick)
}

func (m Model) handleProfessorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+t":
		if m.profPhase != PhaseSubmitting {
			m.viewMode = ChatView
		}
		return m, nil
	case "tab", "down":
		m.focusField((m.focusIdx + 1) % fieldCount)
		return m, nil
	case "shift+tab", "up":
		m.focusField((m.focusIdx + fieldCount - 1) % fieldCount)
		return m, nil
	case "enter":
		return m.submitProfessor()
	case "ctrl+n":
		if m.hasPreviousSearch && m.profPhase != PhaseSubmitting {
			m.resetProfessorForm()
		}
		return m, nil
	}

	if m.profPhase == PhaseSubmitting {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[m.focusIdx], cmd = m.fields[m.focusIdx].Update(msg)
	return m, cmd
}

func (m *Model) focusField(idx int) {
	m.fields[m.focusIdx].Blur()
	m.focusIdx = idx
	m.fields[m.focusIdx].Focus()
}

// submitProfessor validates the required fields locally; a validation
// failure never issues a network call.
func (m Model) submitProfessor() (tea.Model, tea.Cmd) {
	if m.profPhase == PhaseSubmitting {
		return m, nil
	}

	q := api.ProfessorQuery{
		FirstName:   strings.TrimSpace(m.fields[fieldFirstName].Value()),
		LastName:    strings.TrimSpace(m.fields[fieldLastName].Value()),
		CollegeName: strings.TrimSpace(m.fields[fieldCollege].Value()),
		Question:    strings.TrimSpace(m.fields[fieldQuestion].Value()),
	}
	if q.FirstName == "" || q.LastName == "" || q.CollegeName == "" {
		m.profErr = validationErrText
		return m, nil
	}

	m.profPhase = PhaseSubmitting
	m.profErr = ""

	return m, tea.Batch(m.submitProfessorQuery(q), m.spinner.Tick)
}

// resetProfessorForm clears fields, result, and error back to Idle.
func (m *Model) resetProfessorForm() {
	for i := range m.fields {
		m.fields[i].Reset()
	}
	m.focusField(fieldFirstName)
	m.profResult = nil
	m.profErr = ""
	m.profPhase = PhaseIdle
	m.hasPreviousSearch = false
}

func (m Model) updateFocusedComponent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch m.viewMode {
	case ChatView:
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	case ProfessorView:
		m.fields[m.focusIdx], cmd = m.fields[m.focusIdx].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}
