package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"campusmind/internal/conversation"
	"campusmind/internal/sources"
)

// View renders the active view.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	switch m.viewMode {
	case ConsentView:
		return m.renderConsent()
	case ProfessorView:
		return m.renderProfessorView()
	default:
		return m.renderChatView()
	}
}

func (m Model) renderHeader(title string) string {
	return m.styles.Header.Width(m.width).Render(title)
}

func (m Model) renderChatView() string {
	header := m.renderHeader(" CampusMind — University Assistant ")

	var body string
	if m.log.Len() == 0 {
		welcome := m.styles.Title.Render("CampusMind") + "\n" +
			m.styles.Subtitle.Render("Ask about professors, programs, transfers, and more at CUNY & SUNY schools.")
		body = m.styles.Content.Render(welcome)
	} else {
		body = m.viewport.View()
	}

	var status string
	switch {
	case m.chatPhase == PhaseSubmitting:
		status = m.spinner.View() + m.styles.Muted.Render(" Thinking...")
	case m.chatErr != "":
		status = m.styles.Error.Render(m.chatErr)
	}

	footer := m.styles.Footer.Render(
		"enter send · ctrl+t professor search · ctrl+s toggle sources · esc quit")

	parts := []string{header, body}
	if status != "" {
		parts = append(parts, status)
	}
	parts = append(parts, m.input.View(), footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// refreshViewport re-renders the chat history into the viewport.
func (m *Model) refreshViewport() {
	if m.ready {
		m.viewport.SetContent(m.renderHistory())
	}
}

func (m Model) renderHistory() string {
	var sb strings.Builder

	for _, turn := range m.log.Turns() {
		switch turn.Role {
		case conversation.RoleUser:
			userStyle := m.styles.Bold.Foreground(m.styles.Theme.Primary).MarginTop(1)
			sb.WriteString(userStyle.Render("You") + "\n")
			sb.WriteString(m.styles.UserInput.Render(turn.Content))
			sb.WriteString("\n\n")

		default:
			sb.WriteString(m.renderAssistantTurn(turn))
		}
	}

	return sb.String()
}

func (m Model) renderAssistantTurn(turn conversation.Turn) string {
	var sb strings.Builder

	assistantStyle := m.styles.Bold.Foreground(m.styles.Theme.Accent).MarginTop(1)
	sb.WriteString(assistantStyle.Render("CampusMind") + "\n")
	sb.WriteString(m.styles.Muted.Render("Response from: "+sources.AgentTypeLabel(turn.AgentType)) + "\n")
	sb.WriteString(m.safeRenderMarkdown(turn.Content))
	sb.WriteString("\n")

	if m.showSources {
		sb.WriteString(m.safeRenderMarkdown(sources.RenderMarkdown(turn.Sources)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// safeRenderMarkdown renders markdown with panic recovery; glamour has
// crashed on odd input before, and a render failure must degrade to the
// plain text, never to a dead UI.
func (m Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		rendered, err := m.renderer.Render(content)
		if err == nil {
			return rendered
		}
	}
	return content
}

func (m Model) renderProfessorView() string {
	header := m.renderHeader(" CampusMind — Professor Search ")

	labels := [fieldCount]string{
		"First Name*", "Last Name*", "College/University*", "Question (Optional)",
	}
	var form strings.Builder
	for i := range m.fields {
		form.WriteString(m.styles.FormLabel.Render(labels[i]) + "\n")
		form.WriteString(m.fields[i].View() + "\n\n")
	}

	var status string
	switch {
	case m.profPhase == PhaseSubmitting:
		status = m.spinner.View() + m.styles.Muted.Render(" Searching...")
	case m.profErr != "":
		status = m.styles.Error.Render(m.profErr)
	}

	var result string
	if m.profResult != nil {
		result = m.styles.Response.Render(m.renderAssistantTurn(*m.profResult))
	}

	help := "enter search · tab next field · ctrl+t chat · esc quit"
	if m.hasPreviousSearch {
		help = "enter search · tab next field · ctrl+n new search · ctrl+t chat · esc quit"
	}
	footer := m.styles.Footer.Render(help)

	parts := []string{header, m.styles.Content.Render(form.String())}
	if status != "" {
		parts = append(parts, status)
	}
	if result != "" {
		parts = append(parts, result)
	}
	parts = append(parts, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderConsent() string {
	title := m.styles.Title.Render("Help Us Improve Your Experience")

	text := strings.Join([]string{
		"We'd like to store your questions to improve the student experience by:",
		"",
		"  - Identifying frequently asked questions",
		"  - Improving response accuracy",
		"  - Enhancing the knowledge base",
		"",
		m.styles.Subtitle.Render("Your questions will only be used to improve the service and will not be used to train any AI models."),
	}, "\n")

	agree := m.styles.Button.Render("I Agree")
	decline := m.styles.Button.Render("No Thanks")
	if m.consentChoice == 0 {
		agree = m.styles.ButtonSel.Render("I Agree")
	} else {
		decline = m.styles.ButtonSel.Render("No Thanks")
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, agree, "  ", decline)

	panel := m.styles.Panel.Render(
		lipgloss.JoinVertical(lipgloss.Left, title, text, "", buttons))
	footer := m.styles.Footer.Render("left/right choose · enter confirm · y/n shortcuts")

	return lipgloss.JoinVertical(lipgloss.Left, panel, footer)
}
