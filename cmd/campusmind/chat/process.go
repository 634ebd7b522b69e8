package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"campusmind/internal/api"
)

// Messages delivered back into the update loop when a query resolves.
type (
	queryResultMsg     struct{ resp *api.Response }
	queryErrMsg        struct{ err error }
	professorResultMsg struct{ resp *api.Response }
	professorErrMsg    struct{ err error }
)

// submitQuery issues a general query off the event loop. The client applies
// its own timeout; there is no cancellation once the command is running.
func (m Model) submitQuery(text string) tea.Cmd {
	client := m.client
	userID := m.settings.UserID()
	return func() tea.Msg {
		resp, err := client.SubmitQuery(context.Background(), text, userID)
		if err != nil {
			return queryErrMsg{err: err}
		}
		return queryResultMsg{resp: resp}
	}
}

// submitProfessorQuery issues a professor search off the event loop.
func (m Model) submitProfessorQuery(q api.ProfessorQuery) tea.Cmd {
	client := m.client
	userID := m.settings.UserID()
	return func() tea.Msg {
		resp, err := client.SubmitProfessorQuery(context.Background(), q, userID)
		if err != nil {
			return professorErrMsg{err: err}
		}
		return professorResultMsg{resp: resp}
	}
}

// saveConsent persists the decision. A write failure is logged, not shown;
// the in-memory flag still governs this session.
func (m *Model) saveConsent(granted bool) {
	m.settings.SetConsent(granted)
	if err := m.settings.Save(m.settingsPath); err != nil {
		m.logger.Warn("failed to persist consent decision", zap.Error(err))
	}
}
