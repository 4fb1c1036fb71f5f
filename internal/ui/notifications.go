package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ngmaloney/wandersoul/internal/notify"
)

// notify pushes a transient notification and schedules its removal
func (m *Model) notify(message string, severity notify.Severity) tea.Cmd {
	n := m.notices.Push(message, severity)
	m.logger.Debug("notification",
		zap.String("severity", severity.String()),
		zap.String("message", message))
	return tea.Tick(m.notices.TTL(), func(time.Time) tea.Msg {
		return notificationExpiredMsg{id: n.ID}
	})
}

// renderNotifications stacks the active notifications, newest last
func (m Model) renderNotifications() string {
	active := m.notices.Active()
	if len(active) == 0 {
		return ""
	}

	lines := make([]string, 0, len(active))
	for _, n := range active {
		style := notificationStyle.Background(notificationColor(n.Severity))
		lines = append(lines, style.Render(n.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Right, lines...)
}

// notificationHeight is the number of screen rows the stack takes
func (m Model) notificationHeight() int {
	s := m.renderNotifications()
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
