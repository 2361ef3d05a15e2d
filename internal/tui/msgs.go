package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// refreshedMsg signals that a Refresh settled.
type refreshedMsg struct{ err error }

// mutatedMsg signals that a create/update/delete/toggle settled.
type mutatedMsg struct{ err error }

// generatedMsg signals that an AI prompt settled.
type generatedMsg struct {
	count int
	err   error
}

// noticeMsg carries one store notification into the event loop.
type noticeMsg struct {
	isErr bool
	text  string
}

// notifier adapts the store's Notifier interface to bubbletea messages.
// Notifications are buffered on a channel the model drains with wait().
type notifier struct {
	ch chan noticeMsg
}

func newNotifier() *notifier {
	return &notifier{ch: make(chan noticeMsg, 16)}
}

func (n *notifier) Success(msg string) {
	select {
	case n.ch <- noticeMsg{text: msg}:
	default:
	}
}

func (n *notifier) Error(msg string) {
	select {
	case n.ch <- noticeMsg{isErr: true, text: msg}:
	default:
	}
}

// wait returns a command that delivers the next notification.
func (n *notifier) wait() tea.Cmd {
	return func() tea.Msg {
		return <-n.ch
	}
}
