package components

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nandinis/edudeck/internal/ui/theme"
)

// ToastKind selects the toast's styling.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
)

// ToastExpiredMsg is emitted when a toast's display time is up. The
// sequence number guards against a stale expiry dismissing a newer
// toast.
type ToastExpiredMsg struct {
	Seq int
}

// Toast is a transient notification line. The zero value is an empty,
// hidden toast.
type Toast struct {
	message string
	kind    ToastKind
	seq     int
}

// Show replaces the current toast and returns a command that expires
// it after the given duration.
func (t *Toast) Show(message string, kind ToastKind, after time.Duration) tea.Cmd {
	t.message = message
	t.kind = kind
	t.seq++
	seq := t.seq
	return tea.Tick(after, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Seq: seq}
	})
}

// Update dismisses the toast when its own expiry message arrives.
func (t *Toast) Update(msg tea.Msg) {
	if m, ok := msg.(ToastExpiredMsg); ok && m.Seq == t.seq {
		t.message = ""
	}
}

// Visible reports whether the toast has something to show.
func (t Toast) Visible() bool {
	return t.message != ""
}

// View renders the toast, or an empty string when hidden.
func (t Toast) View() string {
	if t.message == "" {
		return ""
	}
	color := theme.Secondary
	switch t.kind {
	case ToastSuccess:
		color = theme.Success
	case ToastError:
		color = theme.Error
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Render(t.message)
}
