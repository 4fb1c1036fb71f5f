package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/wandersoul/internal/planner"
)

// loader tracks in-flight requests. The spinner shows while at least one
// scope is open, labelled by the most recent one.
type loader struct {
	next   uint64
	open   map[uint64]string
	latest uint64
}

func newLoader() loader {
	return loader{open: make(map[uint64]string)}
}

// begin opens a scope and returns its token
func (l *loader) begin(label string) uint64 {
	l.next++
	l.open[l.next] = label
	l.latest = l.next
	return l.next
}

// end closes a scope. Unknown tokens are ignored.
func (l *loader) end(token uint64) {
	delete(l.open, token)
}

func (l loader) busy() bool {
	return len(l.open) > 0
}

// label returns the text of the newest open scope
func (l loader) label() string {
	if label, ok := l.open[l.latest]; ok {
		return label
	}
	var newest uint64
	for token := range l.open {
		if token > newest {
			newest = token
		}
	}
	return l.open[newest]
}

// scopedResult wraps the message of a scoped command together with the scope
// it must release. Update releases the scope before handling the inner message.
type scopedResult struct {
	token uint64
	msg   tea.Msg
}

// scoped runs fn as a command whose scope is always released: on success, on
// error and on panic. A panic reaches the user as a transport failure built by onPanic.
func scoped(token uint64, fn func(ctx context.Context) tea.Msg, onPanic func(err error) tea.Msg) tea.Cmd {
	return func() (out tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				err := &planner.TransportError{Op: "request", Err: fmt.Errorf("panic: %v", r)}
				out = scopedResult{token: token, msg: onPanic(err)}
			}
		}()
		return scopedResult{token: token, msg: fn(context.Background())}
	}
}
