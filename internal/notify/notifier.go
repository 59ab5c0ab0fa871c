// Package notify is the notification sink: every credential and directory
// operation reports its outcome to the user through a Notifier.
package notify

import (
	"fmt"
	"io"
)

// Notifier surfaces operation outcomes to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// ConsoleNotifier writes outcomes to w, one line each.
type ConsoleNotifier struct {
	w io.Writer
}

func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

func (n *ConsoleNotifier) Success(msg string) {
	fmt.Fprintf(n.w, "[ok] %s\n", msg)
}

func (n *ConsoleNotifier) Error(msg string) {
	fmt.Fprintf(n.w, "[error] %s\n", msg)
}
