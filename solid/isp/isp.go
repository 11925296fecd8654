package isp

import (
	"fmt"
	"io"
)

// Notifier delivers one message to one recipient. That is the whole
// interface; clients that notify do not log, and vice versa.
type Notifier interface {
	Notify(message string) error
}

// Logger records informational and error lines. Two methods, one concern.
type Logger interface {
	Info(message string)
	Error(message string)
}

// out guards against zero-value writers so the toy types stay safe to use
// uninitialized.
func out(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

// EmailNotifier writes email-shaped notifications to Out.
type EmailNotifier struct {
	Out io.Writer
	To  string
}

// Notify implements Notifier.
func (n EmailNotifier) Notify(message string) error {
	_, err := fmt.Fprintf(out(n.Out), "email to %s: %s\n", n.To, message)
	return err
}

// SMSNotifier writes SMS-shaped notifications to Out.
type SMSNotifier struct {
	Out    io.Writer
	Number string
}

// Notify implements Notifier.
func (n SMSNotifier) Notify(message string) error {
	_, err := fmt.Fprintf(out(n.Out), "sms to %s: %s\n", n.Number, message)
	return err
}

// WriterLogger writes leveled lines to Out.
type WriterLogger struct {
	Out io.Writer
}

// Info implements Logger.
func (l WriterLogger) Info(message string) {
	fmt.Fprintf(out(l.Out), "INFO: %s\n", message)
}

// Error implements Logger.
func (l WriterLogger) Error(message string) {
	fmt.Fprintf(out(l.Out), "ERROR: %s\n", message)
}
