// Package cli provides terminal adapters for the secondary feedback ports.
// Notifications render as colored lines on stderr so they never interleave
// with tabular command output on stdout.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/example/sgmi/internal/ports/secondary"
)

// ConsoleNotifier renders notifications with a colored marker per kind.
type ConsoleNotifier struct {
	out io.Writer
}

// NewConsoleNotifier returns a notifier writing to stderr.
func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{out: os.Stderr}
}

// NewConsoleNotifierWithOutput returns a notifier writing to the given output.
// This variant allows testing or alternate output destinations.
func NewConsoleNotifierWithOutput(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

func (n *ConsoleNotifier) Notify(message string, kind secondary.NotifyKind) {
	switch kind {
	case secondary.NotifySuccess:
		fmt.Fprintf(n.out, "%s %s\n", color.GreenString("✓"), message)
	case secondary.NotifyError:
		fmt.Fprintf(n.out, "%s %s\n", color.RedString("✗"), message)
	case secondary.NotifyWarning:
		fmt.Fprintf(n.out, "%s %s\n", color.YellowString("!"), message)
	default:
		fmt.Fprintf(n.out, "%s %s\n", color.CyanString("·"), message)
	}
}

// Ensure ConsoleNotifier implements the interface
var _ secondary.Notifier = (*ConsoleNotifier)(nil)

// ConsoleConfirmer prompts on stderr and reads a y/n answer from stdin.
// Anything other than an explicit yes is a decline.
type ConsoleConfirmer struct {
	in  io.Reader
	out io.Writer
}

// NewConsoleConfirmer returns a confirmer bound to stdin/stderr.
func NewConsoleConfirmer() *ConsoleConfirmer {
	return &ConsoleConfirmer{in: os.Stdin, out: os.Stderr}
}

// NewConsoleConfirmerWithIO returns a confirmer bound to the given streams.
// This variant allows testing with scripted answers.
func NewConsoleConfirmerWithIO(in io.Reader, out io.Writer) *ConsoleConfirmer {
	return &ConsoleConfirmer{in: in, out: out}
}

func (c *ConsoleConfirmer) Confirm(message string) bool {
	fmt.Fprintf(c.out, "%s [y/N] ", message)
	reader := bufio.NewReader(c.in)
	answer, err := reader.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes" || answer == "s" || answer == "sim"
}

// Ensure ConsoleConfirmer implements the interface
var _ secondary.Confirmer = (*ConsoleConfirmer)(nil)
