package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const Prompt = "Enter a logical formula (e.g., P & Q -> R, !A | B):"

type TUI struct {
	input  *bufio.Reader
	output io.Writer
}

func New() *TUI {
	return NewWithStreams(os.Stdin, os.Stdout)
}

func NewWithStreams(input io.Reader, output io.Writer) *TUI {
	return &TUI{
		input:  bufio.NewReader(input),
		output: output,
	}
}

// AskForFormula prints the prompt, when showPrompt is set, and reads one line
// of input. The trailing line break is dropped, everything else is kept as
// typed.
func (t *TUI) AskForFormula(showPrompt bool) (string, error) {
	if showPrompt {
		fmt.Fprintf(t.output, "%s\n\n", Prompt)
	}

	line, err := t.input.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		slog.Error("failed to read user input", "error", err)
		return "", fmt.Errorf("failed to read formula: %w", err)
	}

	if showPrompt {
		fmt.Fprintln(t.output)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
