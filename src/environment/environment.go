package environment

import (
	"github.com/mattn/go-isatty"
)

var interactiveOverride *bool

// ForceSetIsInteractive overrides the terminal check, mostly for tests.
func ForceSetIsInteractive(value bool) {
	interactiveOverride = &value
}

// ResetIsInteractive drops an override set by ForceSetIsInteractive.
func ResetIsInteractive() {
	interactiveOverride = nil
}

// IsInteractive returns true if a user is typing on input and reading output.
// Both have to be terminals; a pipe, a redirected file or an in-memory buffer
// is never interactive.
func IsInteractive(input, output any) bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return isTerminal(input) && isTerminal(output)
}

type fileDescriptor interface {
	Fd() uintptr
}

func isTerminal(stream any) bool {
	file, ok := stream.(fileDescriptor)
	if !ok {
		return false
	}

	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
