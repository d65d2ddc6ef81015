package helpers_test

import (
	"bytes"
	"log/slog"
	"testing"
)

// CaptureLogs routes the default slog logger into a buffer at debug level for
// the duration of the test.
func CaptureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	previous := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(previous)
	})

	var logOutput bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&logOutput, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &logOutput
}
