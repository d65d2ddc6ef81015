package helpers_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTempFileWithContents writes content to a new file in the test's
// temporary directory and returns its path. The directory, file included, is
// removed when the test is done.
func CreateTempFileWithContents(t *testing.T, content string) string {
	t.Helper()

	file, err := os.CreateTemp(t.TempDir(), "truth-table-test-*.yaml")
	require.NoError(t, err)

	_, err = file.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, file.Close())

	return file.Name()
}
