package integration

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tacogips/xenon/internal/cli"
)

// copyFixtureToTemp copies a fixture project directory to a temp directory
// and returns the absolute path of the copy.
func copyFixtureToTemp(t *testing.T, fixtureName string) string {
	t.Helper()

	fixtureDir, err := filepath.Abs(filepath.Join("../fixtures/projects", fixtureName))
	require.NoError(t, err, "failed to get fixture path")

	destDir := filepath.Join(t.TempDir(), fixtureName)

	err = filepath.Walk(fixtureDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(fixtureDir, path)
		if err != nil {
			return err
		}
		destPath := filepath.Join(destDir, relPath)

		if info.IsDir() {
			return os.MkdirAll(destPath, 0o755)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(destPath, data, 0o644)
	})
	require.NoError(t, err, "failed to copy fixture")

	return destDir
}

// runXenon runs the root command with args and returns stdout and stderr.
func runXenon(t *testing.T, opts []cli.Option, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := cli.NewRootCommand(append([]cli.Option{cli.WithOutput(&out, &errOut)}, opts...)...)
	cmd.SetArgs(append([]string{"--settings", filepath.Join(t.TempDir(), "settings.yaml")}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
