//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/expresskit/create-express/internal/create"
	"github.com/expresskit/create-express/internal/prompt"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // HOME, so no user config file is picked up
	WorkDir string // working directory the run is started from
}

// setupTestEnv creates isolated temp directories so runs never touch the
// real home or working directory.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)
	t.Setenv("CREATE_EXPRESS_NO_COLOR", "true")
	return env
}

// runCreate drives one run through a real console fed with stdin.
// It returns the outcome and everything written to the terminal.
func runCreate(t *testing.T, env *testEnv, stdin string, opts create.Options) (*create.Outcome, string, error) {
	t.Helper()

	var out bytes.Buffer
	runner := &create.Runner{UI: prompt.NewConsole(strings.NewReader(stdin), &out)}
	opts.Cwd = env.WorkDir
	outcome, err := runner.Run(opts)
	return outcome, out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("expected directory to exist: %s", path)
		return
	}
	if err == nil && !info.IsDir() {
		t.Errorf("expected %s to be a directory", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("expected %s to contain %q, got:\n%s", path, substr, string(data))
	}
}
