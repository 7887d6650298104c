package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points config lookups at an empty home and moves into a fresh
// working directory.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("npm_config_user_agent", "")
	t.Setenv("CREATE_EXPRESS_NO_COLOR", "true")
	wd := t.TempDir()
	t.Chdir(wd)
	return wd
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHelpListsTemplates(t *testing.T) {
	wd := isolate(t)

	out, err := execute(t, "", "--help")
	if err != nil {
		t.Fatalf("help failed: %v", err)
	}
	for _, want := range []string{"Create Express\n", "Usage: create-express [OPTION] [DIRECTORY]", "--template NAME", "CREATE_EXPRESS_LOG_LEVEL", "CREATE_EXPRESS_NO_COLOR", "--overwrite", "Available templates:", "basic", "api"} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q:\n%s", want, out)
		}
	}

	entries, _ := os.ReadDir(wd)
	if len(entries) != 0 {
		t.Errorf("help should not write files, found %d entries", len(entries))
	}
}

func TestVersionFlag(t *testing.T) {
	isolate(t)

	out, err := execute(t, "", "--version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "create-express version ") {
		t.Errorf("unexpected version output %q", out)
	}
}

func TestCreateWithFlags(t *testing.T) {
	wd := isolate(t)
	t.Setenv("npm_config_user_agent", "pnpm/9.1.0 npm/? node/v20.11.0 linux x64")

	out, err := execute(t, "", "my-app", "--template", "api")
	if err != nil {
		t.Fatalf("create failed: %v\n%s", err, out)
	}

	for _, rel := range []string{"package.json", "src/server.js", ".gitignore", ".env.example"} {
		if _, err := os.Stat(filepath.Join(wd, "my-app", rel)); err != nil {
			t.Errorf("expected %s to exist: %v", rel, err)
		}
	}
	for _, want := range []string{"Done. Now run:", "cd my-app", "pnpm install", "pnpm run dev"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCreateCancelledOnClosedInput(t *testing.T) {
	wd := isolate(t)

	out, err := execute(t, "")
	if err != nil {
		t.Fatalf("cancel should not be an error: %v", err)
	}
	if !strings.Contains(out, "Operation cancelled") {
		t.Errorf("output missing cancellation notice:\n%s", out)
	}

	entries, _ := os.ReadDir(wd)
	if len(entries) != 0 {
		t.Errorf("cancelled run wrote %d entries", len(entries))
	}
}

func TestTooManyArguments(t *testing.T) {
	isolate(t)

	if _, err := execute(t, "", "one", "two"); err == nil {
		t.Fatal("expected error for two positional arguments")
	}
}
