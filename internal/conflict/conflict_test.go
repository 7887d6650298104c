package conflict

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/expresskit/create-express/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter answers Select with a fixed value and records requests.
type scriptedPrompter struct {
	answer   prompt.Result[string]
	requests []prompt.SelectRequest
}

func (s *scriptedPrompter) Text(prompt.TextRequest) (prompt.Result[string], error) {
	panic("Text should not be called")
}

func (s *scriptedPrompter) Select(req prompt.SelectRequest) (prompt.Result[string], error) {
	s.requests = append(s.requests, req)
	return s.answer, nil
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestIsEmpty(t *testing.T) {
	t.Run("fresh directory", func(t *testing.T) {
		empty, err := IsEmpty(t.TempDir())
		require.NoError(t, err)
		assert.True(t, empty)
	})

	t.Run("only .git", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
		empty, err := IsEmpty(dir)
		require.NoError(t, err)
		assert.True(t, empty)
	})

	t.Run(".git plus a file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
		writeFile(t, filepath.Join(dir, "README.md"))
		empty, err := IsEmpty(dir)
		require.NoError(t, err)
		assert.False(t, empty)
	})

	t.Run("other dot directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".hg"), 0755))
		empty, err := IsEmpty(dir)
		require.NoError(t, err)
		assert.False(t, empty)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := IsEmpty(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})
}

func TestResolve_NoConflict(t *testing.T) {
	p := &scriptedPrompter{}

	res, err := Resolve(filepath.Join(t.TempDir(), "missing"), "missing", false, p)
	require.NoError(t, err)
	assert.Equal(t, Ignore, res.Value)

	res, err = Resolve(t.TempDir(), "empty", false, p)
	require.NoError(t, err)
	assert.Equal(t, Ignore, res.Value)
	assert.Empty(t, p.requests)
}

func TestResolve_ForceSkipsPrompt(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "old.txt"))
	p := &scriptedPrompter{}

	res, err := Resolve(dir, "app", true, p)
	require.NoError(t, err)
	assert.Equal(t, Purge, res.Value)
	assert.Empty(t, p.requests)
}

func TestResolve_PromptChoices(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "old.txt"))

	for _, want := range []Disposition{Abort, Purge, Ignore} {
		p := &scriptedPrompter{answer: prompt.Answer(want.String())}
		res, err := Resolve(dir, "my-app", false, p)
		require.NoError(t, err)
		assert.False(t, res.Cancelled)
		assert.Equal(t, want, res.Value)

		require.Len(t, p.requests, 1)
		req := p.requests[0]
		assert.Equal(t, `Target directory "my-app" is not empty. Please choose how to proceed:`, req.Message)
		require.Len(t, req.Options, 3)
		assert.Equal(t, "Cancel operation", req.Options[0].Label)
		assert.Equal(t, "Remove existing files and continue", req.Options[1].Label)
		assert.Equal(t, "Ignore files and continue", req.Options[2].Label)
	}
}

func TestResolve_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "old.txt"))
	p := &scriptedPrompter{answer: prompt.Cancel[string]()}

	res, err := Resolve(dir, ".", false, p)
	require.NoError(t, err)
	assert.True(t, res.Cancelled)
}

func TestMessage_CurrentDirectory(t *testing.T) {
	assert.Equal(t, "Current directory is not empty. Please choose how to proceed:", message("."))
}

func TestPurge_KeepsGitDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".git", "HEAD"))
	writeFile(t, filepath.Join(dir, "index.js"))
	writeFile(t, filepath.Join(dir, "src", "deep", "file.js"))
	writeFile(t, filepath.Join(dir, ".env"))

	require.NoError(t, EmptyDir(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".git", entries[0].Name())
	assert.FileExists(t, filepath.Join(dir, ".git", "HEAD"))
}

func TestPurge_MissingDirectory(t *testing.T) {
	assert.NoError(t, EmptyDir(filepath.Join(t.TempDir(), "missing")))
}
