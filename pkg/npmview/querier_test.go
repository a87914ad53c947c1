package npmview

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/npmkit/pkg/observability"
)

// writeScript creates an executable shell script standing in for npm.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "npm")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestCommandQuery(t *testing.T) {
	bin := writeScript(t, `echo "  $1|$2|$3  "`+"\n")

	q := NewCommand(bin, nil)
	assert.Equal(t, "view|express|version", q.Query(context.Background(), "express", "version"))
	assert.Equal(t, "view|express|", q.Query(context.Background(), "express", ""))
}

func TestCommandQueryFailure(t *testing.T) {
	bin := writeScript(t, "echo partial\necho 'npm error 404' >&2\nexit 1\n")

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	q := NewCommand(bin, logger)
	assert.Equal(t, "", q.Query(context.Background(), "missing-pkg", "version"))
	assert.Contains(t, buf.String(), "npm view failed")
	assert.Contains(t, buf.String(), "npm error 404")
}

type recordingHooks struct {
	observability.NoopQueryHooks
	started []string
	sizes   []int
	errs    []error
}

func (h *recordingHooks) OnQueryStart(_ context.Context, pkg, field string) {
	h.started = append(h.started, pkg+" "+field)
}

func (h *recordingHooks) OnQueryComplete(_ context.Context, _, _ string, size int, _ time.Duration, err error) {
	h.sizes = append(h.sizes, size)
	h.errs = append(h.errs, err)
}

func TestCommandQueryHooks(t *testing.T) {
	ok := writeScript(t, "echo 4.19.2\n")
	fail := writeScript(t, "exit 1\n")

	hooks := &recordingHooks{}
	observability.SetQueryHooks(hooks)
	t.Cleanup(observability.Reset)

	NewCommand(ok, nil).Query(context.Background(), "express", "version")
	NewCommand(fail, nil).Query(context.Background(), "nope", "license")

	assert.Equal(t, []string{"express version", "nope license"}, hooks.started)
	assert.Equal(t, []int{6, 0}, hooks.sizes)
	assert.NoError(t, hooks.errs[0])
	assert.Error(t, hooks.errs[1])
}

func TestCommandQueryMissingExecutable(t *testing.T) {
	q := NewCommand(filepath.Join(t.TempDir(), "no-such-npm"), nil)
	assert.Equal(t, "", q.Query(context.Background(), "express", "version"))
}

func TestCommandQueryCancelled(t *testing.T) {
	bin := writeScript(t, "echo 1.0.0\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	q := NewCommand(bin, nil)
	assert.Equal(t, "", q.Query(ctx, "express", "version"))
}

func TestNewCommandDefaultsToNpm(t *testing.T) {
	assert.Equal(t, "npm", NewCommand("", nil).bin)
}

func TestFixed(t *testing.T) {
	f := Fixed{"react version": "18.3.1", "react": "full"}
	ctx := context.Background()

	assert.Equal(t, "18.3.1", f.Query(ctx, "react", "version"))
	assert.Equal(t, "full", f.Query(ctx, "react", ""))
	assert.Equal(t, "", f.Query(ctx, "react", "license"))
}
