package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/npmkit/pkg/errors"
)

const lockV3 = `{
  "name": "my-app",
  "lockfileVersion": 3,
  "packages": {
    "": {"name": "my-app"},
    "node_modules/chalk": {"version": "5.3.0"},
    "node_modules/react": {"version": "18.3.1"}
  }
}`

func TestLockCommand(t *testing.T) {
	isolateEnv(t)
	dir := projectDir(t, map[string]string{"package.json": appManifest, "package-lock.json": lockV3})

	out, err := execute(t, "lock", "-C", dir)
	require.NoError(t, err)
	for _, s := range []string{
		"OK package.json found.",
		"OK package-lock.json found.",
		"- Lockfile Version: 3",
		"- Total Packages Locked: 2",
		"- Key Dependency (chalk) Version Locked: 5.3.0",
		"- Integrity Check: PASS",
	} {
		assert.Contains(t, out, s)
	}
}

func TestLockCommandJSON(t *testing.T) {
	isolateEnv(t)
	dir := projectDir(t, map[string]string{"package.json": appManifest, "package-lock.json": lockV3})

	doc := executeJSON(t, "lock", "-C", dir, "--package=react")
	assert.Equal(t, map[string]any{
		"lockfileVersion": "3", "totalPackages": float64(2), "package": "react", "lockedVersion": "18.3.1",
	}, doc["data"])

	doc = executeJSON(t, "lock", "-C", dir, "--package=lodash")
	assert.Equal(t, "N/A", doc["data"].(map[string]any)["lockedVersion"])
}

func TestLockCommandUnknownCount(t *testing.T) {
	isolateEnv(t)
	dir := projectDir(t, map[string]string{"package.json": appManifest, "package-lock.json": `{"dependencies": {}}`})

	out, err := execute(t, "lock", "-C", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "- Lockfile Version: N/A")
	assert.Contains(t, out, "- Total Packages Locked: Unknown")
	assert.Contains(t, out, "Version Locked: N/A")
}

func TestLockCommandMissingFiles(t *testing.T) {
	isolateEnv(t)

	t.Run("no package.json", func(t *testing.T) {
		out, err := execute(t, "lock", "-C", t.TempDir())
		assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
		assert.Contains(t, out, "ERR package.json NOT found! This is critical.")
	})

	t.Run("no lockfile", func(t *testing.T) {
		dir := projectDir(t, map[string]string{"package.json": appManifest})
		out, err := execute(t, "lock", "-C", dir)
		assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
		assert.Contains(t, out, "OK package.json found.")
		assert.Contains(t, out, "ERR package-lock.json NOT found! Your builds are NOT deterministic.")
		assert.Contains(t, out, "Run 'npm install' to generate it")
	})
}
