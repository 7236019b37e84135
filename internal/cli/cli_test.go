package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wslaunch/pkg/errors"
	"github.com/arthur-debert/wslaunch/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestYAML = `
id: demo
owner_id: alice
structure:
  - type: directory
    name: src
    children:
      - name: index.txt
        content: "\n  hello\n  world\n"
`

// setup runs the test inside a fresh working directory holding
// workspace.yaml and isolates config and log locations.
func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testChdir(t, dir)
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	for _, name := range []string{
		"WORKSPACE_LAUNCH_SERVER",
		"WORKSPACE_LAUNCH_OWNER_ID",
		"WORKSPACE_LAUNCH_DATA_ROOT",
		"WORKSPACE_LAUNCH_STORE__BACKEND",
		"WORKSPACE_LAUNCH_LOGGING__VERBOSITY",
	} {
		t.Setenv(name, "")
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "workspace.yaml"), []byte(manifestYAML), 0644))
	return dir
}

func run(t *testing.T, reg *registry.Registry, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(reg)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"-o", "text"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestMaterialize(t *testing.T) {
	dir := setup(t)
	reg := registry.New()

	out, err := run(t, reg, "materialize", "workspace.yaml")
	require.NoError(t, err)
	assert.Equal(t,
		"Materialized .workspace-launch/templates/demo\n"+
			"vscode://Kodai-Yamamoto-SIW.workspace-launch-by-link/start?server=http%3A%2F%2Flocalhost%3A8787&workspaceId=demo&ownerId=alice\n",
		out)

	data, err := os.ReadFile(filepath.Join(dir, ".workspace-launch", "templates", "demo", "src", "index.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", string(data))

	out, err = run(t, reg, "materialize", "workspace.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Unchanged .workspace-launch/templates/demo\n")
}

func TestMaterialize_FlagsOverrideManifest(t *testing.T) {
	dir := setup(t)
	t.Setenv("WORKSPACE_LAUNCH_SERVER", "http://env:1")

	out, err := run(t, registry.New(), "materialize", "workspace.yaml",
		"--id", "other", "--owner", "bob", "--token", "t", "--data-root", "out")
	require.NoError(t, err)
	assert.Contains(t, out, "Materialized out/templates/other\n")
	assert.Contains(t, out, "server=http%3A%2F%2Fenv%3A1&workspaceId=other&ownerId=bob&token=t")

	_, err = os.Stat(filepath.Join(dir, "out", "templates", "other", "src", "index.txt"))
	assert.NoError(t, err)
}

func TestMaterialize_NoStore(t *testing.T) {
	dir := setup(t)

	out, err := run(t, registry.New(), "materialize", "workspace.yaml", "--store", "none")
	require.NoError(t, err)
	assert.Contains(t, out, "No backing store")
	assert.Contains(t, out, "workspaceId=demo")

	_, err = os.Stat(filepath.Join(dir, ".workspace-launch"))
	assert.True(t, os.IsNotExist(err))
}

func TestMaterialize_JSON(t *testing.T) {
	setup(t)

	var out bytes.Buffer
	cmd := newRootCmd(registry.New())
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"materialize", "workspace.yaml", "-o", "json"})
	require.NoError(t, cmd.Execute())

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "demo", got["id"])
	assert.Equal(t, true, got["materialized"])
	assert.Equal(t, ".workspace-launch/templates/demo", got["location"])
}

func TestMaterialize_InvalidManifest(t *testing.T) {
	dir := setup(t)
	bad := "id: x\nstructure:\n  - name: ..\n    children:\n      - name: f\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(bad), 0644))

	_, err := run(t, registry.New(), "materialize", "bad.yaml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathTraversal))

	_, err = os.Stat(filepath.Join(dir, ".workspace-launch"))
	assert.True(t, os.IsNotExist(err))
}

func TestPlan(t *testing.T) {
	dir := setup(t)

	out, err := run(t, registry.New(), "plan", "workspace.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "demo\n")
	assert.Contains(t, out, "src/")
	assert.Contains(t, out, "index.txt")
	assert.Contains(t, out, "sha256:")

	_, err = os.Stat(filepath.Join(dir, ".workspace-launch"))
	assert.True(t, os.IsNotExist(err))
}

func TestDiff(t *testing.T) {
	dir := setup(t)
	reg := registry.New()

	out, err := run(t, reg, "diff", "workspace.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "+ src/\n")
	assert.Contains(t, out, "+ src/index.txt\n")

	_, err = run(t, reg, "materialize", "workspace.yaml")
	require.NoError(t, err)
	out, err = run(t, reg, "diff", "workspace.yaml")
	require.NoError(t, err)
	assert.Equal(t, "No changes\n", out)

	extra := filepath.Join(dir, ".workspace-launch", "templates", "demo", "extra.txt")
	require.NoError(t, os.WriteFile(extra, []byte("x"), 0644))
	out, err = run(t, reg, "diff", "workspace.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "- extra.txt\n")

	out, err = run(t, reg, "diff", "workspace.yaml", "--store", "none")
	require.NoError(t, err)
	assert.Equal(t, MsgNoStoreDiff+"\n", out)
}

func TestLink(t *testing.T) {
	setup(t)
	require.NoError(t, os.WriteFile("wslaunch.toml", []byte(`server = "https://cfg.example"`), 0644))

	out, err := run(t, registry.New(), "link", "--id", "a b")
	require.NoError(t, err)
	assert.Equal(t,
		"vscode://Kodai-Yamamoto-SIW.workspace-launch-by-link/start?server=https%3A%2F%2Fcfg.example&workspaceId=a+b&ownerId=ownerId\n",
		out)

	_, err = run(t, registry.New(), "link")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestVersion(t *testing.T) {
	setup(t)
	out, err := run(t, registry.New(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "wslaunch version dev")
	assert.Contains(t, out, "commit:")
}

func TestCompletionAndMan(t *testing.T) {
	setup(t)

	out, err := run(t, registry.New(), "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "wslaunch")

	out, err = run(t, registry.New(), "man")
	require.NoError(t, err)
	assert.Contains(t, out, "WSLAUNCH")
}

func TestUnknownStoreBackend(t *testing.T) {
	setup(t)
	_, err := run(t, registry.New(), "plan", "workspace.yaml", "--store", "tape")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestUnknownOutputFormat(t *testing.T) {
	setup(t)
	_, err := run(t, registry.New(), "plan", "workspace.yaml", "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "xml"`)
}
