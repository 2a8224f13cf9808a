package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hay-kot/todo/internal/core/config"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func testFlags(t *testing.T, primary, archive string) (*Flags, string, string) {
	t.Helper()

	dir := t.TempDir()
	primaryPath := filepath.Join(dir, ".todo")
	archivePath := filepath.Join(dir, ".todo.old")
	require.NoError(t, os.WriteFile(primaryPath, []byte(primary), 0o644))
	require.NoError(t, os.WriteFile(archivePath, []byte(archive), 0o644))

	cfg := config.DefaultConfig()
	cfg.Store.Path = primaryPath
	cfg.Store.Archive = archivePath
	cfg.Display.Color = config.ColorNever

	return &Flags{Config: &cfg}, primaryPath, archivePath
}

func newTestApp(flags *Flags, in string, out *bytes.Buffer) *cli.Command {
	app := &cli.Command{
		Name:   "todo",
		Reader: strings.NewReader(in),
		Writer: out,
		Action: NewReplCmd(flags).Run,
	}
	app = NewLsCmd(flags).Register(app)
	app = NewConfigCmd(flags).Register(app)
	return app
}

func TestReplCmd_SavesOnQuit(t *testing.T) {
	flags, primary, archive := testFlags(t, "?task one\n.task two\n\n-task three\n", "-ancient\n")

	input := strings.Join([]string{
		"add task four",
		"delete 1",
		"edit 0 -s 3",
		"quit",
	}, "\n") + "\n"

	var out bytes.Buffer
	app := newTestApp(flags, input, &out)

	require.NoError(t, app.Run(context.Background(), []string{"todo"}))

	primaryData, err := os.ReadFile(primary)
	require.NoError(t, err)
	assert.Equal(t, "!task one\n.task four\n", string(primaryData))

	archiveData, err := os.ReadFile(archive)
	require.NoError(t, err)
	assert.Equal(t, "-ancient\n-task three\n", string(archiveData))

	assert.Contains(t, out.String(), "0) [?] task one\n1) [-] task two\n2) [#] task three\n")
	assert.NotContains(t, out.String(), "\x1b[")
}

func TestReplCmd_SavesWhenCancelled(t *testing.T) {
	flags, primary, archive := testFlags(t, "?task one\n-task two\n", "")

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	var out bytes.Buffer
	app := newTestApp(flags, "", &out)
	app.Reader = pr

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, app.Run(ctx, []string{"todo"}))

	primaryData, err := os.ReadFile(primary)
	require.NoError(t, err)
	assert.Equal(t, "?task one\n", string(primaryData))

	archiveData, err := os.ReadFile(archive)
	require.NoError(t, err)
	assert.Equal(t, "-task two\n", string(archiveData))
}

func TestReplCmd_CreatesMissingStore(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Store.Path = filepath.Join(dir, "sub", "todo")
	cfg.Store.Archive = filepath.Join(dir, "sub", "todo.old")
	cfg.Display.Color = config.ColorNever
	flags := &Flags{Config: &cfg}

	var out bytes.Buffer
	app := newTestApp(flags, "add first\n", &out)

	require.NoError(t, app.Run(context.Background(), []string{"todo"}))

	data, err := os.ReadFile(cfg.Store.Path)
	require.NoError(t, err)
	assert.Equal(t, ".first\n", string(data))
}

func TestLsCmd_Text(t *testing.T) {
	flags, _, _ := testFlags(t, "?task one\n.task two\n-task three\n", "")

	var out bytes.Buffer
	app := newTestApp(flags, "", &out)

	require.NoError(t, app.Run(context.Background(), []string{"todo", "ls"}))
	assert.Equal(t, "0) [?] task one\n1) [-] task two\n2) [#] task three\n", out.String())
}

func TestLsCmd_TextHideClosed(t *testing.T) {
	flags, _, _ := testFlags(t, "?task one\n-task two\n.task three\n", "")
	hide := false
	flags.Config.Display.ShowClosed = &hide

	var out bytes.Buffer
	app := newTestApp(flags, "", &out)

	require.NoError(t, app.Run(context.Background(), []string{"todo", "ls"}))
	assert.Equal(t, "0) [?] task one\n2) [-] task three\n", out.String())
}

func TestLsCmd_JSON(t *testing.T) {
	flags, _, _ := testFlags(t, "?task one\nno sigil\n", "")

	var out bytes.Buffer
	app := newTestApp(flags, "", &out)

	require.NoError(t, app.Run(context.Background(), []string{"todo", "ls", "--format", "json"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var first lsItem
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, lsItem{Index: 0, Status: "in_progress", Text: "task one"}, first)

	var second lsItem
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, lsItem{Index: 1, Status: "unmarked", Text: "no sigil"}, second)
}

func TestLsCmd_Archived(t *testing.T) {
	flags, _, _ := testFlags(t, ".active\n", "-old one\n-old two\n")
	hide := false
	flags.Config.Display.ShowClosed = &hide

	var out bytes.Buffer
	app := newTestApp(flags, "", &out)

	require.NoError(t, app.Run(context.Background(), []string{"todo", "ls", "--archived"}))
	assert.Equal(t, "0) [#] old one\n1) [#] old two\n", out.String())
}

func TestLsCmd_Markdown(t *testing.T) {
	flags, _, _ := testFlags(t, "?task one\n!task two\n", "")

	var out bytes.Buffer
	app := newTestApp(flags, "", &out)

	require.NoError(t, app.Run(context.Background(), []string{"todo", "ls", "--format", "markdown"}))
	assert.Contains(t, out.String(), "task one")
	assert.Contains(t, out.String(), "task two")
}

func TestLsCmd_UnknownFormat(t *testing.T) {
	flags, _, _ := testFlags(t, "", "")

	var out bytes.Buffer
	app := newTestApp(flags, "", &out)

	err := app.Run(context.Background(), []string{"todo", "ls", "--format", "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestConfigCmd_Validate(t *testing.T) {
	flags, _, _ := testFlags(t, "", "")

	var out bytes.Buffer
	app := newTestApp(flags, "", &out)

	require.NoError(t, app.Run(context.Background(), []string{"todo", "config", "validate"}))
	assert.Equal(t, "Configuration is valid\n", out.String())
}

func TestConfigCmd_Show(t *testing.T) {
	flags, primary, _ := testFlags(t, "", "")

	var out bytes.Buffer
	app := newTestApp(flags, "", &out)

	require.NoError(t, app.Run(context.Background(), []string{"todo", "config", "show"}))
	assert.Contains(t, out.String(), "path: "+primary)
	assert.Contains(t, out.String(), "color: never")
}

func TestColorProfile_Modes(t *testing.T) {
	var buf bytes.Buffer

	assert.Equal(t, termenv.Ascii, colorProfile(config.ColorNever, &buf))
	assert.Equal(t, termenv.TrueColor, colorProfile(config.ColorAlways, &buf))
}

func TestRenderConfig_NoClearWithoutTerminal(t *testing.T) {
	cfg := config.DefaultConfig()

	var buf bytes.Buffer
	rc := renderConfig(&cfg, &buf)

	assert.False(t, rc.ClearScreen)
	assert.True(t, rc.ShowClosed)
	assert.Equal(t, 80, terminalWidth(&buf, 80))
}
