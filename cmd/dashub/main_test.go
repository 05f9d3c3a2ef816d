package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xraph/dashub"
	"github.com/xraph/dashub/menu"
)

const appsYAML = `
- app_label: books
  name: Books
  app_url: /admin/books/
  models:
    - object_name: Book
      name: Books
      admin_url: /admin/books/book/
      add_url: /admin/books/book/add/
    - object_name: Author
      name: Authors
      admin_url: /admin/books/author/
      add_url: /admin/books/author/add/
`

const settingsYAML = `
logging:
  level: error
order_menus:
  - app: books
    models: [{model: author, order: 1}]
submenus_models: books.book
custom_links:
  books:
    - name: Import
      url: /import/
`

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	return path
}

func run(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)

	return out.String(), err
}

func TestMenuCommand(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "settings.yaml", settingsYAML)
	apps := writeFile(t, dir, "apps.yaml", appsYAML)

	out, err := run(t, context.Background(), "menu", "--config", config, "--apps", apps, "--no-color")
	require.NoError(t, err)

	assert.Equal(t, "Books (books) fas fa-chevron-circle-right\n"+
		"  Authors  /admin/books/author/\n"+
		"  Books  /admin/books/book/\n"+
		"    - Add New  /admin/books/book/add/\n"+
		"    - Books  /admin/books/book/\n"+
		"  Import  /import/\n", out)
}

func TestMenuCommandJSON(t *testing.T) {
	dir := t.TempDir()
	config := writeFile(t, dir, "settings.yaml", "{}\n")

	out, err := run(t, context.Background(), "menu", "--config", config, "--json")
	require.NoError(t, err)

	var sections []menu.Section
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(out), &sections))
	require.Len(t, sections, 1)
	assert.Equal(t, "auth", sections[0].Label)
	assert.Equal(t, "fas fa-users-cog", sections[0].Icon)
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, context.Background(), "validate", "--no-color", "--config", writeFile(t, dir, "ok.yaml", settingsYAML))
	require.NoError(t, err)
	assert.Contains(t, out, "ok ")

	bad := writeFile(t, dir, "bad.yaml", "theme_color: blue\norder_menus: [auth, auth]\n")
	out, err = run(t, context.Background(), "validate", "--no-color", "--config", bad)
	require.ErrorIs(t, err, errInvalidSettings)
	assert.Contains(t, out, "error order_menus[1].app:")
	assert.Contains(t, out, "warning theme_color:")
}

func TestMissingAppsFile(t *testing.T) {
	config := writeFile(t, t.TempDir(), "settings.yaml", "{}\n")

	_, err := run(t, context.Background(), "menu", "--config", config, "--apps", "/does/not/exist.yaml")
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, context.Background(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dashub "+dashub.Version+"\n", out)
}

func TestServeCommandStopsOnCancel(t *testing.T) {
	config := writeFile(t, t.TempDir(), "settings.yaml", "logging:\n  level: error\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := run(t, ctx, "serve", "--config", config, "--addr", "127.0.0.1:0")
	assert.NoError(t, err)
}

func TestColorDisabledForBuffers(t *testing.T) {
	assert.False(t, colorEnabled(&bytes.Buffer{}, false))
	assert.False(t, colorEnabled(os.Stdout, true))
}
