package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/zodplay/internal/invocation"
	"github.com/thoreinstein/zodplay/internal/logging"
	"github.com/thoreinstein/zodplay/internal/option"
	"github.com/thoreinstein/zodplay/internal/playground"
	"github.com/thoreinstein/zodplay/internal/playground/mocks"
)

func stubPicker(t *testing.T, name string) {
	t.Helper()
	orig := findFile
	findFile = func(files []playground.File) (int, error) {
		for i, f := range files {
			if f.Name == name {
				return i, nil
			}
		}
		return -1, fuzzyfinder.ErrAbort
	}
	t.Cleanup(func() { findFile = orig })
}

func workspace(t *testing.T) string {
	t.Helper()
	dir := sandbox(t)
	writeFile(t, filepath.Join(dir, "api.json"), `{"openapi":"3.0.0"}`)
	writeFile(t, filepath.Join(dir, "custom.hbs"), "{{#each schemas}}{{/each}}")
	writeFile(t, filepath.Join(dir, ".prettierrc"), `{"semi":false}`)
	writeFile(t, filepath.Join(dir, ".env"), "SECRET=1")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	return dir
}

func TestFiles_Workspace(t *testing.T) {
	workspace(t)

	out, _, err := execute(t, "files")
	require.NoError(t, err)

	want := "Inputs:\n" +
		"  * petstore.yaml (preset)\n" +
		"    template.hbs (preset)\n" +
		"    .prettierrc.json (preset)\n" +
		"    .prettierrc [p]\n" +
		"    api.json [o]\n" +
		"    custom.hbs [t]\n" +
		"Outputs:\n" +
		"  * api.client.ts\n" +
		"Template preset: default\n"
	assert.Contains(t, out, want)
	assert.NotContains(t, out, ".env")
	assert.NotContains(t, out, "nested")
}

func TestFiles_Interactive(t *testing.T) {
	workspace(t)
	stubPicker(t, "custom.hbs")

	out, _, err := execute(t, "files", "--interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "  * custom.hbs [t]\n")
	assert.Contains(t, out, "Inferred as template")
}

func TestFiles_InteractiveAbort(t *testing.T) {
	workspace(t)
	stubPicker(t, "missing")

	out, _, err := execute(t, "files", "--interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "  * petstore.yaml (preset)\n")
}

func TestFiles_Edit(t *testing.T) {
	dir := workspace(t)
	stubPicker(t, "api.json")

	orig := openEditor
	t.Cleanup(func() { openEditor = orig })
	var edited string
	openEditor = func(_ context.Context, path string) error {
		edited = path
		return os.WriteFile(path, []byte(`{"openapi":"3.1.0"}`), 0o600)
	}

	_, _, err := execute(t, "files", "--edit")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(".", "api.json"), edited)

	got, err := os.ReadFile(filepath.Join(dir, "api.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"openapi":"3.1.0"}`, string(got))
}

func TestEditFile_UpdatesActiveTab(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "api.json"), "{}")

	orig := openEditor
	t.Cleanup(func() { openEditor = orig })
	openEditor = func(_ context.Context, path string) error {
		return os.WriteFile(path, []byte("edited"), 0o600)
	}

	store := playground.New(
		playground.WithLogger(logging.ForTest(t)),
		playground.WithFiles(playground.File{Name: "api.json", Content: "{}"}),
	)
	ctx := context.Background()
	require.NoError(t, store.Send(ctx, playground.SelectInputTab{File: playground.File{Name: "api.json"}}))

	f, _ := store.Snapshot().ActiveInput()
	require.NoError(t, editFile(ctx, store, dir, f))

	f, _ = store.Snapshot().ActiveInput()
	assert.Equal(t, "edited", f.Content)
}

func TestFiles_EditPresetRejected(t *testing.T) {
	workspace(t)
	stubPicker(t, "petstore.yaml")

	_, _, err := execute(t, "files", "--edit")
	require.Error(t, err)
	assert.ErrorIs(t, err, playground.ErrPresetFile)
}

func TestRenderTabs(t *testing.T) {
	store := mocks.NewMockStore(t)
	store.EXPECT().Snapshot().Return(playground.Snapshot{
		InputList: []playground.File{
			{Name: "petstore.yaml", Preset: true},
			{Name: "mine.yml"},
		},
		OutputList:        []playground.File{{Name: "a.ts"}, {Name: "b.ts"}},
		ActiveInputIndex:  1,
		ActiveOutputIndex: 1,
		SelectedDocument:  "mine.yml",
		PreviewOptions: option.NewRecord(
			option.Entry{Name: option.BaseURL, Value: option.String("https://api.test")},
		),
		SelectedPresetTemplate: "grouped",
	})

	var buf bytes.Buffer
	require.NoError(t, renderTabs(&buf, store, invocation.Default, false))

	want := "Inputs:\n" +
		"    petstore.yaml (preset)\n" +
		"  * mine.yml [o]\n" +
		"Outputs:\n" +
		"    a.ts\n" +
		"  * b.ts\n" +
		"Template preset: grouped\n" +
		"\nInferred as openapi document\n" +
		"\npnpx openapi-zod-client ./petstore.yaml -o ./b.ts\n" +
		"     --base-url=\"https://api.test\"\n    \n"
	assert.Equal(t, want, buf.String())
}

func TestPickFile_SendsSelection(t *testing.T) {
	stubPicker(t, "b.hbs")

	files := []playground.File{{Name: "a.yaml"}, {Name: "b.hbs"}}
	store := mocks.NewMockStore(t)
	store.EXPECT().Snapshot().Return(playground.Snapshot{InputList: files})
	store.EXPECT().
		Send(mock.Anything, playground.SelectInputTab{File: files[1]}).
		Return(nil)

	f, ok, err := pickFile(context.Background(), store)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "b.hbs", f.Name)
}
