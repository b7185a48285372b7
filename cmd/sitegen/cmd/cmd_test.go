package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cp-topic-list/site/site"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRenderDefaultsToAbout(t *testing.T) {
	out, err := run(t, "render")
	require.NoError(t, err)
	assert.Contains(t, out, "<title>About</title>")
	assert.Contains(t, out, "About the Topic List")
}

func TestRenderUnknownPath(t *testing.T) {
	_, err := run(t, "render", "/topics")
	assert.ErrorIs(t, err, site.ErrPageNotFound)
}

func TestExportCommand(t *testing.T) {
	memFs := afero.NewMemMapFs()
	exportFs = memFs
	t.Cleanup(func() { exportFs = afero.NewOsFs() })

	out, err := run(t, "export", "--out", "public", "--base-url", "https://example.com")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join("public", "about", "index.html"))

	sitemap, err := afero.ReadFile(memFs, filepath.Join("public", "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), "https://example.com/about")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "sitegen v"+version+"\n", out)
}
