package site

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    string
		wantErr error
	}{
		{name: "about", path: "/about", want: "/about"},
		{name: "trailing slash", path: "/about/", want: "/about"},
		{name: "root", path: "/", wantErr: ErrPageNotFound},
		{name: "unknown", path: "/topics", wantErr: ErrPageNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := Lookup(tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, page.Path)
		})
	}
}

func TestPagesRender(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Pages() {
		assert.False(t, seen[p.Path], "duplicate path %s", p.Path)
		seen[p.Path] = true
		assert.NotEmpty(t, p.File)

		var buf bytes.Buffer
		require.NoError(t, p.Node().Render(&buf))
		assert.Contains(t, buf.String(), "<title>"+p.Title+"</title>")
	}
}
