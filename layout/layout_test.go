package layout_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Alia5/viipad/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() layout.Layout {
	return layout.Layout{
		Scale:          1.5,
		OpacityPercent: layout.Percent(70),
		Controls: []layout.Placement{
			{Name: "left", X: 10, Y: 400},
			{Name: "right", X: 700, Y: 410},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, name := range []string{"layout.json", "layout.yaml", "layout.yml", "layout.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sub", name)
			require.NoError(t, layout.Save(path, sample()))

			got, err := layout.Load(path)
			require.NoError(t, err)
			assert.Equal(t, sample(), got)
		})
	}
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	got, err := layout.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, layout.Layout{}, got)
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := layout.Load("layout.ini")
	assert.ErrorIs(t, err, layout.ErrUnsupportedFormat)
	assert.ErrorIs(t, layout.Save(filepath.Join(t.TempDir(), "x.txt"), sample()), layout.ErrUnsupportedFormat)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := layout.Load(path)
	assert.Error(t, err)
}

func TestLookupAndSet(t *testing.T) {
	l := sample()
	p, ok := l.Lookup("right")
	require.True(t, ok)
	assert.Equal(t, 700, p.X)

	l.Set(layout.Placement{Name: "right", X: 1, Y: 2})
	l.Set(layout.Placement{Name: "extra", X: 3, Y: 4})
	assert.Len(t, l.Controls, 3)
	p, _ = l.Lookup("right")
	assert.Equal(t, layout.Placement{Name: "right", X: 1, Y: 2}, p)

	_, ok = l.Lookup("none")
	assert.False(t, ok)
}

func TestFileStore(t *testing.T) {
	s := layout.FileStore{Path: filepath.Join(t.TempDir(), "overlay.toml")}
	l, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, l.Controls)

	require.NoError(t, s.Save(sample()))
	l, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, sample(), l)
}

func TestZeroOpacitySurvivesReload(t *testing.T) {
	for _, name := range []string{"layout.json", "layout.yaml", "layout.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, layout.Save(path, layout.Layout{OpacityPercent: layout.Percent(0)}))

			got, err := layout.Load(path)
			require.NoError(t, err)
			p, ok := got.Opacity()
			assert.True(t, ok)
			assert.Equal(t, 0, p)
		})
	}

	_, ok := layout.Layout{}.Opacity()
	assert.False(t, ok)
}
