package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPolygon(t *testing.T) {
	const wkt = "POLYGON ((0 0, 4 0, 4 4, 0 4, 0 0))"

	t.Run("inline wins", func(t *testing.T) {
		got, err := readPolygon("  "+wkt+"\n", "ignored", strings.NewReader("ignored"))
		require.NoError(t, err)
		assert.Equal(t, wkt, got)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "poly.wkt")
		require.NoError(t, os.WriteFile(path, []byte(wkt+"\n"), 0644))

		got, err := readPolygon("", path, strings.NewReader("ignored"))
		require.NoError(t, err)
		assert.Equal(t, wkt, got)
	})

	t.Run("stdin", func(t *testing.T) {
		got, err := readPolygon("", "", strings.NewReader(wkt))
		require.NoError(t, err)
		assert.Equal(t, wkt, got)
	})

	t.Run("empty stdin", func(t *testing.T) {
		_, err := readPolygon("", "", strings.NewReader(" \n"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readPolygon("", filepath.Join(t.TempDir(), "nope"), nil)
		assert.Error(t, err)
	})
}
