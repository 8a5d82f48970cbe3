package dawg_test

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dawgo/dawg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFromReaderSkipsBlankLinesAndCR(t *testing.T) {
	b := dawg.NewBuilder()
	src := strings.NewReader("ant\r\nbat\r\n\r\ncat\n")

	n, err := b.AddFromReader(src)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.True(t, b.Contains("ant"))
	assert.True(t, b.Contains("bat"))
	assert.True(t, b.Contains("cat"))
	assert.False(t, b.Contains("ant\r"), "trailing CR must be trimmed")
}

func TestAddFromFilePlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("ant\nbat\ncat\n"), 0o644))

	b := dawg.NewBuilder()
	n, err := b.AddFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, b.Size())
}

func TestAddFromFileGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt.gz")

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte("ant\nbat\ncat\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	b := dawg.NewBuilder()
	n, err := b.AddFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.True(t, b.Contains("bat"))
}
