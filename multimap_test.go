package dawg_test

import (
	"testing"

	"github.com/dawgo/dawg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valuesOf(m *dawg.MultiMap, key string) []string {
	var out []string
	for v := range m.Values(key) {
		out = append(out, v)
	}
	return out
}

func TestMultiMapPutAndValues(t *testing.T) {
	m := dawg.NewMultiMap()

	added, err := m.Put("color", "red")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = m.Put("color", "blue")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = m.Put("color", "red")
	require.NoError(t, err)
	assert.False(t, added, "re-adding the identical pair reports false")

	assert.Equal(t, []string{"blue", "red"}, valuesOf(m, "color"))
	assert.Equal(t, 2, m.Size())
}

func TestMultiMapRemove(t *testing.T) {
	m := dawg.NewMultiMap()
	mustPut(t, m, "color", "red")
	mustPut(t, m, "color", "blue")

	require.True(t, m.Remove("color", "red"))
	assert.Equal(t, []string{"blue"}, valuesOf(m, "color"))
	assert.False(t, m.Remove("color", "red"), "removing an already-absent pair reports false")
}

func TestMultiMapRemoveAll(t *testing.T) {
	m := dawg.NewMultiMap()
	mustPut(t, m, "color", "red")
	mustPut(t, m, "color", "blue")
	mustPut(t, m, "size", "large")

	n := m.RemoveAll("color")
	assert.Equal(t, 2, n)
	assert.False(t, m.ContainsKey("color"))
	assert.True(t, m.ContainsKey("size"), "unrelated keys survive RemoveAll")
}

func TestMultiMapContainsEntry(t *testing.T) {
	m := dawg.NewMultiMap()
	mustPut(t, m, "color", "red")

	assert.True(t, m.ContainsEntry("color", "red"))
	assert.False(t, m.ContainsEntry("color", "blue"))
	assert.False(t, m.ContainsEntry("size", "red"))
}

func TestMultiMapPutRejectsEmbeddedSeparator(t *testing.T) {
	m := dawg.NewMultiMap()

	_, err := m.Put("col\x00or", "red")
	require.ErrorIs(t, err, dawg.ErrArgumentInvalid)

	_, err = m.Put("color", "r\x00ed")
	require.ErrorIs(t, err, dawg.ErrArgumentInvalid)

	assert.Equal(t, 0, m.Size())
}

func mustPut(t *testing.T, m *dawg.MultiMap, key, value string) {
	t.Helper()
	_, err := m.Put(key, value)
	require.NoError(t, err)
}
