package dawg_test

import (
	"testing"

	"github.com/dawgo/dawg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPutGetReplace(t *testing.T) {
	m := dawg.NewMap()

	old, had, err := m.Put("name", "ada")
	require.NoError(t, err)
	assert.False(t, had)
	assert.Empty(t, old)

	v, ok := m.Get("name")
	require.True(t, ok)
	assert.Equal(t, "ada", v)

	old, had, err = m.Put("name", "grace")
	require.NoError(t, err)
	require.True(t, had)
	assert.Equal(t, "ada", old)

	v, ok = m.Get("name")
	require.True(t, ok)
	assert.Equal(t, "grace", v)
	assert.Equal(t, 1, m.Size(), "replacing a value must not grow the map")
}

func TestMapRemove(t *testing.T) {
	m := dawg.NewMap()
	_, _, err := m.Put("k", "v")
	require.NoError(t, err)

	old, ok := m.Remove("k")
	require.True(t, ok)
	assert.Equal(t, "v", old)
	assert.False(t, m.ContainsKey("k"))

	_, ok = m.Remove("k")
	assert.False(t, ok, "removing an already-absent key reports false")
}

func TestMapSharedKeyPrefixesDoNotCollide(t *testing.T) {
	m := dawg.NewMap()
	_, _, err := m.Put("ab", "one")
	require.NoError(t, err)
	_, _, err = m.Put("abc", "two")
	require.NoError(t, err)

	v, ok := m.Get("ab")
	require.True(t, ok)
	assert.Equal(t, "one", v)

	v, ok = m.Get("abc")
	require.True(t, ok)
	assert.Equal(t, "two", v)
}

func TestMapOrderedKeyNavigation(t *testing.T) {
	m := dawg.NewMap()
	for _, k := range []string{"ant", "bat", "cat", "dog"} {
		_, _, err := m.Put(k, k+"-value")
		require.NoError(t, err)
	}

	lower, ok := m.LowerKey("cat")
	require.True(t, ok)
	assert.Equal(t, "bat", lower)

	floor, ok := m.FloorKey("cat")
	require.True(t, ok)
	assert.Equal(t, "cat", floor)

	ceiling, ok := m.CeilingKey("cat")
	require.True(t, ok)
	assert.Equal(t, "cat", ceiling)

	higher, ok := m.HigherKey("cat")
	require.True(t, ok)
	assert.Equal(t, "dog", higher)

	_, ok = m.HigherKey("dog")
	assert.False(t, ok)
}

func TestMapFloorKeyBetweenKeys(t *testing.T) {
	m := dawg.NewMap()
	_, _, err := m.Put("ant", "1")
	require.NoError(t, err)
	_, _, err = m.Put("cat", "2")
	require.NoError(t, err)

	floor, ok := m.FloorKey("bat")
	require.True(t, ok)
	assert.Equal(t, "ant", floor)

	ceiling, ok := m.CeilingKey("bat")
	require.True(t, ok)
	assert.Equal(t, "cat", ceiling)
}

func TestMapPutRejectsEmbeddedSeparator(t *testing.T) {
	m := dawg.NewMap()

	_, _, err := m.Put("k\x00ey", "v")
	require.ErrorIs(t, err, dawg.ErrArgumentInvalid)

	_, _, err = m.Put("key", "v\x00alue")
	require.ErrorIs(t, err, dawg.ErrArgumentInvalid)

	assert.Equal(t, 0, m.Size(), "a rejected Put must leave the map unchanged")
}
