package modcache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenInMemoryAndRoundtrip(t *testing.T) {
	c, err := Open("")
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.Lookup("Array(Int, 0)", "Output")
	require.False(t, ok, "Lookup on empty cache should miss")

	require.NoError(t, c.Put("Array(Int, 0)", "Output", "Array(Int, 0)"))

	got, ok := c.Lookup("Array(Int, 0)", "Output")
	require.True(t, ok)
	require.Equal(t, "Array(Int, 0)", got)
}

func TestKeyIsStablePerInput(t *testing.T) {
	a := Key("Int", "")
	b := Key("Int", "")
	require.Equal(t, a, b, "Key should be deterministic")
	require.NotEqual(t, Key("Int", ""), Key("Nat", ""))
}

func TestNilCacheLookupIsSafe(t *testing.T) {
	var c *Cache
	_, ok := c.Lookup("Int", "")
	require.False(t, ok, "nil cache Lookup should report a miss, not panic")
}
