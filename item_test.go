package tokendist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewItem_Canonicalization(t *testing.T) {
	cfg, err := NewConfigBuilder().Build()
	require.NoError(t, err)
	it := newItem("  Hello   World  ", cfg)
	require.Equal(t, "hello world", string(it.text))
	require.Equal(t, 2, it.tokenCount)
	require.Equal(t, "helloworld", it.spacelessText)
}

func TestNewItem_EmptyInput(t *testing.T) {
	cfg, err := NewConfigBuilder().Build()
	require.NoError(t, err)
	it := newItem("", cfg)
	require.Equal(t, 0, len(it.text))
	require.Equal(t, 0, it.tokenCount)
	require.Equal(t, 0.0, it.normLength)
	require.Equal(t, "", it.spacelessText)
}

func TestItem_DuplicateAndTokenBoundaries(t *testing.T) {
	cfg, err := NewConfigBuilder().Build()
	require.NoError(t, err)
	it := newItem("aab cd", cfg)
	// text: a a b _ c d
	require.False(t, it.duplicate(0))
	require.True(t, it.duplicate(1))
	require.False(t, it.duplicate(2))
	require.True(t, it.isTokenStart(0))
	require.False(t, it.isTokenStart(1))
	require.True(t, it.isTokenSep(3))
	require.True(t, it.isTokenStart(4))
}

func TestItem_IsSwapped(t *testing.T) {
	cfg, err := NewConfigBuilder().Build()
	require.NoError(t, err)
	a := newItem("abc", cfg)
	b := newItem("acb", cfg)
	// a.text[1]='b', a.text[2]='c'; b.text[1]='c', b.text[2]='b'
	require.True(t, a.isSwapped(2, b, 2))
	require.False(t, a.isSwapped(0, b, 0))
	require.False(t, a.isSwapped(1, b, 0))
}

func TestItem_UniqueCharMinCost(t *testing.T) {
	cfg, err := NewConfigBuilder().Build()
	require.NoError(t, err)
	a := newItem("abc", cfg)
	b := newItem("abc", cfg)
	require.Equal(t, 0.0, a.uniqueCharMinCost(b))

	c := newItem("xyz", cfg)
	require.Greater(t, a.uniqueCharMinCost(c), 0.0)
}

func TestItem_SubstCost_TokenInitialPenalty(t *testing.T) {
	cfg, err := NewConfigBuilder().Build()
	require.NoError(t, err)
	a := newItem("ab", cfg)
	b := newItem("xb", cfg)
	cost := a.substCost(0, b, 0)
	require.Equal(t, cfg.substCost+cfg.tokenInitialPenalty, cost)
}

func TestItem_InsDelCost_SpaceOnlyDiscount(t *testing.T) {
	cfg, err := NewConfigBuilder().Build()
	require.NoError(t, err)
	it := newItem("a dog", cfg)
	ctx := ComparisonInfo{spacelessEquals: true}
	sepIdx := -1
	for i := range it.text {
		if it.isTokenSep(i) {
			sepIdx = i
			break
		}
	}
	require.GreaterOrEqual(t, sepIdx, 0)
	require.Equal(t, cfg.spaceOnlyCost, it.insDelCost(sepIdx, ctx))
}
