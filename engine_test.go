package tokendist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustEngine(t *testing.T, configure func(b *ConfigBuilder)) *Engine {
	t.Helper()
	b := NewConfigBuilder()
	if configure != nil {
		configure(b)
	}
	cfg, err := b.Build()
	require.NoError(t, err)
	return NewEngine(cfg)
}

func TestDistance_IdentityAndCaseFold(t *testing.T) {
	e := mustEngine(t, nil)
	require.Equal(t, 0.0, e.Distance("dog", "dog"))
	require.Equal(t, 0.0, e.Distance("DoG", "dOg"))
}

func TestDistance_SingleSwap(t *testing.T) {
	e := mustEngine(t, nil)
	require.Equal(t, 1.25, e.Distance("abcde", "abdce"))
}

func TestDistance_SwapWithLimitCorrection(t *testing.T) {
	e := mustEngine(t, func(b *ConfigBuilder) {
		b.SwapCost(0.75).InsDelCost(1.0).DefaultLimit(0.99)
	})
	require.Equal(t, 0.75, e.Distance("abc", "acb"))
}

func TestDistance_SwapWithDigitPenalty(t *testing.T) {
	e := mustEngine(t, nil)
	require.InDelta(t, 1.58, e.Distance("12345", "12435"), 1e-9)
}

func TestDistance_DuplicateDiscount(t *testing.T) {
	e := mustEngine(t, nil)
	require.InDelta(t, 0.25, e.Distance("aabbccddee", "abcde"), 1e-9)
}

func TestDistance_LimitAndNormLimitCombinations(t *testing.T) {
	tight := mustEngine(t, func(b *ConfigBuilder) {
		b.DefaultLimit(1).DefaultNormLimit(5)
	})
	require.True(t, math.IsInf(tight.Distance("abcdefghij", "acefghij"), 1))

	loose := mustEngine(t, func(b *ConfigBuilder) {
		b.DefaultLimit(10).DefaultNormLimit(0.25)
	})
	require.InDelta(t, 2.0, loose.Distance("abcdefghij", "acefghij"), 1e-9)
}

func TestDistance_PerTokenLimit(t *testing.T) {
	withPerToken := mustEngine(t, func(b *ConfigBuilder) {
		b.PerTokenLimit(true).DefaultNormLimit(0.25)
	})
	require.True(t, math.IsInf(withPerToken.Distance("an dog", "a dog"), 1))

	withoutPerToken := mustEngine(t, func(b *ConfigBuilder) {
		b.PerTokenLimit(false).DefaultNormLimit(0.25)
	})
	require.InDelta(t, 1.0, withoutPerToken.Distance("an dog", "a dog"), 1e-9)
}

func TestDistance_NonNegativeAndSymmetricForMaxAndMin(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"saturday", "sunday"},
		{"", "abc"},
		{"a b c", "abc"},
		{"hello world", "Hello, World!"},
	}
	for _, nt := range []NormType{NormMax, NormMin} {
		e := mustEngine(t, func(b *ConfigBuilder) { b.NormType(nt) })
		for _, p := range pairs {
			d1 := e.Distance(p[0], p[1])
			d2 := e.Distance(p[1], p[0])
			if !math.IsInf(d1, 1) {
				require.GreaterOrEqual(t, d1, 0.0)
			}
			require.Equal(t, d1, d2, "normType=%v pair=%v", nt, p)
		}
	}
}

func TestDistance_EmptyInputLaw(t *testing.T) {
	e := mustEngine(t, nil)
	helloItem := newItem("hello", e.cfg)
	got := e.Distance("", "hello")
	if !math.IsInf(got, 1) {
		require.Equal(t, helloItem.normLength, got)
	}
}

func TestDistance_SpacelessEqualityDiscount(t *testing.T) {
	e := mustEngine(t, nil)
	d := e.Distance("a dog", "adog")
	require.False(t, math.IsInf(d, 1))
	require.LessOrEqual(t, d, e.cfg.spaceOnlyCost+0.5)
}

func TestDistance_LimitMonotonicity(t *testing.T) {
	tight := mustEngine(t, func(b *ConfigBuilder) { b.DefaultLimit(0.1) })
	loose := mustEngine(t, func(b *ConfigBuilder) { b.DefaultLimit(100) })

	tightVal := tight.Distance("kitten", "sitting")
	looseVal := loose.Distance("kitten", "sitting")

	if math.IsInf(tightVal, 1) {
		require.False(t, math.IsInf(looseVal, 1))
	}
}

func TestDistance_EmptyBothInputs(t *testing.T) {
	e := mustEngine(t, nil)
	require.Equal(t, 0.0, e.Distance("", ""))
}

func TestDistance_DefaultLimitsFromConfig(t *testing.T) {
	e := mustEngine(t, nil)
	got := e.DistanceWithLimits("an elephant", "a mouse", e.cfg.defaultLimit, e.cfg.defaultNormLimit)
	want := e.Distance("an elephant", "a mouse")
	require.Equal(t, want, got)
}
