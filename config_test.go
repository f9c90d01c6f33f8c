package tokendist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_Defaults(t *testing.T) {
	cfg, err := NewConfigBuilder().Build()
	require.NoError(t, err)
	require.Equal(t, 1.0, cfg.insDelCost)
	require.Equal(t, 1.25, cfg.swapCost)
	require.Equal(t, NormMax, cfg.normType)
	require.Equal(t, ' ', cfg.tokenSep)
	require.True(t, cfg.perTokenLimit)
	require.NotNil(t, cfg.tokenizer)
}

func TestConfigBuilder_Chaining(t *testing.T) {
	cfg, err := NewConfigBuilder().
		InsDelCost(2).
		SubstCost(3).
		SwapCost(0.5).
		DuplicateCost(0.1).
		NormType(NormMin).
		TokenSep('_').
		Build()
	require.NoError(t, err)
	require.Equal(t, 2.0, cfg.insDelCost)
	require.Equal(t, 3.0, cfg.substCost)
	require.Equal(t, 0.5, cfg.swapCost)
	require.Equal(t, 0.1, cfg.duplicateCost)
	require.Equal(t, NormMin, cfg.normType)
	require.Equal(t, '_', cfg.tokenSep)
}

func TestConfigBuilder_InvalidTokenSplit(t *testing.T) {
	_, err := NewConfigBuilder().TokenSplit("[invalid(").Build()
	require.Error(t, err)
}

func TestConfigBuilder_DisableLocaleSkipsLowercasing(t *testing.T) {
	cfg, err := NewConfigBuilder().DisableLocale().Build()
	require.NoError(t, err)
	tokens := cfg.tokenizer("HELLO World")
	require.Equal(t, []string{"HELLO", "World"}, tokens)
}

func TestConfigBuilder_CustomTokenizerOverridesDefault(t *testing.T) {
	calls := 0
	cfg, err := NewConfigBuilder().Tokenizer(func(s string) []string {
		calls++
		return []string{s}
	}).Build()
	require.NoError(t, err)
	cfg.tokenizer("anything")
	require.Equal(t, 1, calls)
}

func TestConfigBuilder_FromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "costs.yaml")
	content := []byte("insDelCost: 2.5\nnormType: min\ntokenSep: \"_\"\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	builder, err := NewConfigBuilder().FromYAML(path)
	require.NoError(t, err)
	cfg, err := builder.Build()
	require.NoError(t, err)
	require.Equal(t, 2.5, cfg.insDelCost)
	require.Equal(t, NormMin, cfg.normType)
	require.Equal(t, '_', cfg.tokenSep)
	// untouched by the document, retains the builder default
	require.Equal(t, 1.0, cfg.substCost)
}

func TestConfigBuilder_FromYAML_BadNormType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("normType: sideways\n"), 0o644))

	_, err := NewConfigBuilder().FromYAML(path)
	require.Error(t, err)
}

func TestConfigBuilder_FromYAML_MissingFile(t *testing.T) {
	_, err := NewConfigBuilder().FromYAML("/nonexistent/costs.yaml")
	require.Error(t, err)
}

func TestParseNormType(t *testing.T) {
	cases := map[string]NormType{"max": NormMax, "min": NormMin, "first": NormFirst}
	for s, want := range cases {
		got, err := ParseNormType(s)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseNormType("nope")
	require.Error(t, err)
}
