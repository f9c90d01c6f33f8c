package tokendist

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/language"
)

// NormType selects which operand length a normalized ("percentage") limit
// is scaled by when it is converted into an absolute cost ceiling.
type NormType int

const (
	// NormMax scales the limit by the longer of the two normalized lengths.
	NormMax NormType = iota
	// NormMin scales the limit by the shorter of the two normalized lengths.
	NormMin
	// NormFirst scales the limit by the first operand's normalized length only.
	NormFirst
)

// String implements fmt.Stringer.
func (n NormType) String() string {
	switch n {
	case NormMax:
		return "max"
	case NormMin:
		return "min"
	case NormFirst:
		return "first"
	default:
		return "unknown"
	}
}

// ParseNormType parses one of "max", "min", "first" (case-insensitive).
func ParseNormType(s string) (NormType, error) {
	switch strings.ToLower(s) {
	case "max":
		return NormMax, nil
	case "min":
		return NormMin, nil
	case "first":
		return NormFirst, nil
	default:
		return 0, fmt.Errorf("tokendist: unrecognized normType %q (want max, min or first)", s)
	}
}

// Tokenizer splits an input string into an ordered sequence of token
// strings. The engine never re-examines the raw input after tokenizing
// it, so callers may inject any tokenizer that fits their domain.
type Tokenizer func(s string) []string

// Config is an immutable bundle of costs, penalties, limits, and the
// tokenizer/normalization selector used by an Engine. Build one with
// NewConfigBuilder; a Config is safe for concurrent use by any number of
// Engines/goroutines once built, since nothing about it is ever mutated
// afterwards.
type Config struct {
	insDelCost           float64
	substCost            float64
	swapCost             float64
	duplicateCost        float64
	digitChangePenalty   float64
	tokenInitialPenalty  float64
	tokenSepSubstPenalty float64
	tokenDeltaPenalty    float64
	spaceOnlyCost        float64
	perTokenLimit        bool
	defaultLimit         float64
	defaultNormLimit     float64
	normType             NormType
	tokenSep             rune
	tokenSplit           *regexp.Regexp
	locale               *language.Tag
	tokenizer            Tokenizer
}

// ConfigBuilder stages Config field assignments before a single
// finalizing Build call. It is the only construction path for Config:
// there is no exported struct literal, so every field starts from a
// documented default and is only ever changed through a named setter.
type ConfigBuilder struct {
	cfg        Config
	tokenSplit string
	err        error
}

// NewConfigBuilder returns a builder pre-loaded with the documented
// defaults for every cost, penalty, and limit.
func NewConfigBuilder() *ConfigBuilder {
	english := language.English
	return &ConfigBuilder{
		cfg: Config{
			insDelCost:           1.0,
			substCost:            1.0,
			swapCost:             1.25,
			duplicateCost:        0.05,
			digitChangePenalty:   0.33,
			tokenInitialPenalty:  0.25,
			tokenSepSubstPenalty: 0.50,
			tokenDeltaPenalty:    0.25,
			spaceOnlyCost:        0.10,
			perTokenLimit:        true,
			defaultLimit:         2.0,
			defaultNormLimit:     0.0,
			normType:             NormMax,
			tokenSep:             ' ',
			locale:               &english,
		},
		tokenSplit: `[\p{Z}\p{P}\p{S}]+`,
	}
}

func (b *ConfigBuilder) InsDelCost(v float64) *ConfigBuilder {
	b.cfg.insDelCost = v
	return b
}

func (b *ConfigBuilder) SubstCost(v float64) *ConfigBuilder {
	b.cfg.substCost = v
	return b
}

func (b *ConfigBuilder) SwapCost(v float64) *ConfigBuilder {
	b.cfg.swapCost = v
	return b
}

func (b *ConfigBuilder) DuplicateCost(v float64) *ConfigBuilder {
	b.cfg.duplicateCost = v
	return b
}

func (b *ConfigBuilder) DigitChangePenalty(v float64) *ConfigBuilder {
	b.cfg.digitChangePenalty = v
	return b
}

func (b *ConfigBuilder) TokenInitialPenalty(v float64) *ConfigBuilder {
	b.cfg.tokenInitialPenalty = v
	return b
}

func (b *ConfigBuilder) TokenSepSubstPenalty(v float64) *ConfigBuilder {
	b.cfg.tokenSepSubstPenalty = v
	return b
}

func (b *ConfigBuilder) TokenDeltaPenalty(v float64) *ConfigBuilder {
	b.cfg.tokenDeltaPenalty = v
	return b
}

func (b *ConfigBuilder) SpaceOnlyCost(v float64) *ConfigBuilder {
	b.cfg.spaceOnlyCost = v
	return b
}

func (b *ConfigBuilder) PerTokenLimit(v bool) *ConfigBuilder {
	b.cfg.perTokenLimit = v
	return b
}

func (b *ConfigBuilder) DefaultLimit(v float64) *ConfigBuilder {
	b.cfg.defaultLimit = v
	return b
}

func (b *ConfigBuilder) DefaultNormLimit(v float64) *ConfigBuilder {
	b.cfg.defaultNormLimit = v
	return b
}

func (b *ConfigBuilder) NormType(n NormType) *ConfigBuilder {
	b.cfg.normType = n
	return b
}

// TokenSep sets the scalar used as inter-token separator in canonical form.
func (b *ConfigBuilder) TokenSep(r rune) *ConfigBuilder {
	b.cfg.tokenSep = r
	return b
}

// TokenSplit sets the regular expression used by the default tokenizer
// to split and trim input. Ignored once a custom Tokenizer is injected.
func (b *ConfigBuilder) TokenSplit(pattern string) *ConfigBuilder {
	b.tokenSplit = pattern
	return b
}

// Locale sets the locale used for lowercasing by the default tokenizer.
func (b *ConfigBuilder) Locale(tag language.Tag) *ConfigBuilder {
	b.cfg.locale = &tag
	return b
}

// DisableLocale turns off the default tokenizer's lowercasing step entirely.
func (b *ConfigBuilder) DisableLocale() *ConfigBuilder {
	b.cfg.locale = nil
	return b
}

// Tokenizer injects a custom tokenizer, overriding the default
// regex/locale-based one built from TokenSplit/Locale.
func (b *ConfigBuilder) Tokenizer(t Tokenizer) *ConfigBuilder {
	b.cfg.tokenizer = t
	return b
}

// yamlConfig mirrors the builder's setters for FromYAML seeding. Every
// field is a pointer so an absent YAML key leaves the builder's prior
// value untouched rather than overwriting it with a zero value.
type yamlConfig struct {
	InsDelCost           *float64 `yaml:"insDelCost"`
	SubstCost            *float64 `yaml:"substCost"`
	SwapCost             *float64 `yaml:"swapCost"`
	DuplicateCost        *float64 `yaml:"duplicateCost"`
	DigitChangePenalty   *float64 `yaml:"digitChangePenalty"`
	TokenInitialPenalty  *float64 `yaml:"tokenInitialPenalty"`
	TokenSepSubstPenalty *float64 `yaml:"tokenSepSubstPenalty"`
	TokenDeltaPenalty    *float64 `yaml:"tokenDeltaPenalty"`
	SpaceOnlyCost        *float64 `yaml:"spaceOnlyCost"`
	PerTokenLimit        *bool    `yaml:"perTokenLimit"`
	DefaultLimit         *float64 `yaml:"defaultLimit"`
	DefaultNormLimit     *float64 `yaml:"defaultNormLimit"`
	NormType             *string  `yaml:"normType"`
	TokenSep             *string  `yaml:"tokenSep"`
	TokenSplit           *string  `yaml:"tokenSplit"`
}

// FromYAML seeds the builder's fields from a YAML profile file, the way
// a caller might check in a "costs.yaml" next to their code. Fields
// absent from the document keep whatever the builder already held.
// Unlike the chained setters above, FromYAML can fail (bad path, bad
// YAML, unrecognized normType) and so returns an error instead of
// panicking or silently ignoring the problem.
func (b *ConfigBuilder) FromYAML(path string) (*ConfigBuilder, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return b, fmt.Errorf("tokendist: reading config %s: %w", path, err)
	}
	var doc yamlConfig
	if err := yaml.Unmarshal(bin, &doc); err != nil {
		return b, fmt.Errorf("tokendist: parsing config %s: %w", path, err)
	}
	if doc.InsDelCost != nil {
		b.cfg.insDelCost = *doc.InsDelCost
	}
	if doc.SubstCost != nil {
		b.cfg.substCost = *doc.SubstCost
	}
	if doc.SwapCost != nil {
		b.cfg.swapCost = *doc.SwapCost
	}
	if doc.DuplicateCost != nil {
		b.cfg.duplicateCost = *doc.DuplicateCost
	}
	if doc.DigitChangePenalty != nil {
		b.cfg.digitChangePenalty = *doc.DigitChangePenalty
	}
	if doc.TokenInitialPenalty != nil {
		b.cfg.tokenInitialPenalty = *doc.TokenInitialPenalty
	}
	if doc.TokenSepSubstPenalty != nil {
		b.cfg.tokenSepSubstPenalty = *doc.TokenSepSubstPenalty
	}
	if doc.TokenDeltaPenalty != nil {
		b.cfg.tokenDeltaPenalty = *doc.TokenDeltaPenalty
	}
	if doc.SpaceOnlyCost != nil {
		b.cfg.spaceOnlyCost = *doc.SpaceOnlyCost
	}
	if doc.PerTokenLimit != nil {
		b.cfg.perTokenLimit = *doc.PerTokenLimit
	}
	if doc.DefaultLimit != nil {
		b.cfg.defaultLimit = *doc.DefaultLimit
	}
	if doc.DefaultNormLimit != nil {
		b.cfg.defaultNormLimit = *doc.DefaultNormLimit
	}
	if doc.NormType != nil {
		nt, err := ParseNormType(*doc.NormType)
		if err != nil {
			return b, fmt.Errorf("tokendist: config %s: %w", path, err)
		}
		b.cfg.normType = nt
	}
	if doc.TokenSep != nil {
		runes := []rune(*doc.TokenSep)
		if len(runes) != 1 {
			return b, fmt.Errorf("tokendist: config %s: tokenSep must be exactly one character", path)
		}
		b.cfg.tokenSep = runes[0]
	}
	if doc.TokenSplit != nil {
		b.tokenSplit = *doc.TokenSplit
	}
	return b, nil
}

// Build finalizes the Config. If no tokenizer was injected via
// Tokenizer, it synthesizes the default one from TokenSplit and Locale.
func (b *ConfigBuilder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	switch b.cfg.normType {
	case NormMax, NormMin, NormFirst:
	default:
		return nil, fmt.Errorf("tokendist: unrecognized normType %d", int(b.cfg.normType))
	}
	re, err := regexp.Compile(b.tokenSplit)
	if err != nil {
		return nil, fmt.Errorf("tokendist: invalid tokenSplit pattern %q: %w", b.tokenSplit, err)
	}
	cfg := b.cfg
	cfg.tokenSplit = re

	if cfg.tokenizer == nil {
		cfg.tokenizer = newDefaultTokenizer(re, cfg.locale)
	}
	return &cfg, nil
}
