package tokendist

import (
	"strings"
	"unicode"
)

// Item is the canonicalized representation of one input string: its
// scalar sequence, a digit mask, the set of distinct scalars it
// contains, its spaceless form, its token count, and its normalized
// length. Items are unexported and DistanceWithLimits builds both of
// them fresh on every call, so a string compared against many others is
// re-tokenized each time.
type Item struct {
	cfg           *Config
	text          []rune
	isDigit       []bool
	spacelessText string
	uniqueScalars map[rune]struct{}
	tokenCount    int
	normLength    float64
}

// newItem canonicalizes raw through cfg's tokenizer: tokens are joined
// with tokenSep and the result is trimmed of any residual leading or
// trailing separator.
func newItem(raw string, cfg *Config) *Item {
	it := &Item{cfg: cfg}
	if raw == "" {
		it.uniqueScalars = map[rune]struct{}{}
		return it
	}

	tokens := cfg.tokenizer(raw)
	it.tokenCount = len(tokens)
	if len(tokens) == 0 {
		it.uniqueScalars = map[rune]struct{}{}
		return it
	}

	joined := strings.Join(tokens, string(cfg.tokenSep))
	joined = strings.Trim(joined, string(cfg.tokenSep))
	it.text = []rune(joined)
	it.isDigit = make([]bool, len(it.text))
	it.uniqueScalars = make(map[rune]struct{}, len(it.text))
	for i, r := range it.text {
		it.isDigit[i] = unicode.IsDigit(r)
		it.uniqueScalars[r] = struct{}{}
	}
	it.spacelessText = strings.ReplaceAll(joined, string(cfg.tokenSep), "")

	var norm float64
	for i := range it.text {
		norm += it.tokenLenDelta(i)
	}
	it.normLength = norm
	return it
}

// duplicate reports whether text[i] repeats its left neighbor. Index 0
// is never a duplicate.
func (it *Item) duplicate(i int) bool {
	return i > 0 && it.text[i] == it.text[i-1]
}

// isTokenSep reports whether text[i] is the configured token separator.
func (it *Item) isTokenSep(i int) bool {
	return it.text[i] == it.cfg.tokenSep
}

// isTokenStart reports whether i begins a token: either the very first
// scalar, or immediately following a separator.
func (it *Item) isTokenStart(i int) bool {
	return i == 0 || it.text[i-1] == it.cfg.tokenSep
}

// isSwapped reports whether the scalar pair at (i-1, i) in it and
// (j-1, j) in other are transposed relative to each other. Out-of-range
// indices always yield false, so no swap is possible at either item's
// leading edge.
func (it *Item) isSwapped(i int, other *Item, j int) bool {
	if i-1 < 0 || j-1 < 0 {
		return false
	}
	return it.text[i-1] == other.text[j] && it.text[i] == other.text[j-1]
}

// tokenLenDelta is the per-scalar contribution to normLength: the
// duplicate-discounted insert/delete cost at position i.
func (it *Item) tokenLenDelta(i int) float64 {
	if it.duplicate(i) {
		return it.cfg.duplicateCost
	}
	return it.cfg.insDelCost
}

// uniqueCharMinCost estimates the minimum edit cost between it and
// other purely from their unique-scalar sets: insDelCost per scalar of
// difference in set size, plus substCost per unmatched scalar of the
// smaller set. It is used only to prune the DP before it runs; always
// >= 0. It charges the separator at insDelCost even when the items are
// spacelessly equal (where its real ins/del cost is spaceOnlyCost), so
// in that case it can exceed the true distance and prune a pair that
// is within the limit.
func (it *Item) uniqueCharMinCost(other *Item) float64 {
	selfN := len(it.uniqueScalars)
	otherN := len(other.uniqueScalars)
	overlap := 0
	small, big := it.uniqueScalars, other.uniqueScalars
	if len(small) > len(big) {
		small, big = big, small
	}
	for r := range small {
		if _, ok := big[r]; ok {
			overlap++
		}
	}
	d := selfN - otherN
	if d < 0 {
		d = -d
	}
	m := selfN
	if otherN < m {
		m = otherN
	}
	return float64(d)*it.cfg.insDelCost + float64(m-overlap)*it.cfg.substCost
}

// tokenDiffPenalty charges for a difference in token count, unless the
// two items are already spacelessly equal.
func (it *Item) tokenDiffPenalty(other *Item, ctx ComparisonInfo) float64 {
	if ctx.spacelessEquals {
		return 0
	}
	d := it.tokenCount - other.tokenCount
	if d < 0 {
		d = -d
	}
	return float64(d) * it.cfg.tokenDeltaPenalty
}

// substCost is the cost of replacing it.text[i] with other.text[j].
func (it *Item) substCost(i int, other *Item, j int) float64 {
	if it.text[i] == other.text[j] {
		return 0
	}
	cost := it.cfg.substCost
	if it.isTokenStart(i) || other.isTokenStart(j) {
		cost += it.cfg.tokenInitialPenalty
	}
	if it.isTokenSep(i) || other.isTokenSep(j) {
		cost += it.cfg.tokenSepSubstPenalty
	}
	if it.isDigit[i] && other.isDigit[j] {
		cost += it.cfg.digitChangePenalty
	}
	return cost
}

// swapCost is the cost of transposing it.text[i-1:i+1] against
// other.text[j-1:j+1]. Callers must already know isSwapped holds.
func (it *Item) swapCost(i int, other *Item, j int) float64 {
	cost := it.cfg.swapCost
	if it.isDigit[i] && other.isDigit[j] {
		cost += it.cfg.digitChangePenalty
	}
	return cost
}

// insDelCost is the cost of inserting or deleting it.text[i] in
// isolation.
func (it *Item) insDelCost(i int, ctx ComparisonInfo) float64 {
	if ctx.spacelessEquals && it.isTokenSep(i) {
		return it.cfg.spaceOnlyCost
	}
	var cost float64
	if it.duplicate(i) {
		cost = it.cfg.duplicateCost
	} else {
		cost = it.cfg.insDelCost
	}
	if it.isTokenStart(i) {
		cost += it.cfg.tokenInitialPenalty
	}
	if it.isDigit[i] {
		cost += it.cfg.digitChangePenalty
	}
	return cost
}
