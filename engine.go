// Package tokendist computes a weighted, token-aware edit distance
// between two strings. It generalizes Damerau-Levenshtein distance with
// configurable costs for insertion/deletion, substitution, adjacent
// transposition, and duplicate-scalar edits, plus penalties tied to
// token structure: token-initial position, token-separator crossing,
// token-count differences, and spaceless equivalence. Two kinds of
// early-termination limits are supported, an absolute cost ceiling and
// a length-normalized one, each optionally enforced per token as well
// as globally.
package tokendist

import "math"

// ComparisonInfo is the small per-call record threaded through every
// cost-evaluation site during one distance computation.
type ComparisonInfo struct {
	currEditLimit     float64
	currEditNormLimit float64
	spacelessEquals   bool
}

// Engine evaluates distances under a fixed, immutable Config. An Engine
// holds no mutable state of its own and is safe to use concurrently
// from any number of goroutines once built.
type Engine struct {
	cfg *Config
}

// NewEngine wraps cfg in an Engine ready to compute distances.
func NewEngine(cfg *Config) *Engine {
	return &Engine{cfg: cfg}
}

// Distance computes the distance between a and b using the Config's
// default limits.
func (e *Engine) Distance(a, b string) float64 {
	return e.DistanceWithLimits(a, b, e.cfg.defaultLimit, e.cfg.defaultNormLimit)
}

// DistanceWithLimits computes the distance between a and b, honoring
// limit (an absolute cost ceiling) and normLimit (a length-normalized
// ceiling), either of which may be 0 to disable it. The result is +Inf
// when a limit is exceeded, including via early termination.
func (e *Engine) DistanceWithLimits(a, b string, limit, normLimit float64) float64 {
	cfg := e.cfg
	itemA := newItem(a, cfg)
	itemB := newItem(b, cfg)

	if runesEqual(itemA.text, itemB.text) {
		return 0
	}

	ctx := ComparisonInfo{
		currEditLimit:     limit,
		currEditNormLimit: normLimit,
		spacelessEquals:   itemA.spacelessText == itemB.spacelessText,
	}

	if len(itemA.text) == 0 || len(itemB.text) == 0 {
		retVal := math.Max(itemA.normLength, itemB.normLength)
		return emptyInputResult(cfg, retVal, len(itemA.text), ctx)
	}

	delta := itemA.tokenDiffPenalty(itemB, ctx)

	limitsActive := limit > 0 || normLimit > 0
	var adj float64
	if limitsActive {
		adj = adjustedLimit(cfg, itemA.normLength, itemB.normLength, ctx)
		adj -= delta
		if adj < itemA.uniqueCharMinCost(itemB) {
			return math.Inf(1)
		}
	}

	nB := len(itemB.text)
	nA := len(itemA.text)
	rowPrev := newRow(nB)
	rowCurr := newRow(nB)
	rowNext := newRow(nB)

	rowCurr.initFirstRow(itemB, ctx)

	for i := 0; i < nA; i++ {
		rowMin := rowNext.initFirstCell(rowCurr, itemA, i, ctx)

		for j := 0; j < nB; j++ {
			atTokenEdge := itemA.isTokenSep(i) || itemB.isTokenSep(j)

			var best Cell
			best.setCostsAndCheckTokenEdge(rowCurr[j], atTokenEdge, cfg.perTokenLimit, ctx)
			best.incrementCosts(itemA.substCost(i, itemB, j))

			if itemA.isSwapped(i, itemB, j) {
				var swap Cell
				swap.setCostsAndCheckTokenEdge(rowPrev[j-1], atTokenEdge, cfg.perTokenLimit, ctx)
				swap.incrementCosts(itemA.swapCost(i, itemB, j))
				best.setIfCostsLess(swap)
			}

			var ins Cell
			ins.setCostsAndCheckTokenEdge(rowNext[j], atTokenEdge, cfg.perTokenLimit, ctx)
			ins.incrementCosts(itemB.insDelCost(j, ctx))
			best.setIfCostsLess(ins)

			var del Cell
			del.setCostsAndCheckTokenEdge(rowCurr[j+1], atTokenEdge, cfg.perTokenLimit, ctx)
			del.incrementCosts(itemA.insDelCost(i, ctx))
			best.setIfCostsLess(del)

			best.tokenNormLength = tokenNormLengthUpdate(cfg, itemA, i, itemB, j, rowNext[j], rowCurr[j+1])

			rowNext[j+1] = best
			if atTokenEdge {
				rowNext[j+1].startNewToken()
			}
			if rowNext[j+1].cost < rowMin {
				rowMin = rowNext[j+1].cost
			}
		}

		rowPrev, rowCurr, rowNext = rowCurr, rowNext, rowPrev

		if limitsActive && rowMin > adj {
			return math.Inf(1)
		}
	}

	end := rowCurr[nB]
	if end.overTokenEditLimit(ctx, cfg.perTokenLimit) {
		return math.Inf(1)
	}
	if limitsActive && end.cost > adj {
		return math.Inf(1)
	}
	return end.cost + delta
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// tokenNormLengthUpdate computes the new cell's tokenNormLength from
// its left (L) and above (A) neighbors, dispatched on normType. This is
// one of the two places the engine branches on normType; a new
// NormType case requires adding a branch here and in adjustedLimit.
func tokenNormLengthUpdate(cfg *Config, itemA *Item, i int, itemB *Item, j int, left, above Cell) float64 {
	deltaL := itemB.tokenLenDelta(j)
	deltaA := itemA.tokenLenDelta(i)
	L := left.tokenNormLength
	A := above.tokenNormLength

	switch cfg.normType {
	case NormMin:
		return math.Min(L+deltaL, A+deltaA)
	case NormFirst:
		if itemB.isTokenStart(j) {
			return A + deltaA
		}
		return L
	case NormMax:
		if !itemA.isTokenStart(i) {
			deltaL = 0
		}
		if i != 0 && !itemB.isTokenStart(j) {
			deltaA = 0
		}
		return math.Max(L+deltaL, A+deltaA)
	default:
		return math.Max(L+deltaL, A+deltaA)
	}
}

// adjustedLimit converts the active limits into a single absolute cost
// ceiling for per-row early termination, corrected for the fact that a
// swap can lower a row's minimum below the previous row's.
func adjustedLimit(cfg *Config, l1, l2 float64, ctx ComparisonInfo) float64 {
	var normEditMax float64
	if ctx.currEditNormLimit > 0 {
		switch cfg.normType {
		case NormMax:
			normEditMax = ctx.currEditNormLimit * math.Max(l1, l2)
		case NormMin:
			normEditMax = ctx.currEditNormLimit * math.Min(l1, l2)
		case NormFirst:
			normEditMax = ctx.currEditNormLimit * l1
		}
	}

	var adj float64
	if ctx.currEditLimit > 0 && normEditMax > 0 {
		adj = math.Min(ctx.currEditLimit, normEditMax)
	} else {
		adj = math.Max(ctx.currEditLimit, normEditMax)
	}

	if cfg.swapCost < cfg.insDelCost {
		adj += cfg.insDelCost - cfg.swapCost
	}
	return adj
}

// emptyInputResult handles the degenerate case where at least one of
// the two items has no scalars at all.
func emptyInputResult(cfg *Config, retVal float64, firstLen int, ctx ComparisonInfo) float64 {
	if retVal == 0 {
		return 0
	}
	if ctx.currEditLimit > 0 && retVal > ctx.currEditLimit {
		return math.Inf(1)
	}
	if ctx.currEditNormLimit > 0 {
		if cfg.normType == NormMin {
			return math.Inf(1)
		}
		if cfg.normType == NormFirst && firstLen == 0 {
			return math.Inf(1)
		}
		if ctx.currEditNormLimit < 1 {
			return math.Inf(1)
		}
	}
	return retVal
}
