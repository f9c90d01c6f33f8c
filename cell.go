package tokendist

import "math"

// Cell is one entry of the DP table: the total cost to reach it, the
// cost accumulated since entering the current token, and the
// normalized length of the current token up to this point. Arithmetic
// on +Inf stays +Inf, so a poisoned cell propagates without special
// casing at call sites.
type Cell struct {
	cost            float64
	tokenCost       float64
	tokenNormLength float64
}

// setCosts copies cost and tokenCost from other, leaving
// tokenNormLength untouched: the DP recomputes that field separately
// once the winning candidate is known.
func (c *Cell) setCosts(other Cell) {
	c.cost = other.cost
	c.tokenCost = other.tokenCost
}

// setCostsAndCheckTokenEdge is setCosts plus the per-token enforcement
// gate: at a token edge, a predecessor that already blew its per-token
// budget poisons this transition to +Inf.
func (c *Cell) setCostsAndCheckTokenEdge(other Cell, atTokenEdge, perTokenLimit bool, ctx ComparisonInfo) {
	c.setCosts(other)
	if atTokenEdge && perTokenLimit && !ctx.spacelessEquals && other.overTokenEditLimit(ctx, perTokenLimit) {
		c.cost = math.Inf(1)
	}
}

// overTokenEditLimit reports whether this cell has already exceeded its
// per-token budget, absolute or normalized.
func (c Cell) overTokenEditLimit(ctx ComparisonInfo, perTokenLimit bool) bool {
	if !perTokenLimit || ctx.spacelessEquals {
		return false
	}
	if ctx.currEditLimit > 0 && c.tokenCost > ctx.currEditLimit {
		return true
	}
	if ctx.currEditNormLimit > 0 && c.tokenCost > c.tokenNormLength*ctx.currEditNormLimit {
		return true
	}
	return false
}

// incrementCosts adds delta to both cost and tokenCost.
func (c *Cell) incrementCosts(delta float64) {
	c.cost += delta
	c.tokenCost += delta
}

// startNewToken resets the per-token accumulators at a token boundary.
func (c *Cell) startNewToken() {
	c.tokenCost = 0
	c.tokenNormLength = 0
}

// setIfCostsLess replaces c with other when other is strictly cheaper;
// ties favor c, the earlier candidate.
func (c *Cell) setIfCostsLess(other Cell) {
	if other.cost < c.cost {
		*c = other
	}
}
