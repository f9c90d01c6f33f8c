package tokendist

// Row is a fixed-width vector of Cells, one wider than the second
// item's scalar count so index 0 holds the "empty prefix" boundary
// cell. Three rows (previous, current, next) rotate to form the DP
// window; transpositions reach two rows back, which is why two rows
// alone would not suffice.
type Row []Cell

func newRow(n int) Row {
	return make(Row, n+1)
}

// initFirstRow fills the degenerate row for i = -1 (before any scalar
// of itemA has been consumed): every cell is the cost of inserting the
// corresponding prefix of itemB from scratch.
func (r Row) initFirstRow(itemB *Item, ctx ComparisonInfo) {
	for i := 1; i < len(r); i++ {
		r[i].setCosts(r[i-1])
		r[i].incrementCosts(itemB.insDelCost(i-1, ctx))
		r[i].tokenNormLength = r[i-1].tokenNormLength + itemB.tokenLenDelta(i-1)
		if itemB.isTokenSep(i - 1) {
			r[i].startNewToken()
		}
	}
}

// initFirstCell fills index 0 of the current row (j = -1, before any
// scalar of itemB has been consumed): the cost of deleting the prefix
// of itemA up to and including scalar i. Returns the resulting cost,
// which seeds the row's running minimum for early termination.
func (r Row) initFirstCell(rowAbove Row, itemA *Item, i int, ctx ComparisonInfo) float64 {
	r[0].setCosts(rowAbove[0])
	r[0].incrementCosts(itemA.insDelCost(i, ctx))
	r[0].tokenNormLength = rowAbove[0].tokenNormLength + itemA.tokenLenDelta(i)
	if itemA.isTokenSep(i) {
		r[0].startNewToken()
	}
	return r[0].cost
}
