package tokendist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRow_InitFirstRow(t *testing.T) {
	cfg, err := NewConfigBuilder().Build()
	require.NoError(t, err)
	itemB := newItem("ab", cfg)
	ctx := ComparisonInfo{}

	row := newRow(len(itemB.text))
	row.initFirstRow(itemB, ctx)

	require.Equal(t, 0.0, row[0].cost)
	require.Equal(t, cfg.insDelCost+cfg.tokenInitialPenalty, row[1].cost)
	require.Equal(t, 2*cfg.insDelCost+cfg.tokenInitialPenalty, row[2].cost)
}

func TestRow_InitFirstCell(t *testing.T) {
	cfg, err := NewConfigBuilder().Build()
	require.NoError(t, err)
	itemA := newItem("ab", cfg)
	ctx := ComparisonInfo{}

	rowAbove := newRow(3)
	rowAbove[0] = Cell{cost: 1.0}

	rowCurr := newRow(3)
	got := rowCurr.initFirstCell(rowAbove, itemA, 0, ctx)
	require.Equal(t, 1.0+cfg.insDelCost+cfg.tokenInitialPenalty, got)
	require.Equal(t, got, rowCurr[0].cost)
}
