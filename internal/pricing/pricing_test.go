package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	s := Summarize(1000)
	require.InDelta(t, 1000, s.Subtotal, 0.001)
	require.InDelta(t, 180, s.Tax, 0.001)
	require.Zero(t, s.Shipping)
	require.InDelta(t, 1180, s.Total, 0.001)
}

func TestSummarizeZero(t *testing.T) {
	s := Summarize(0)
	require.Zero(t, s.Tax)
	require.Zero(t, s.Total)
}
