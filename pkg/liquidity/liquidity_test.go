package liquidity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	swaperr "bridgeswap/pkg/errors"
)

func TestPoolsCatalog(t *testing.T) {
	ps := Pools()
	require.Len(t, ps, 6)
	assert.Equal(t, "ETH/USDC", ps[0].Pair())

	// every pool references catalog network ids
	for _, p := range ps {
		assert.NotEmpty(t, p.TokenA.NetworkID, p.Pair())
		assert.NotEmpty(t, p.TokenB.NetworkID, p.Pair())
		assert.Greater(t, p.APR, 0.0, p.Pair())
	}

	// returned slice is a copy
	ps[0].APR = -1
	assert.Equal(t, 15.4, Pools()[0].APR)
}

func TestPoolByID(t *testing.T) {
	p, err := PoolByID(2)
	require.NoError(t, err)
	assert.Equal(t, "ADA/USDT", p.Pair())

	_, err = PoolByID(99)
	require.Error(t, err)
	assert.True(t, swaperr.IsKind(err, swaperr.KindNotFound))
}

func TestSummarizePools(t *testing.T) {
	s := SummarizePools(Pools())
	assert.Equal(t, 6, s.TotalPools)
	assert.InDelta(t, 768703934, s.TotalLiquidity, 0.01)
	assert.InDelta(t, 15.9833, s.AverageAPR, 0.001)
	assert.InDelta(t, 28350.58, s.UserTotalValue, 0.01)

	empty := SummarizePools(nil)
	assert.Zero(t, empty.AverageAPR)
}

func TestSummarizePositions(t *testing.T) {
	s := SummarizePositions(Positions())
	assert.Equal(t, 6, s.ActivePositions)
	assert.InDelta(t, 26739.47, s.TotalValue, 0.01)
	// one position is under water, the sum stays signed
	assert.InDelta(t, 1949.47, s.TotalPnL, 0.01)
	assert.InDelta(t, 382.92, s.TotalFeesEarned, 0.01)
	assert.InDelta(t, 17.2167, s.AverageAPR, 0.001)
}

func TestCounterAmountUsesReserveRatio(t *testing.T) {
	p, err := PoolByID(1)
	require.NoError(t, err)

	// 1 ETH deposit asks for 107,234/45.6 USDC
	assert.InDelta(t, 2351.6228, CounterAmount(p, 1), 0.001)
	assert.InDelta(t, 4703.2456, CounterAmount(p, 2), 0.001)
	assert.Zero(t, CounterAmount(Pool{}, 5))
}

func TestRemoveFromPosition(t *testing.T) {
	pos := Positions()[0]

	r, err := RemoveFromPosition(pos, 25)
	require.NoError(t, err)
	assert.Equal(t, "ETH", r.TokenA)
	assert.Equal(t, "USDC", r.TokenB)
	assert.InDelta(t, 0.6125, r.AmountA, 1e-9)
	assert.InDelta(t, 1308.6675, r.AmountB, 1e-9)

	full, err := RemoveFromPosition(pos, 100)
	require.NoError(t, err)
	assert.InDelta(t, 2.45, full.AmountA, 1e-9)

	for _, pct := range []int{0, -1, 101} {
		_, err := RemoveFromPosition(pos, pct)
		require.Error(t, err)
		assert.True(t, swaperr.IsKind(err, swaperr.KindInvalidAmount))
	}
}

func TestFormatCompactUSD(t *testing.T) {
	assert.Equal(t, "$1.20B", FormatCompactUSD(1.2e9))
	assert.Equal(t, "$768.70M", FormatCompactUSD(768703934))
	assert.Equal(t, "$28.35K", FormatCompactUSD(28350.58))
	assert.Equal(t, "$999.00", FormatCompactUSD(999))
}

func TestParseSignedUSD(t *testing.T) {
	assert.Equal(t, 566.78, parseSignedUSD("+$566.78"))
	assert.Equal(t, -143.77, parseSignedUSD("-$143.77"))
	assert.Zero(t, parseSignedUSD("n/a"))
}
