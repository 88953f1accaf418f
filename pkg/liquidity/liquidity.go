// Package liquidity holds the pool catalog and the demo user's
// liquidity positions, with the aggregates the liquidity views show.
package liquidity

import (
	"fmt"
	"strconv"
	"strings"

	swaperr "bridgeswap/pkg/errors"
)

// PoolToken is one side of a pool pair. Amount is the pooled reserve
// as a display string, comma-grouped like the rest of the ledger.
type PoolToken struct {
	Symbol    string `json:"symbol"`
	NetworkID string `json:"network_id"`
	Amount    string `json:"amount"`
}

// Pool describes one liquidity pool, including the demo user's stake
// in it.
type Pool struct {
	ID             int       `json:"id"`
	TokenA         PoolToken `json:"token_a"`
	TokenB         PoolToken `json:"token_b"`
	TotalLiquidity string    `json:"total_liquidity"`
	Volume24h      string    `json:"volume_24h"`
	APR            float64   `json:"apr"`
	UserShare      string    `json:"user_share"`
	UserValue      string    `json:"user_value"`
	Fees24h        string    `json:"fees_24h"`
}

// Pair renders the pool pair label, e.g. "ETH/USDC".
func (p Pool) Pair() string {
	return p.TokenA.Symbol + "/" + p.TokenB.Symbol
}

// PositionToken is one side of a user position; Balance is the user's
// share of that token.
type PositionToken struct {
	Symbol    string `json:"symbol"`
	NetworkID string `json:"network_id"`
	Balance   string `json:"balance"`
}

// Position is one of the user's liquidity positions.
type Position struct {
	ID            int           `json:"id"`
	TokenA        PositionToken `json:"token_a"`
	TokenB        PositionToken `json:"token_b"`
	PoolShare     string        `json:"pool_share"`
	CurrentValue  string        `json:"current_value"`
	InitialValue  string        `json:"initial_value"`
	PnL           string        `json:"pnl"`
	PnLPercentage string        `json:"pnl_percentage"`
	APR           float64       `json:"apr"`
	FeesEarned    string        `json:"fees_earned"`
	TimeInPool    string        `json:"time_in_pool"`
	LastAdded     string        `json:"last_added"`
}

// Pair renders the position pair label.
func (p Position) Pair() string {
	return p.TokenA.Symbol + "/" + p.TokenB.Symbol
}

// Pools returns the pool catalog, newest-listed first order preserved.
func Pools() []Pool {
	out := make([]Pool, len(pools))
	copy(out, pools)
	return out
}

// PoolByID looks a pool up by its numeric id.
func PoolByID(id int) (Pool, error) {
	for _, p := range pools {
		if p.ID == id {
			return p, nil
		}
	}
	return Pool{}, swaperr.Newf(swaperr.KindNotFound, "pool %d not found", id)
}

// Positions returns the user's open positions.
func Positions() []Position {
	out := make([]Position, len(positions))
	copy(out, positions)
	return out
}

// PoolStats aggregates the pool catalog for the pools header.
type PoolStats struct {
	TotalLiquidity float64 `json:"total_liquidity"`
	AverageAPR     float64 `json:"average_apr"`
	TotalPools     int     `json:"total_pools"`
	UserTotalValue float64 `json:"user_total_value"`
}

// SummarizePools computes catalog-wide liquidity, the mean APR and the
// user's combined stake across all pools.
func SummarizePools(ps []Pool) PoolStats {
	var s PoolStats
	s.TotalPools = len(ps)
	for _, p := range ps {
		s.TotalLiquidity += parseDisplayNumber(p.TotalLiquidity)
		s.AverageAPR += p.APR
		s.UserTotalValue += parseDisplayNumber(p.UserValue)
	}
	if s.TotalPools > 0 {
		s.AverageAPR /= float64(s.TotalPools)
	}
	return s
}

// PositionStats aggregates the user's positions for the "your
// liquidity" header.
type PositionStats struct {
	TotalValue      float64 `json:"total_value"`
	TotalPnL        float64 `json:"total_pnl"`
	TotalFeesEarned float64 `json:"total_fees_earned"`
	AverageAPR      float64 `json:"average_apr"`
	ActivePositions int     `json:"active_positions"`
}

// SummarizePositions computes total current value, signed P&L, earned
// fees and the mean APR across the given positions.
func SummarizePositions(ps []Position) PositionStats {
	var s PositionStats
	s.ActivePositions = len(ps)
	for _, p := range ps {
		s.TotalValue += parseDisplayNumber(p.CurrentValue)
		s.TotalPnL += parseSignedUSD(p.PnL)
		s.TotalFeesEarned += parseDisplayNumber(p.FeesEarned)
		s.AverageAPR += p.APR
	}
	if s.ActivePositions > 0 {
		s.AverageAPR /= float64(s.ActivePositions)
	}
	return s
}

// CounterAmount prices the token-B deposit matching an amountA deposit
// at the pool's current reserve ratio.
func CounterAmount(p Pool, amountA float64) float64 {
	a := parseDisplayNumber(p.TokenA.Amount)
	if a == 0 {
		return 0
	}
	return amountA * parseDisplayNumber(p.TokenB.Amount) / a
}

// Removal is what a partial withdrawal pays out.
type Removal struct {
	TokenA  string  `json:"token_a"`
	TokenB  string  `json:"token_b"`
	AmountA float64 `json:"amount_a"`
	AmountB float64 `json:"amount_b"`
	Percent int     `json:"percent"`
}

// RemoveFromPosition previews withdrawing percent of a position's
// token balances. Percent must be within 1..100.
func RemoveFromPosition(p Position, percent int) (Removal, error) {
	if percent < 1 || percent > 100 {
		return Removal{}, swaperr.Newf(swaperr.KindInvalidAmount, "removal percentage must be between 1 and 100, got %d", percent)
	}
	return Removal{
		TokenA:  p.TokenA.Symbol,
		TokenB:  p.TokenB.Symbol,
		AmountA: parseDisplayNumber(p.TokenA.Balance) * float64(percent) / 100,
		AmountB: parseDisplayNumber(p.TokenB.Balance) * float64(percent) / 100,
		Percent: percent,
	}, nil
}

// FormatCompactUSD renders a dollar figure with a B/M/K suffix for the
// stats headers.
func FormatCompactUSD(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("$%.2fK", v/1e3)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}

// parseDisplayNumber reads a comma-grouped display value, with or
// without a leading dollar sign. Unparseable values count as zero.
func parseDisplayNumber(v string) float64 {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "$")
	v = strings.ReplaceAll(v, ",", "")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

// parseSignedUSD reads a P&L value like "+$566.78" or "-$143.77".
func parseSignedUSD(v string) float64 {
	v = strings.TrimSpace(v)
	neg := strings.HasPrefix(v, "-")
	v = strings.TrimLeft(v, "+-")
	f := parseDisplayNumber(v)
	if neg {
		return -f
	}
	return f
}
