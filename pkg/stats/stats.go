// Package stats aggregates the transaction ledger for the portfolio
// view.
package stats

import (
	"strconv"
	"strings"

	"github.com/axiomhq/hyperloglog"

	"bridgeswap/pkg/types"
)

// Summary is the aggregated view of a set of ledger records.
type Summary struct {
	Total        int     `json:"total"`
	Completed    int     `json:"completed"`
	Pending      int     `json:"pending"`
	Failed       int     `json:"failed"`
	VolumeUSD    float64 `json:"volume_usd"`
	UniqueRoutes uint64  `json:"unique_routes"`
}

// SuccessRate returns completed transactions as a fraction of the
// total, 0 when the ledger is empty.
func (s Summary) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Completed) / float64(s.Total)
}

// Summarize computes totals, per-status counts, USD volume and an
// estimate of distinct swap routes (source chain/token to destination
// chain/token pairs) across the records.
func Summarize(records []types.TransactionRecord) Summary {
	var sum Summary
	hll := hyperloglog.New16()

	for _, rec := range records {
		sum.Total++
		switch rec.Status {
		case types.TxCompleted:
			sum.Completed++
		case types.TxPending:
			sum.Pending++
		case types.TxFailed:
			sum.Failed++
		}
		sum.VolumeUSD += ParseUSD(rec.USDValue)
		hll.Insert([]byte(routeKey(rec)))
	}

	sum.UniqueRoutes = hll.Estimate()
	return sum
}

func routeKey(rec types.TransactionRecord) string {
	return rec.SourceChain + ":" + rec.SourceToken + ">" + rec.DestChain + ":" + rec.DestToken
}

// ParseUSD converts a display value like "$1,234.56" back to a float.
// Unparseable values count as zero.
func ParseUSD(v string) float64 {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "$")
	v = strings.ReplaceAll(v, ",", "")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}
