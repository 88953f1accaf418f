package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"bridgeswap/pkg/types"
)

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	assert.Equal(t, 0, sum.Total)
	assert.Equal(t, 0.0, sum.VolumeUSD)
	assert.Equal(t, uint64(0), sum.UniqueRoutes)
	assert.Equal(t, 0.0, sum.SuccessRate())
}

func TestSummarizeCountsAndVolume(t *testing.T) {
	records := []types.TransactionRecord{
		{Status: types.TxCompleted, USDValue: "$1,000.00", SourceChain: "Cardano", SourceToken: "ADA", DestChain: "Ethereum", DestToken: "ETH"},
		{Status: types.TxCompleted, USDValue: "$250.50", SourceChain: "Cardano", SourceToken: "ADA", DestChain: "Ethereum", DestToken: "ETH"},
		{Status: types.TxPending, USDValue: "$49.50", SourceChain: "Solana", SourceToken: "SOL", DestChain: "Polygon", DestToken: "USDC"},
		{Status: types.TxFailed, USDValue: "garbage", SourceChain: "Ethereum", SourceToken: "ETH", DestChain: "Cardano", DestToken: "ADA"},
	}

	sum := Summarize(records)
	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, 2, sum.Completed)
	assert.Equal(t, 1, sum.Pending)
	assert.Equal(t, 1, sum.Failed)
	assert.InDelta(t, 1300.0, sum.VolumeUSD, 1e-9)
	assert.InDelta(t, 0.5, sum.SuccessRate(), 1e-9)

	// three distinct routes; the estimator is exact at this cardinality
	assert.Equal(t, uint64(3), sum.UniqueRoutes)
}

func TestUniqueRoutesEstimate(t *testing.T) {
	var records []types.TransactionRecord
	for i := 0; i < 200; i++ {
		records = append(records, types.TransactionRecord{
			SourceChain: "Cardano",
			SourceToken: fmt.Sprintf("TKN%d", i%50),
			DestChain:   "Ethereum",
			DestToken:   "ETH",
			Status:      types.TxCompleted,
		})
	}

	sum := Summarize(records)
	assert.InDelta(t, 50, float64(sum.UniqueRoutes), 3)
}

func TestParseUSD(t *testing.T) {
	assert.Equal(t, 1234.56, ParseUSD("$1,234.56"))
	assert.Equal(t, 0.45, ParseUSD("$0.45"))
	assert.Equal(t, 1000000.0, ParseUSD("$1,000,000.00"))
	assert.Equal(t, 42.0, ParseUSD("42"))
	assert.Equal(t, 0.0, ParseUSD(""))
	assert.Equal(t, 0.0, ParseUSD("n/a"))
}
