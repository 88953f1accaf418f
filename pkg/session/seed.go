package session

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"bridgeswap/pkg/catalog"
	"bridgeswap/pkg/quote"
	"bridgeswap/pkg/types"
)

// Networks and token sets used for synthesized history. Broader than
// the swap-page token menus so the seeded ledger looks lived-in.
var seedNetworks = []string{
	"Cardano", "Ethereum", "BNB Chain", "Solana", "Polygon",
	"Arbitrum", "Optimism", "Fantom", "Polkadot", "Avalanche",
}

var seedTokens = map[string][]string{
	"Cardano":   {"ADA", "DJED", "SHEN", "MIN"},
	"Ethereum":  {"ETH", "USDC", "USDT", "DAI", "WBTC", "UNI", "LINK", "AAVE"},
	"BNB Chain": {"BNB", "BUSD", "CAKE", "XVS", "BSW"},
	"Solana":    {"SOL", "USDC", "SRM", "RAY", "ORCA"},
	"Polygon":   {"MATIC", "USDC", "USDT", "WETH", "AAVE"},
	"Arbitrum":  {"ETH", "USDC", "ARB", "GMX", "MAGIC"},
	"Optimism":  {"ETH", "OP", "USDC", "SNX", "VELO"},
	"Fantom":    {"FTM", "USDC", "BOO", "SPIRIT", "LQDR"},
	"Polkadot":  {"DOT", "KSM", "GLMR", "MOVR", "PARA"},
	"Avalanche": {"AVAX", "USDC", "PNG", "JOE", "TIME"},
}

// seedLedger synthesizes count historical records with a skewed-recent
// date distribution: roughly a quarter in the last 3 days, then
// progressively fewer per bucket out to a month back. Statuses follow
// a 70/20/10 completed/pending/failed split.
func seedLedger(r *rand.Rand, now time.Time, count int) []types.TransactionRecord {
	records := make([]types.TransactionRecord, 0, count)

	for i := 0; i < count; i++ {
		var daysAgo int
		switch bucket := scaleBucket(i, count); {
		case bucket < 15:
			daysAgo = r.Intn(3)
		case bucket < 30:
			daysAgo = r.Intn(7) + 3
		case bucket < 45:
			daysAgo = r.Intn(14) + 7
		default:
			daysAgo = r.Intn(16) + 14
		}
		ts := now.Add(-time.Duration(daysAgo)*24*time.Hour -
			time.Duration(r.Intn(24))*time.Hour -
			time.Duration(r.Intn(60))*time.Minute -
			time.Duration(r.Intn(60))*time.Second)

		fromNetwork := seedNetworks[r.Intn(len(seedNetworks))]
		toNetwork := seedNetworks[r.Intn(len(seedNetworks))]
		for toNetwork == fromNetwork {
			toNetwork = seedNetworks[r.Intn(len(seedNetworks))]
		}

		fromTokens := seedTokens[fromNetwork]
		toTokens := seedTokens[toNetwork]
		fromToken := fromTokens[r.Intn(len(fromTokens))]
		toToken := toTokens[r.Intn(len(toTokens))]

		price := catalog.Price(fromToken)
		fromAmount := seedAmount(r, price)
		fromAmountStr := formatSeedAmount(fromAmount, price)

		// 0.95 to 1.05 of the theoretical rate, accounting for fees
		exchangeRate := 0.95 + r.Float64()*0.1
		toPrice := catalog.Price(toToken)
		toAmount := fromAmount * price * exchangeRate / toPrice

		records = append(records, types.TransactionRecord{
			ID:           quote.NewQuoteID(r),
			Timestamp:    ts,
			SourceChain:  fromNetwork,
			SourceToken:  fromToken,
			SourceAmount: fromAmountStr,
			DestChain:    toNetwork,
			DestToken:    toToken,
			DestAmount:   formatSeedAmount(toAmount, toPrice),
			Status:       seedStatus(r),
			TxHash:       seedTxHash(r, fromNetwork),
			USDValue:     quote.FormatUSD(fromAmount * price),
			Temporary:    false,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
	return records
}

// scaleBucket maps an index onto the reference 65-record bucket
// boundaries so non-default seed counts keep the same shape.
func scaleBucket(i, count int) int {
	if count <= 0 {
		return 0
	}
	return i * DefaultSeedCount / count
}

// seedAmount picks an amount sized plausibly for the token's unit price.
func seedAmount(r *rand.Rand, price float64) float64 {
	switch {
	case price > 1000:
		return r.Float64()*2 + 0.001
	case price > 100:
		return r.Float64()*20 + 0.1
	case price > 10:
		return r.Float64()*100 + 1
	case price > 1:
		return r.Float64()*1000 + 10
	default:
		return r.Float64()*10000 + 100
	}
}

func formatSeedAmount(amount, price float64) string {
	switch {
	case price > 100:
		return fmt.Sprintf("%.4f", amount)
	case price > 1:
		return fmt.Sprintf("%.2f", amount)
	default:
		return fmt.Sprintf("%.0f", amount)
	}
}

func seedStatus(r *rand.Rand) types.TxStatus {
	switch v := r.Float64(); {
	case v < 0.7:
		return types.TxCompleted
	case v < 0.9:
		return types.TxPending
	default:
		return types.TxFailed
	}
}

func seedTxHash(r *rand.Rand, networkName string) string {
	if n, ok := catalog.ByName(networkName); ok {
		return quote.MockTxHash(r, n.ID)
	}
	return quote.MockTxHash(r, "ethereum")
}
