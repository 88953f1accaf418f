package catalog

import "strings"

// Mock USD unit prices. One authoritative table for every consumer;
// unknown symbols default to $1.
var tokenPrices = map[string]float64{
	"ETH":    2400,
	"BTC":    43000,
	"WBTC":   43000,
	"BNB":    310,
	"SOL":    98,
	"ADA":    0.45,
	"MATIC":  0.85,
	"DOT":    6.5,
	"AVAX":   28,
	"FTM":    0.32,
	"OP":     1.85,
	"ARB":    1.1,
	"USDC":   1,
	"USDT":   1,
	"DAI":    1,
	"BUSD":   1,
	"UNI":    6.2,
	"LINK":   14.5,
	"AAVE":   95,
	"CAKE":   2.1,
	"XVS":    8.7,
	"SRM":    0.31,
	"RAY":    0.18,
	"ORCA":   0.85,
	"WETH":   2400,
	"GMX":    45,
	"MAGIC":  1.2,
	"SNX":    2.8,
	"VELO":   0.15,
	"BOO":    2.3,
	"SPIRIT": 0.008,
	"LQDR":   12.5,
	"KSM":    32,
	"GLMR":   0.25,
	"MOVR":   6.8,
	"PARA":   0.12,
	"PNG":    0.18,
	"JOE":    0.35,
	"TIME":   8.9,
	"DJED":   1.0,
	"SHEN":   0.45,
	"MIN":    0.023,
	"BSW":    0.075,
	"WAVAX":  28,
}

// Price returns the mock USD unit price for a token symbol,
// defaulting to 1.0 for unknown tokens.
func Price(symbol string) float64 {
	if p, ok := tokenPrices[strings.ToUpper(strings.TrimSpace(symbol))]; ok {
		return p
	}
	return 1.0
}

// KnownToken reports whether the pricing table carries the symbol.
func KnownToken(symbol string) bool {
	_, ok := tokenPrices[strings.ToUpper(strings.TrimSpace(symbol))]
	return ok
}
