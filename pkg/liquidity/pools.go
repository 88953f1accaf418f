package liquidity

// The pool catalog and the demo user's positions are fixed tables,
// loaded once at process start like the network catalog.

var pools = []Pool{
	{
		ID:             1,
		TokenA:         PoolToken{Symbol: "ETH", NetworkID: "ethereum", Amount: "45.6"},
		TokenB:         PoolToken{Symbol: "USDC", NetworkID: "ethereum", Amount: "107,234"},
		TotalLiquidity: "$251,456,789",
		Volume24h:      "$12,345,678",
		APR:            15.4,
		UserShare:      "0.034%",
		UserValue:      "$8,456.78",
		Fees24h:        "$124.56",
	},
	{
		ID:             2,
		TokenA:         PoolToken{Symbol: "ADA", NetworkID: "cardano", Amount: "125,678"},
		TokenB:         PoolToken{Symbol: "USDT", NetworkID: "ethereum", Amount: "56,789"},
		TotalLiquidity: "$56,789,123",
		Volume24h:      "$3,456,789",
		APR:            22.8,
		UserShare:      "0.067%",
		UserValue:      "$3,789.45",
		Fees24h:        "$78.90",
	},
	{
		ID:             3,
		TokenA:         PoolToken{Symbol: "SOL", NetworkID: "solana", Amount: "1,234"},
		TokenB:         PoolToken{Symbol: "USDC", NetworkID: "ethereum", Amount: "121,876"},
		TotalLiquidity: "$121,876,543",
		Volume24h:      "$8,765,432",
		APR:            18.9,
		UserShare:      "0.012%",
		UserValue:      "$1,456.23",
		Fees24h:        "$45.67",
	},
	{
		ID:             4,
		TokenA:         PoolToken{Symbol: "MATIC", NetworkID: "polygon", Amount: "89,567"},
		TokenB:         PoolToken{Symbol: "ETH", NetworkID: "ethereum", Amount: "34.7"},
		TotalLiquidity: "$81,234,567",
		Volume24h:      "$4,567,890",
		APR:            12.3,
		UserShare:      "0.089%",
		UserValue:      "$7,234.56",
		Fees24h:        "$56.78",
	},
	{
		ID:             5,
		TokenA:         PoolToken{Symbol: "BNB", NetworkID: "bnb", Amount: "678"},
		TokenB:         PoolToken{Symbol: "BUSD", NetworkID: "ethereum", Amount: "189,456"},
		TotalLiquidity: "$189,456,789",
		Volume24h:      "$9,876,543",
		APR:            9.7,
		UserShare:      "0.023%",
		UserValue:      "$4,356.78",
		Fees24h:        "$43.21",
	},
	{
		ID:             6,
		TokenA:         PoolToken{Symbol: "DOT", NetworkID: "polkadot", Amount: "12,345"},
		TokenB:         PoolToken{Symbol: "USDC", NetworkID: "ethereum", Amount: "67,890"},
		TotalLiquidity: "$67,890,123",
		Volume24h:      "$2,345,678",
		APR:            16.8,
		UserShare:      "0.045%",
		UserValue:      "$3,056.78",
		Fees24h:        "$28.90",
	},
}

var positions = []Position{
	{
		ID:            1,
		TokenA:        PositionToken{Symbol: "ETH", NetworkID: "ethereum", Balance: "2.45"},
		TokenB:        PositionToken{Symbol: "USDC", NetworkID: "ethereum", Balance: "5,234.67"},
		PoolShare:     "0.034%",
		CurrentValue:  "$8,456.78",
		InitialValue:  "$7,890.00",
		PnL:           "+$566.78",
		PnLPercentage: "+7.18%",
		APR:           15.4,
		FeesEarned:    "$124.56",
		TimeInPool:    "14 days",
		LastAdded:     "2024-12-15",
	},
	{
		ID:            2,
		TokenA:        PositionToken{Symbol: "ADA", NetworkID: "cardano", Balance: "8,567.89"},
		TokenB:        PositionToken{Symbol: "USDT", NetworkID: "ethereum", Balance: "3,789.45"},
		PoolShare:     "0.067%",
		CurrentValue:  "$3,789.45",
		InitialValue:  "$3,200.00",
		PnL:           "+$589.45",
		PnLPercentage: "+18.42%",
		APR:           22.8,
		FeesEarned:    "$78.90",
		TimeInPool:    "21 days",
		LastAdded:     "2024-12-08",
	},
	{
		ID:            3,
		TokenA:        PositionToken{Symbol: "SOL", NetworkID: "solana", Balance: "12.34"},
		TokenB:        PositionToken{Symbol: "USDC", NetworkID: "ethereum", Balance: "1,456.23"},
		PoolShare:     "0.012%",
		CurrentValue:  "$1,456.23",
		InitialValue:  "$1,600.00",
		PnL:           "-$143.77",
		PnLPercentage: "-8.99%",
		APR:           18.9,
		FeesEarned:    "$45.67",
		TimeInPool:    "7 days",
		LastAdded:     "2024-12-22",
	},
	{
		ID:            4,
		TokenA:        PositionToken{Symbol: "MATIC", NetworkID: "polygon", Balance: "4,567.89"},
		TokenB:        PositionToken{Symbol: "ETH", NetworkID: "ethereum", Balance: "1.75"},
		PoolShare:     "0.089%",
		CurrentValue:  "$7,234.56",
		InitialValue:  "$6,800.00",
		PnL:           "+$434.56",
		PnLPercentage: "+6.39%",
		APR:           12.3,
		FeesEarned:    "$56.78",
		TimeInPool:    "28 days",
		LastAdded:     "2024-12-01",
	},
	{
		ID:            5,
		TokenA:        PositionToken{Symbol: "DOT", NetworkID: "polkadot", Balance: "234.56"},
		TokenB:        PositionToken{Symbol: "USDC", NetworkID: "ethereum", Balance: "987.65"},
		PoolShare:     "0.023%",
		CurrentValue:  "$2,345.67",
		InitialValue:  "$2,100.00",
		PnL:           "+$245.67",
		PnLPercentage: "+11.70%",
		APR:           19.2,
		FeesEarned:    "$34.12",
		TimeInPool:    "18 days",
		LastAdded:     "2024-12-11",
	},
	{
		ID:            6,
		TokenA:        PositionToken{Symbol: "AVAX", NetworkID: "avalanche", Balance: "89.12"},
		TokenB:        PositionToken{Symbol: "USDT", NetworkID: "ethereum", Balance: "1,234.56"},
		PoolShare:     "0.045%",
		CurrentValue:  "$3,456.78",
		InitialValue:  "$3,200.00",
		PnL:           "+$256.78",
		PnLPercentage: "+8.02%",
		APR:           14.7,
		FeesEarned:    "$42.89",
		TimeInPool:    "25 days",
		LastAdded:     "2024-12-04",
	},
}
