package parser

import (
	"fmt"
	"regexp"
	"strings"

	"bridgeswap/pkg/errors"
	"bridgeswap/pkg/types"
)

// ParseSwapCommand parses a natural language swap command
// Examples:
//   - "swap 100 ADA to ETH"
//   - "1.5 ETH to SOL"
//   - "100 USDC on polygon to ETH on arbitrum"
func ParseSwapCommand(command string) (*types.SwapRequest, error) {
	// Normalize the command
	command = strings.TrimSpace(strings.ToUpper(command))

	// Remove the word "SWAP" if present at the beginning
	command = strings.TrimPrefix(command, "SWAP ")

	// Pattern: <amount> <source_token> [ON <chain>] TO <dest_token> [ON <chain>]
	pattern := regexp.MustCompile(`^(\d+\.?\d*)\s+([A-Z0-9]+)(?:\s+ON\s+([A-Z0-9 ]+?))?\s+TO\s+([A-Z0-9]+)(?:\s+ON\s+([A-Z0-9 ]+))?$`)

	matches := pattern.FindStringSubmatch(command)
	if matches == nil {
		return nil, fmt.Errorf("invalid swap command format. Expected: '<amount> <token> to <token>' (e.g., '100 ADA to ETH')")
	}

	req := &types.SwapRequest{
		Amount:      matches[1],
		SourceToken: matches[2],
		SourceChain: normalizeChain(matches[3], matches[2]),
		DestToken:   matches[4],
		DestChain:   normalizeChain(matches[5], matches[4]),
	}
	return req, nil
}

// ValidateSwapRequest validates that a swap request has all required fields
func ValidateSwapRequest(req *types.SwapRequest) error {
	if req.Amount == "" {
		return errors.New(errors.KindMissingRequiredField, "amount is required")
	}
	if req.SourceSymbol() == "" {
		return errors.New(errors.KindMissingRequiredField, "source token is required")
	}
	if req.DestSymbol() == "" {
		return errors.New(errors.KindMissingRequiredField, "destination token is required")
	}
	if req.SourceChain == "" {
		return errors.New(errors.KindMissingRequiredField, "source network is required")
	}
	if req.DestChain == "" {
		return errors.New(errors.KindMissingRequiredField, "destination network is required")
	}
	return nil
}

// defaultChains maps token symbols to the network they most commonly
// live on, used when the command names no chain explicitly.
var defaultChains = map[string]string{
	"ADA":   "cardano",
	"DJED":  "cardano",
	"MIN":   "cardano",
	"MINS":  "cardano",
	"ETH":   "ethereum",
	"WBTC":  "ethereum",
	"DAI":   "ethereum",
	"USDC":  "ethereum",
	"USDT":  "ethereum",
	"UNI":   "ethereum",
	"LINK":  "ethereum",
	"AAVE":  "ethereum",
	"BNB":   "bnb",
	"BUSD":  "bnb",
	"CAKE":  "bnb",
	"SOL":   "solana",
	"RAY":   "solana",
	"ORCA":  "solana",
	"MATIC": "polygon",
	"WETH":  "polygon",
	"ARB":   "arbitrum",
	"GMX":   "arbitrum",
	"OP":    "optimism",
	"SNX":   "optimism",
	"FTM":   "fantom",
	"BOO":   "fantom",
	"DOT":   "polkadot",
	"KSM":   "polkadot",
	"AVAX":  "avalanche",
	"JOE":   "avalanche",
}

// chainAliases maps spoken chain names from the command to network ids.
var chainAliases = map[string]string{
	"CARDANO":   "cardano",
	"ADA":       "cardano",
	"ETHEREUM":  "ethereum",
	"ETH":       "ethereum",
	"BNB":       "bnb",
	"BNB CHAIN": "bnb",
	"BSC":       "bnb",
	"SOLANA":    "solana",
	"SOL":       "solana",
	"POLYGON":   "polygon",
	"MATIC":     "polygon",
	"ARBITRUM":  "arbitrum",
	"OPTIMISM":  "optimism",
	"FANTOM":    "fantom",
	"POLKADOT":  "polkadot",
	"DOT":       "polkadot",
	"AVALANCHE": "avalanche",
	"AVAX":      "avalanche",
}

func normalizeChain(chain, token string) string {
	chain = strings.TrimSpace(chain)
	if chain != "" {
		if id, ok := chainAliases[chain]; ok {
			return id
		}
		return strings.ToLower(chain)
	}
	return defaultChains[strings.ToUpper(token)]
}
