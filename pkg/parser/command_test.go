package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	swaperr "bridgeswap/pkg/errors"
	"bridgeswap/pkg/types"
)

func TestParseSwapCommand(t *testing.T) {
	req, err := ParseSwapCommand("100 ADA to ETH")
	require.NoError(t, err)
	assert.Equal(t, "100", req.Amount)
	assert.Equal(t, "ADA", req.SourceToken)
	assert.Equal(t, "ETH", req.DestToken)
	// chains inferred from token defaults
	assert.Equal(t, "cardano", req.SourceChain)
	assert.Equal(t, "ethereum", req.DestChain)
}

func TestParseSwapCommandWithSwapPrefix(t *testing.T) {
	req, err := ParseSwapCommand("swap 1.5 SOL to USDC")
	require.NoError(t, err)
	assert.Equal(t, "1.5", req.Amount)
	assert.Equal(t, "SOL", req.SourceToken)
	assert.Equal(t, "solana", req.SourceChain)
}

func TestParseSwapCommandExplicitChains(t *testing.T) {
	req, err := ParseSwapCommand("100 USDC on polygon to ETH on arbitrum")
	require.NoError(t, err)
	assert.Equal(t, "USDC", req.SourceToken)
	assert.Equal(t, "polygon", req.SourceChain)
	assert.Equal(t, "ETH", req.DestToken)
	assert.Equal(t, "arbitrum", req.DestChain)
}

func TestParseSwapCommandChainAliases(t *testing.T) {
	req, err := ParseSwapCommand("10 USDT on BSC to DOT")
	require.NoError(t, err)
	assert.Equal(t, "bnb", req.SourceChain)
	assert.Equal(t, "polkadot", req.DestChain)

	req, err = ParseSwapCommand("5 USDC on bnb chain to ADA")
	require.NoError(t, err)
	assert.Equal(t, "bnb", req.SourceChain)
}

func TestParseSwapCommandUnknownToken(t *testing.T) {
	req, err := ParseSwapCommand("10 XYZ to ETH")
	require.NoError(t, err)
	assert.Equal(t, "XYZ", req.SourceToken)
	// no default chain known for the token
	assert.Empty(t, req.SourceChain)
}

func TestParseSwapCommandRejectsBadInput(t *testing.T) {
	for _, input := range []string{
		"",
		"ADA to ETH",
		"100 ADA",
		"100 ADA ETH",
		"lots of ADA to ETH",
	} {
		_, err := ParseSwapCommand(input)
		assert.Error(t, err, input)
	}
}

func TestValidateSwapRequest(t *testing.T) {
	valid := &types.SwapRequest{
		Amount: "100", SourceToken: "ADA", DestToken: "ETH",
		SourceChain: "cardano", DestChain: "ethereum",
	}
	assert.NoError(t, ValidateSwapRequest(valid))

	missing := &types.SwapRequest{Amount: "100", SourceToken: "XYZ", DestToken: "ETH", DestChain: "ethereum"}
	err := ValidateSwapRequest(missing)
	require.Error(t, err)
	assert.True(t, swaperr.IsKind(err, swaperr.KindMissingRequiredField))

	custom := &types.SwapRequest{
		Amount: "1", SourceChain: "ethereum", DestChain: "cardano",
		DestToken:         "ADA",
		CustomSourceToken: &types.CustomToken{Symbol: "PEPE", Address: "0x6982"},
	}
	assert.NoError(t, ValidateSwapRequest(custom))
}
