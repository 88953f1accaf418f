package quote

import (
	"encoding/hex"
	"math/rand"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"

	"bridgeswap/pkg/catalog"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	// bech32 character set, used for Cardano-style addresses
	bech32Alphabet = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
)

func randToken(r *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = idAlphabet[r.Intn(len(idAlphabet))]
	}
	return string(b)
}

// NewQuoteID generates a fresh quote identifier.
func NewQuoteID(r *rand.Rand) string {
	return "BSW_" + randToken(r, 9)
}

// NewMemo generates a short deposit memo token.
func NewMemo(r *rand.Rand) string {
	return "BSW_" + randToken(r, 6)
}

// MockDepositAddress synthesizes a deposit address in the style of the
// given network: hex for EVM chains, bech32-like for Cardano, base58
// for Solana and Polkadot. Unknown networks fall back to EVM style.
func MockDepositAddress(r *rand.Rand, networkID string) string {
	n, ok := catalog.ByID(networkID)
	if !ok {
		return evmAddress(r)
	}
	switch n.Category {
	case catalog.CategoryCardano:
		return cardanoAddress(r)
	case catalog.CategorySolana:
		return solanaAddress(r)
	case catalog.CategoryPolkadot:
		return polkadotAddress(r)
	default:
		return evmAddress(r)
	}
}

// MockTxHash synthesizes a transaction hash in the style of the given
// network: 0x-prefixed hex for EVM chains, bare hex for Cardano, base58
// signatures for Solana.
func MockTxHash(r *rand.Rand, networkID string) string {
	n, ok := catalog.ByID(networkID)
	if !ok {
		return evmTxHash(r)
	}
	switch n.Category {
	case catalog.CategoryCardano:
		return cardanoTxHash(r)
	case catalog.CategorySolana:
		return solanaTxHash(r)
	default:
		return evmTxHash(r)
	}
}

// MockWalletAddress synthesizes a wallet address whose format depends
// on the wallet kind: Cardano-style wallets yield bech32-like addresses,
// everything else yields an EVM address.
func MockWalletAddress(r *rand.Rand, walletKind string) string {
	switch walletKind {
	case "eternl", "lace":
		return cardanoAddress(r)
	default:
		return evmAddress(r)
	}
}

func evmAddress(r *rand.Rand) string {
	var b [20]byte
	r.Read(b[:])
	return common.BytesToAddress(b[:]).Hex()
}

func evmTxHash(r *rand.Rand) string {
	var b [32]byte
	r.Read(b[:])
	return hexutil.Encode(b[:])
}

func cardanoAddress(r *rand.Rand) string {
	b := make([]byte, 58)
	for i := range b {
		b[i] = bech32Alphabet[r.Intn(len(bech32Alphabet))]
	}
	return "addr1" + string(b)
}

func cardanoTxHash(r *rand.Rand) string {
	var b [32]byte
	r.Read(b[:])
	return hex.EncodeToString(b[:])
}

func solanaAddress(r *rand.Rand) string {
	var b [32]byte
	r.Read(b[:])
	return solana.PublicKeyFromBytes(b[:]).String()
}

func solanaTxHash(r *rand.Rand) string {
	var b [64]byte
	r.Read(b[:])
	return solana.SignatureFromBytes(b[:]).String()
}

// Polkadot SS58 addresses lead with '1' on the relay chain; a zero
// version byte before base58 encoding reproduces that shape.
func polkadotAddress(r *rand.Rand) string {
	b := make([]byte, 33)
	r.Read(b[1:])
	b[0] = 0
	return base58.Encode(b)
}
