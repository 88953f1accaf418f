package catalog

import (
	"fmt"
	"strings"
)

// NetworkStatus defines whether a chain is live or still planned
type NetworkStatus string

const (
	StatusActive   NetworkStatus = "active"
	StatusPlanning NetworkStatus = "planning"
)

// Category groups chains by address and asset style
type Category string

const (
	CategoryEVM      Category = "evm"
	CategoryCardano  Category = "cardano"
	CategorySolana   Category = "solana"
	CategoryPolkadot Category = "polkadot"
	CategoryOther    Category = "other"
)

// Network describes a supported chain. The table is immutable and
// loaded once at process start.
type Network struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Symbol        string        `json:"symbol"`
	Color         string        `json:"color"`
	Status        NetworkStatus `json:"status"`
	Category      Category      `json:"category"`
	ExplorerURL   string        `json:"explorer_url"`
	LogoRef       string        `json:"logo_ref,omitempty"`
	Description   string        `json:"description"`
	AddressPrefix string        `json:"address_prefix"`
	TokenFormat   string        `json:"token_format"`
}

var networks = []Network{
	{
		ID:            "cardano",
		Name:          "Cardano",
		Symbol:        "ADA",
		Color:         "#0033AD",
		Status:        StatusActive,
		Category:      CategoryCardano,
		ExplorerURL:   "https://cexplorer.io",
		LogoRef:       "ada-logo.png",
		Description:   "Native blockchain with non-custodial swap support",
		AddressPrefix: "addr1",
		TokenFormat:   "Policy ID",
	},
	{
		ID:            "ethereum",
		Name:          "Ethereum",
		Symbol:        "ETH",
		Color:         "#627EEA",
		Status:        StatusActive,
		Category:      CategoryEVM,
		ExplorerURL:   "https://etherscan.io",
		LogoRef:       "eth-logo.png",
		Description:   "Leading smart contract platform",
		AddressPrefix: "0x",
		TokenFormat:   "Contract Address",
	},
	{
		ID:            "bnb",
		Name:          "BNB Chain",
		Symbol:        "BNB",
		Color:         "#F3BA2F",
		Status:        StatusActive,
		Category:      CategoryEVM,
		ExplorerURL:   "https://bscscan.com",
		LogoRef:       "bnb-logo.png",
		Description:   "Fast and low-cost EVM compatible chain",
		AddressPrefix: "0x",
		TokenFormat:   "Contract Address",
	},
	{
		ID:            "solana",
		Name:          "Solana",
		Symbol:        "SOL",
		Color:         "#9945FF",
		Status:        StatusActive,
		Category:      CategorySolana,
		ExplorerURL:   "https://explorer.solana.com",
		LogoRef:       "solana-logo.png",
		Description:   "High-performance blockchain for DeFi and NFTs",
		AddressPrefix: "",
		TokenFormat:   "Token Address",
	},
	{
		ID:            "polygon",
		Name:          "Polygon",
		Symbol:        "MATIC",
		Color:         "#8247E5",
		Status:        StatusActive,
		Category:      CategoryEVM,
		ExplorerURL:   "https://polygonscan.com",
		LogoRef:       "polygon-logo.png",
		Description:   "Ethereum scaling solution with low fees",
		AddressPrefix: "0x",
		TokenFormat:   "Contract Address",
	},
	{
		ID:            "arbitrum",
		Name:          "Arbitrum",
		Symbol:        "ARB",
		Color:         "#28A0F0",
		Status:        StatusActive,
		Category:      CategoryEVM,
		ExplorerURL:   "https://arbiscan.io",
		LogoRef:       "arbitrum-logo.png",
		Description:   "Ethereum Layer 2 scaling solution",
		AddressPrefix: "0x",
		TokenFormat:   "Contract Address",
	},
	{
		ID:            "optimism",
		Name:          "Optimism",
		Symbol:        "OP",
		Color:         "#FF0420",
		Status:        StatusActive,
		Category:      CategoryEVM,
		ExplorerURL:   "https://optimistic.etherscan.io",
		LogoRef:       "optimism-logo.png",
		Description:   "Ethereum Layer 2 with optimistic rollups",
		AddressPrefix: "0x",
		TokenFormat:   "Contract Address",
	},
	{
		ID:            "fantom",
		Name:          "Fantom",
		Symbol:        "FTM",
		Color:         "#1969FF",
		Status:        StatusActive,
		Category:      CategoryEVM,
		ExplorerURL:   "https://ftmscan.com",
		LogoRef:       "fantom-logo.png",
		Description:   "Fast and scalable DeFi ecosystem",
		AddressPrefix: "0x",
		TokenFormat:   "Contract Address",
	},
	{
		ID:            "polkadot",
		Name:          "Polkadot",
		Symbol:        "DOT",
		Color:         "#E6007A",
		Status:        StatusActive,
		Category:      CategoryPolkadot,
		ExplorerURL:   "https://polkadot.subscan.io",
		LogoRef:       "polkadot-logo.png",
		Description:   "Interoperable multi-chain network",
		AddressPrefix: "1",
		TokenFormat:   "Asset ID",
	},
	{
		ID:            "avalanche",
		Name:          "Avalanche",
		Symbol:        "AVAX",
		Color:         "#E84118",
		Status:        StatusActive,
		Category:      CategoryEVM,
		ExplorerURL:   "https://snowtrace.io",
		LogoRef:       "avalanche-logo.png",
		Description:   "High-performance blockchain with EVM compatibility",
		AddressPrefix: "0x",
		TokenFormat:   "Contract Address",
	},
}

// ByID looks up a network by its id
func ByID(id string) (Network, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, n := range networks {
		if n.ID == id {
			return n, true
		}
	}
	return Network{}, false
}

// ByName looks up a network by its display name
func ByName(name string) (Network, bool) {
	for _, n := range networks {
		if strings.EqualFold(n.Name, name) {
			return n, true
		}
	}
	return Network{}, false
}

// ByStatus returns networks with the given status, in declaration order
func ByStatus(status NetworkStatus) []Network {
	out := make([]Network, 0, len(networks))
	for _, n := range networks {
		if n.Status == status {
			out = append(out, n)
		}
	}
	return out
}

// ByCategory returns networks in the given category, in declaration order
func ByCategory(category Category) []Network {
	out := make([]Network, 0)
	for _, n := range networks {
		if n.Category == category {
			out = append(out, n)
		}
	}
	return out
}

// All returns every network in declaration order
func All() []Network {
	out := make([]Network, len(networks))
	copy(out, networks)
	return out
}

// ExplorerTxURL builds an outbound block-explorer link for a transaction
func ExplorerTxURL(networkID, txHash string) (string, error) {
	n, ok := ByID(networkID)
	if !ok {
		return "", fmt.Errorf("network '%s' not found", networkID)
	}
	return n.ExplorerURL + "/tx/" + txHash, nil
}

// Tokens returns the built-in token menu for a network. The last entry
// is always "Other", which callers treat as the custom-token escape hatch.
func Tokens(networkID string) []string {
	menu, ok := tokenMenus[networkID]
	if !ok {
		return []string{"Other"}
	}
	out := make([]string, len(menu))
	copy(out, menu)
	return out
}

var tokenMenus = map[string][]string{
	"cardano":   {"ADA", "MINS", "USDT", "Other"},
	"bnb":       {"BNB", "USDC", "USDT", "BUSD", "Other"},
	"solana":    {"SOL", "USDC", "USDT", "RAY", "Other"},
	"polygon":   {"MATIC", "USDC", "USDT", "WETH", "Other"},
	"ethereum":  {"ETH", "USDC", "USDT", "WBTC", "Other"},
	"arbitrum":  {"ARB", "ETH", "USDC", "USDT", "Other"},
	"optimism":  {"OP", "ETH", "USDC", "USDT", "Other"},
	"fantom":    {"FTM", "USDC", "USDT", "BOO", "Other"},
	"polkadot":  {"DOT", "USDC", "USDT", "Other"},
	"avalanche": {"AVAX", "USDC", "USDT", "WAVAX", "Other"},
}
