package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByID(t *testing.T) {
	n, ok := ByID("cardano")
	require.True(t, ok)
	assert.Equal(t, "Cardano", n.Name)
	assert.Equal(t, "ADA", n.Symbol)

	// lookup is case and whitespace insensitive
	n, ok = ByID("  Ethereum ")
	require.True(t, ok)
	assert.Equal(t, "ethereum", n.ID)

	_, ok = ByID("dogecoin")
	assert.False(t, ok)
}

func TestByName(t *testing.T) {
	n, ok := ByName("bnb chain")
	require.True(t, ok)
	assert.Equal(t, "bnb", n.ID)

	_, ok = ByName("Bitcoin")
	assert.False(t, ok)
}

func TestByStatusKeepsDeclarationOrder(t *testing.T) {
	active := ByStatus(StatusActive)
	require.NotEmpty(t, active)
	assert.Equal(t, "cardano", active[0].ID)
	assert.Equal(t, "ethereum", active[1].ID)

	for _, n := range active {
		assert.Equal(t, StatusActive, n.Status)
	}
}

func TestByCategory(t *testing.T) {
	evm := ByCategory(CategoryEVM)
	require.NotEmpty(t, evm)
	for _, n := range evm {
		assert.Equal(t, "0x", n.AddressPrefix)
	}

	sol := ByCategory(CategorySolana)
	require.Len(t, sol, 1)
	assert.Equal(t, "solana", sol[0].ID)
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	require.Len(t, all, 10)

	all[0].Name = "mutated"
	fresh := All()
	assert.Equal(t, "Cardano", fresh[0].Name)
}

func TestExplorerTxURL(t *testing.T) {
	url, err := ExplorerTxURL("ethereum", "0xabc123")
	require.NoError(t, err)
	assert.Equal(t, "https://etherscan.io/tx/0xabc123", url)

	_, err = ExplorerTxURL("unknown", "0xabc123")
	assert.Error(t, err)
}

func TestTokensEndWithOther(t *testing.T) {
	for _, n := range All() {
		menu := Tokens(n.ID)
		require.NotEmpty(t, menu, n.ID)
		assert.Equal(t, "Other", menu[len(menu)-1], n.ID)
	}

	// unknown networks still offer the custom-token escape hatch
	assert.Equal(t, []string{"Other"}, Tokens("unknown"))
}

func TestPrice(t *testing.T) {
	assert.Equal(t, 2400.0, Price("ETH"))
	assert.Equal(t, 0.45, Price("ADA"))
	assert.Equal(t, 1.0, Price("USDC"))

	// unknown symbols price at one dollar
	assert.Equal(t, 1.0, Price("NOPE"))
}
