package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bridgeswap/pkg/catalog"
)

var filterCategory string

var networksCmd = &cobra.Command{
	Use:     "networks",
	Aliases: []string{"list-networks", "ls"},
	Short:   "List all supported networks",
	Long: `List the blockchains available for swaps, with their token menus.

Examples:
  bridgeswap networks
  bridgeswap networks --category evm`,
	Run: runNetworks,
}

func init() {
	rootCmd.AddCommand(networksCmd)

	networksCmd.Flags().StringVar(&filterCategory, "category", "", "Filter by category (evm, cardano, solana, polkadot)")
}

func runNetworks(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	nets := catalog.All()
	if filterCategory != "" {
		nets = catalog.ByCategory(catalog.Category(strings.ToLower(filterCategory)))
	}

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(nets, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	displayNetworks(nets)
}

func displayNetworks(nets []catalog.Network) {
	if len(nets) == 0 {
		fmt.Println("\nNo networks found matching the criteria.")
		return
	}

	fmt.Println("\n" + strings.Repeat("=", 90))
	color.Green("                            SUPPORTED NETWORKS")
	fmt.Println(strings.Repeat("=", 90))

	for _, n := range nets {
		color.Cyan("\n%s (%s)", strings.ToUpper(n.Name), n.Symbol)
		fmt.Println(strings.Repeat("-", 90))
		fmt.Printf("  %s\n", n.Description)
		fmt.Printf("  Explorer:      %s\n", color.HiBlackString(n.ExplorerURL))
		fmt.Printf("  Token format:  %s\n", n.TokenFormat)

		tokens := catalog.Tokens(n.ID)
		fmt.Printf("  Tokens:        %s\n", color.YellowString(strings.Join(tokens, ", ")))
	}

	fmt.Println("\n" + strings.Repeat("=", 90))
	fmt.Printf("\nTotal: %d networks\n\n", len(nets))
}
