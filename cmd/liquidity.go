package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bridgeswap/pkg/errors"
	"bridgeswap/pkg/liquidity"
)

var liquidityCmd = &cobra.Command{
	Use:     "liquidity",
	Aliases: []string{"pools"},
	Short:   "List liquidity pools",
	Long: `List the available liquidity pools with their reserves, volume and APR.

Examples:
  bridgeswap liquidity
  bridgeswap liquidity positions
  bridgeswap liquidity remove 1 --percent 50`,
	Run: runLiquidity,
}

var liquidityPositionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "Show your liquidity positions",
	Run:   runLiquidityPositions,
}

var removePercent int

var liquidityRemoveCmd = &cobra.Command{
	Use:   "remove <position-id>",
	Short: "Preview removing liquidity from a position",
	Args:  cobra.ExactArgs(1),
	Run:   runLiquidityRemove,
}

func init() {
	rootCmd.AddCommand(liquidityCmd)
	liquidityCmd.AddCommand(liquidityPositionsCmd, liquidityRemoveCmd)

	liquidityRemoveCmd.Flags().IntVar(&removePercent, "percent", 25, "Percentage of the position to withdraw (1-100)")
}

func runLiquidity(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	pools := liquidity.Pools()

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(pools, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	stats := liquidity.SummarizePools(pools)

	fmt.Println("\n" + strings.Repeat("=", 90))
	color.Green("                              LIQUIDITY POOLS")
	fmt.Println(strings.Repeat("=", 90))

	fmt.Printf("\n  Total liquidity: %s    Average APR: %s    Active pools: %d\n",
		color.CyanString(liquidity.FormatCompactUSD(stats.TotalLiquidity)),
		color.GreenString("%.1f%%", stats.AverageAPR),
		stats.TotalPools)

	for _, p := range pools {
		color.Cyan("\n[%d] %s", p.ID, p.Pair())
		fmt.Println(strings.Repeat("-", 90))
		fmt.Printf("  Reserves:        %s %s / %s %s\n", p.TokenA.Amount, p.TokenA.Symbol, p.TokenB.Amount, p.TokenB.Symbol)
		fmt.Printf("  Total liquidity: %s\n", p.TotalLiquidity)
		fmt.Printf("  24h volume:      %s\n", p.Volume24h)
		fmt.Printf("  APR:             %s\n", color.GreenString("%.1f%%", p.APR))
		fmt.Printf("  Your share:      %s (%s, 24h fees %s)\n", p.UserShare, p.UserValue, p.Fees24h)
	}

	fmt.Println("\n" + strings.Repeat("=", 90))
	fmt.Printf("\nYour combined stake: %s\n\n", color.CyanString(liquidity.FormatCompactUSD(stats.UserTotalValue)))
}

func runLiquidityPositions(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	_, store, _ := app()
	if !store.Wallet.Connected() {
		printError(errors.New(errors.KindWalletRequired, "connect a wallet to view your liquidity positions"))
		return
	}

	positions := liquidity.Positions()
	if jsonOutput {
		jsonData, _ := json.MarshalIndent(positions, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	stats := liquidity.SummarizePositions(positions)

	fmt.Println("\n" + strings.Repeat("=", 90))
	color.Green("                              YOUR LIQUIDITY")
	fmt.Println(strings.Repeat("=", 90))

	pnl := color.GreenString("+%s", liquidity.FormatCompactUSD(stats.TotalPnL))
	if stats.TotalPnL < 0 {
		pnl = color.RedString("-%s", liquidity.FormatCompactUSD(-stats.TotalPnL))
	}
	fmt.Printf("\n  Value: %s    P&L: %s    Fees earned: %s    Avg APR: %s\n",
		color.CyanString(liquidity.FormatCompactUSD(stats.TotalValue)),
		pnl,
		color.GreenString(liquidity.FormatCompactUSD(stats.TotalFeesEarned)),
		color.YellowString("%.1f%%", stats.AverageAPR))

	for _, p := range positions {
		color.Cyan("\n[%d] %s", p.ID, p.Pair())
		fmt.Println(strings.Repeat("-", 90))
		fmt.Printf("  Balances:     %s %s / %s %s\n", p.TokenA.Balance, p.TokenA.Symbol, p.TokenB.Balance, p.TokenB.Symbol)
		fmt.Printf("  Pool share:   %s (%s in pool)\n", p.PoolShare, p.TimeInPool)
		fmt.Printf("  Value:        %s (entered at %s)\n", p.CurrentValue, p.InitialValue)
		fmt.Printf("  P&L:          %s (%s)\n", p.PnL, p.PnLPercentage)
		fmt.Printf("  Fees earned:  %s at %.1f%% APR\n", p.FeesEarned, p.APR)
	}
	fmt.Println()
}

func runLiquidityRemove(cmd *cobra.Command, args []string) {
	_, store, _ := app()
	if !store.Wallet.Connected() {
		printError(errors.New(errors.KindWalletRequired, "connect a wallet to remove liquidity"))
		return
	}

	var id int
	if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
		printError(errors.Newf(errors.KindInvalidAmount, "invalid position id '%s'", args[0]))
		return
	}

	var pos *liquidity.Position
	for _, p := range liquidity.Positions() {
		if p.ID == id {
			pos = &p
			break
		}
	}
	if pos == nil {
		printError(errors.Newf(errors.KindNotFound, "position %d not found", id))
		return
	}

	r, err := liquidity.RemoveFromPosition(*pos, removePercent)
	if err != nil {
		printError(err)
		return
	}

	printSuccess(fmt.Sprintf("Removing %d%% of the %s position pays out:", r.Percent, pos.Pair()))
	fmt.Printf("\n  %s %s\n  %s %s\n\n",
		color.CyanString("%.4f", r.AmountA), r.TokenA,
		color.CyanString("%.4f", r.AmountB), r.TokenB)
}
