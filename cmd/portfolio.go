package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bridgeswap/pkg/quote"
	"bridgeswap/pkg/stats"
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Summarize the transaction history",
	Long: `Aggregate the session's transaction ledger: totals per status, swap
volume in USD and an estimate of distinct swap routes used.`,
	Run: runPortfolio,
}

func init() {
	rootCmd.AddCommand(portfolioCmd)
}

func runPortfolio(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	_, store, _ := app()
	summary := stats.Summarize(store.History.Transactions())

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(summary, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	color.Green("                      PORTFOLIO")
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\n  Transactions:   %d\n", summary.Total)
	fmt.Printf("  Completed:      %s\n", color.GreenString("%d", summary.Completed))
	fmt.Printf("  Pending:        %s\n", color.YellowString("%d", summary.Pending))
	fmt.Printf("  Failed:         %s\n", color.RedString("%d", summary.Failed))
	fmt.Printf("  Success Rate:   %.1f%%\n", summary.SuccessRate()*100)
	fmt.Printf("  Volume:         %s\n", quote.FormatUSD(summary.VolumeUSD))
	fmt.Printf("  Unique Routes:  ~%d\n", summary.UniqueRoutes)

	fmt.Println("\n" + strings.Repeat("=", 60) + "\n")
}
