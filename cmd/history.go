package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bridgeswap/pkg/types"
)

var (
	historyStatus string
	historyLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the transaction history",
	Long: `Show the session's transaction ledger, newest first.

Examples:
  bridgeswap history
  bridgeswap history --status completed
  bridgeswap history --limit 10`,
	Run: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear transactions created this session",
	Long: `Remove the records created by this session's swaps and quotes.
Seeded historical records are untouched.`,
	Run: runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyCmd.Flags().StringVar(&historyStatus, "status", "", "Filter by status (completed, pending, failed)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of records to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	_, store, _ := app()
	records := store.History.Transactions()

	if historyStatus != "" {
		filtered := make([]types.TransactionRecord, 0, len(records))
		for _, rec := range records {
			if strings.EqualFold(string(rec.Status), historyStatus) {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	total := len(records)
	if historyLimit > 0 && len(records) > historyLimit {
		records = records[:historyLimit]
	}

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(records, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	displayHistory(records, total)
}

func runHistoryClear(cmd *cobra.Command, args []string) {
	_, store, _ := app()
	n := store.History.TemporaryCount()
	store.History.ClearTemporary()
	printSuccess(fmt.Sprintf("Cleared %d session transaction(s).", n))
}

func displayHistory(records []types.TransactionRecord, total int) {
	if len(records) == 0 {
		fmt.Println("\nNo transactions found.")
		return
	}

	fmt.Println("\n" + strings.Repeat("=", 100))
	color.Green("                                  TRANSACTION HISTORY")
	fmt.Println(strings.Repeat("=", 100))
	fmt.Println()

	for _, rec := range records {
		fmt.Printf("  %s  %s  %s %s (%s) -> %s %s (%s)  %s  %s\n",
			rec.Timestamp.Format("2006-01-02 15:04"),
			coloredTxStatus(rec.Status),
			rec.SourceAmount,
			color.YellowString(rec.SourceToken),
			rec.SourceChain,
			rec.DestAmount,
			color.YellowString(rec.DestToken),
			rec.DestChain,
			rec.USDValue,
			color.HiBlackString(rec.ID))
	}

	fmt.Println("\n" + strings.Repeat("=", 100))
	fmt.Printf("\nShowing %d of %d transactions\n\n", len(records), total)
}

func coloredTxStatus(status types.TxStatus) string {
	switch status {
	case types.TxCompleted:
		return color.GreenString("%-9s", status)
	case types.TxPending:
		return color.YellowString("%-9s", status)
	case types.TxFailed:
		return color.RedString("%-9s", status)
	default:
		return fmt.Sprintf("%-9s", status)
	}
}
