package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bridgeswap/pkg/catalog"
	"bridgeswap/pkg/tracker"
)

var (
	statusFromChain string
	statusToChain   string
)

var statusCmd = &cobra.Command{
	Use:   "status <quote-id>",
	Short: "Follow the progression of a swap",
	Long: `Follow a swap through its lifecycle: deposit detection, cross-chain
transfer and destination settlement. The progression runs until the
swap completes.

Examples:
  bridgeswap status BSW_k3x9m2p1q
  bridgeswap status BSW_k3x9m2p1q --from-chain cardano --to-chain ethereum`,
	Args: cobra.ExactArgs(1),
	Run:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVar(&statusFromChain, "from-chain", "ethereum", "Source blockchain, sets the deposit hash format")
	statusCmd.Flags().StringVar(&statusToChain, "to-chain", "ethereum", "Destination blockchain, sets the settlement hash format")
}

func runStatus(cmd *cobra.Command, args []string) {
	quoteID := args[0]
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, _, _ := app()

	fmt.Printf("\nTracking swap %s\n", color.CyanString(quoteID))

	t := tracker.New(statusFromChain, statusToChain, tracker.WithInterval(cfg.StageInterval))
	done := make(chan struct{})

	display := func(u tracker.Update) {
		if jsonOutput {
			data, _ := json.Marshal(u)
			fmt.Println(string(data))
		} else {
			displayStatus(u, quoteID)
		}
		if u.Terminal {
			close(done)
		}
	}

	display(t.Snapshot())
	t.Start(display)
	<-done

	if !jsonOutput {
		printSuccess("Swap completed.")
	}
}

func displayStatus(u tracker.Update, quoteID string) {
	fmt.Println("\n" + strings.Repeat("=", 70))
	color.Green("                        SWAP STATUS")
	fmt.Println(strings.Repeat("=", 70))

	fmt.Printf("\n  Quote ID:   %s\n", color.CyanString(quoteID))
	fmt.Printf("  Status:     %s\n", coloredStage(u))
	fmt.Printf("  Progress:   %s\n", progressBar(u.Progress))

	if u.SourceTx != "" {
		fmt.Printf("  Deposit Tx:    %s\n", color.HiBlackString(u.SourceTx))
		if link, err := catalog.ExplorerTxURL(statusFromChain, u.SourceTx); err == nil {
			fmt.Printf("  Explorer:      %s\n", color.HiBlackString(link))
		}
	}
	if u.DestTx != "" {
		fmt.Printf("  Settlement Tx: %s\n", color.HiBlackString(u.DestTx))
		if link, err := catalog.ExplorerTxURL(statusToChain, u.DestTx); err == nil {
			fmt.Printf("  Explorer:      %s\n", color.HiBlackString(link))
		}
	}

	fmt.Println("\n" + strings.Repeat("=", 70))
	_ = os.Stdout.Sync()
}

func coloredStage(u tracker.Update) string {
	if u.Terminal {
		return color.GreenString(u.StageLabel)
	}
	return color.YellowString(u.StageLabel)
}

func progressBar(progress int) string {
	const width = 30
	filled := progress * width / 100
	bar := strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
	return fmt.Sprintf("[%s] %d%%", bar, progress)
}
