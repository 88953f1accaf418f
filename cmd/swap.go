package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bridgeswap/pkg/errors"
	"bridgeswap/pkg/parser"
	"bridgeswap/pkg/quote"
	"bridgeswap/pkg/session"
	"bridgeswap/pkg/tracker"
	"bridgeswap/pkg/types"
)

var (
	swapWallet string
	noConfirm  bool
	noWatch    bool
)

var swapCmd = &cobra.Command{
	Use:   "swap <amount> <source-token> to <dest-token>",
	Short: "Perform a direct cross-chain swap",
	Long: `Execute a simulated direct swap from a connected wallet. The wallet
supplies both addresses, so no recipient or refund address is needed.

Examples:
  bridgeswap swap 50 SOL to USDC --wallet metamask
  bridgeswap swap 100 ADA to ETH --wallet eternl --yes
  bridgeswap swap 1 ETH to SOL --wallet okx --no-watch`,
	Args: cobra.MinimumNArgs(1),
	Run:  runSwap,
}

func init() {
	rootCmd.AddCommand(swapCmd)

	swapCmd.Flags().StringVar(&swapWallet, "wallet", "", "Wallet to connect (metamask, subwallet, okx, eternl, lace)")
	swapCmd.Flags().BoolVarP(&noConfirm, "yes", "y", false, "Skip confirmation prompt")
	swapCmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not follow the swap progression")
}

func runSwap(cmd *cobra.Command, args []string) {
	commandStr := strings.Join(args, " ")
	swapReq, err := parser.ParseSwapCommand(commandStr)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	if err := parser.ValidateSwapRequest(swapReq); err != nil {
		printError(err)
		os.Exit(1)
	}

	amount, err := quote.ParseAmount(swapReq.Amount)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	amountF, _ := amount.Float64()

	cfg, store, _ := app()

	if swapWallet == "" {
		printError(errors.New(errors.KindWalletRequired, "a connected wallet is required for direct swaps, pass --wallet"))
		os.Exit(1)
	}

	// Connect the wallet
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Connecting %s...", session.WalletDisplayName(swapWallet))
	s.Start()
	err = store.Wallet.Connect(context.Background(), swapWallet)
	s.Stop()
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	sess := store.Wallet.Session()
	printSuccess(fmt.Sprintf("Connected %s (%s)", sess.WalletType, sess.Address))

	received := quote.EstimateDirect(amountF, swapReq.SourceSymbol(), swapReq.DestSymbol())
	impact := quote.PriceImpact(amountF)

	displayDirectSwap(swapReq, amountF, received, impact)

	if !noConfirm {
		if !confirmSwap() {
			fmt.Println("\nSwap cancelled.")
			os.Exit(0)
		}
	}

	rec := store.History.Add(types.TransactionRecord{
		SourceChain:  swapReq.SourceChain,
		SourceToken:  swapReq.SourceSymbol(),
		SourceAmount: swapReq.Amount,
		DestChain:    swapReq.DestChain,
		DestToken:    swapReq.DestSymbol(),
		DestAmount:   quote.FormatAmount(received),
		USDValue:     quote.USDValue(amountF, swapReq.SourceSymbol()),
	})

	printSuccess(fmt.Sprintf("Swap submitted (ID: %s)", rec.ID))

	if noWatch {
		fmt.Println("Follow the progression with:")
		color.Cyan("  bridgeswap status %s\n", rec.ID)
		return
	}

	followProgression(swapReq.SourceChain, swapReq.DestChain, cfg.StageInterval)
}

func displayDirectSwap(req *types.SwapRequest, amount, received, impact float64) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	color.Green("                     DIRECT SWAP")
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\n  From:          %s %s on %s\n", quote.FormatAmount(amount), color.YellowString(req.SourceSymbol()), req.SourceChain)
	fmt.Printf("  To:            ~%s %s on %s\n", quote.FormatAmount(received), color.YellowString(req.DestSymbol()), req.DestChain)
	fmt.Printf("  Value:         %s\n", quote.USDValue(amount, req.SourceSymbol()))
	fmt.Printf("  Price Impact:  %s\n", colorImpact(impact))

	fmt.Println("\n" + strings.Repeat("=", 60))
}

func colorImpact(impact float64) string {
	text := fmt.Sprintf("%.1f%%", impact)
	if impact > 1.0 {
		return color.RedString(text)
	}
	return color.GreenString(text)
}

// followProgression runs the staged lifecycle and prints each
// transition until the swap completes.
func followProgression(sourceChain, destChain string, interval time.Duration) {
	fmt.Println()
	t := tracker.New(sourceChain, destChain, tracker.WithInterval(interval))
	done := make(chan struct{})

	printStage(t.Snapshot())
	t.Start(func(u tracker.Update) {
		printStage(u)
		if u.Terminal {
			close(done)
		}
	})
	<-done
}

func printStage(u tracker.Update) {
	line := fmt.Sprintf("  [%3d%%] %s", u.Progress, u.StageLabel)
	if u.Terminal {
		color.Green("%s", line)
	} else {
		fmt.Println(line)
	}
	if u.SourceTx != "" && u.Stage == tracker.StageDepositConfirmed {
		fmt.Printf("         Deposit Tx: %s\n", color.HiBlackString(u.SourceTx))
	}
	if u.DestTx != "" && u.Terminal {
		fmt.Printf("         Settlement Tx: %s\n", color.HiBlackString(u.DestTx))
	}
}

func confirmSwap() bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("\nProceed with swap? (y/N): ")

	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
