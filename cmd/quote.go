package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bridgeswap/pkg/parser"
	"bridgeswap/pkg/types"
)

var (
	quoteFromChain string
	quoteToChain   string
	recipientAddr  string
	refundAddr     string
)

var quoteCmd = &cobra.Command{
	Use:   "quote <amount> <source-token> to <dest-token>",
	Short: "Request a cross-chain swap quote",
	Long: `Request a simulated quote for a cross-chain token swap.

IMPORTANT:
  - You MUST specify --recipient (where you'll receive tokens)
  - You MUST specify --refund-to (where refunds go if the swap fails)

Examples:
  bridgeswap quote 100 ADA to ETH --recipient 0x123... --refund-to addr1...
  bridgeswap quote 1.5 ETH to SOL --recipient <solana-addr> --refund-to 0x123...
  bridgeswap quote 100 USDC on polygon to ETH on arbitrum --recipient 0x... --refund-to 0x...`,
	Args: cobra.MinimumNArgs(1),
	Run:  runQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().StringVar(&quoteFromChain, "from-chain", "", "Source blockchain (optional, inferred from token)")
	quoteCmd.Flags().StringVar(&quoteToChain, "to-chain", "", "Destination blockchain (optional, inferred from token)")
	quoteCmd.Flags().StringVar(&recipientAddr, "recipient", "", "Recipient address (REQUIRED - where you'll receive tokens)")
	quoteCmd.Flags().StringVar(&refundAddr, "refund-to", "", "Refund address on source chain (REQUIRED)")
}

func runQuote(cmd *cobra.Command, args []string) {
	// Parse the command
	commandStr := strings.Join(args, " ")
	swapReq, err := parser.ParseSwapCommand(commandStr)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if quoteFromChain != "" {
		swapReq.SourceChain = quoteFromChain
	}
	if quoteToChain != "" {
		swapReq.DestChain = quoteToChain
	}
	swapReq.DestinationAddr = recipientAddr
	swapReq.OriginAddr = refundAddr

	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, store, calc := app()

	// Generate quote with spinner
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !jsonOutput {
		s.Suffix = " Generating quote..."
		s.Start()
	}

	time.Sleep(cfg.QuoteDelay)
	q, err := calc.Quote(*swapReq)
	if !jsonOutput {
		s.Stop()
	}

	if err != nil {
		printError(err)
		os.Exit(1)
	}

	// Record the pending swap in session history
	store.History.Add(types.TransactionRecord{
		SourceChain:  swapReq.SourceChain,
		SourceToken:  q.SourceToken,
		SourceAmount: q.SourceAmount,
		DestChain:    swapReq.DestChain,
		DestToken:    q.DestToken,
		DestAmount:   q.ExpectedAmount,
	})

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(q, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	displayQuote(q)
	displayDepositInstructions(q)

	fmt.Println("\nYou can monitor the swap status using:")
	color.Cyan("  bridgeswap status %s\n", q.ID)
}

func displayQuote(q *types.QuoteResult) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	color.Green("                     SWAP QUOTE")
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\n  Quote ID:          %s\n", color.CyanString(q.ID))
	fmt.Printf("  From:              %s %s on %s\n", q.SourceAmount, color.YellowString(q.SourceToken), q.SourceChain)
	fmt.Printf("  To:                ~%s %s on %s\n", q.ExpectedAmount, color.YellowString(q.DestToken), q.DestChain)
	fmt.Printf("  Rate:              %s\n", q.Rate)
	fmt.Printf("  Bridge Fee:        %s\n", q.BridgeFee)
	fmt.Printf("  Platform Fee:      %s (%s %s)\n", q.PlatformFee, q.PlatformFeeAmt, q.SourceToken)
	fmt.Printf("  Estimated Time:    %s\n", q.EstimatedTime)
	fmt.Printf("  Expires In:        %d seconds\n", q.ExpirySeconds)

	fmt.Println("\n" + strings.Repeat("=", 60))
}

func displayDepositInstructions(q *types.QuoteResult) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	color.Yellow("                 DEPOSIT INSTRUCTIONS")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("\nTo complete the swap, send %s %s to:\n\n", q.SourceAmount, q.SourceToken)
	color.Cyan("  %s\n", q.DepositAddress)

	if q.Memo != "" {
		fmt.Printf("\nMemo (REQUIRED): %s\n", color.MagentaString(q.Memo))
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
}
