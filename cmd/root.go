package cmd

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"bridgeswap/config"
	"bridgeswap/pkg/quote"
	"bridgeswap/pkg/session"
)

var rootCmd = &cobra.Command{
	Use:   "bridgeswap",
	Short: "A CLI for simulated cross-chain token swaps",
	Long: `bridgeswap is a command-line tool that simulates cross-chain token swaps
end to end: quotes, deposit instructions, swap progression and history,
all against a synthetic market. No real funds ever move.

Examples:
  bridgeswap quote 100 ADA to ETH --recipient 0x123... --refund-to addr1...
  bridgeswap swap 50 SOL to USDC --wallet metamask
  bridgeswap networks
  bridgeswap status <quote-id>`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
}

func printError(err error) {
	fmt.Printf("\nError: %v\n\n", err)
}

func printSuccess(message string) {
	fmt.Printf("\n%s\n\n", message)
}

var (
	appOnce  sync.Once
	appCfg   *config.Config
	appStore *session.Store
	appCalc  *quote.Calculator
)

// app lazily builds the per-process configuration, session store and
// quote calculator shared by all commands.
func app() (*config.Config, *session.Store, *quote.Calculator) {
	appOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			printError(err)
			os.Exit(1)
		}
		appCfg = cfg
		appStore = session.New(
			session.WithSeedCount(cfg.SeedCount),
			session.WithConnectDelay(cfg.ConnectDelay),
		)
		appCalc = quote.NewCalculator(quote.WithExpiry(cfg.QuoteExpirySeconds))
	})
	return appCfg, appStore, appCalc
}
