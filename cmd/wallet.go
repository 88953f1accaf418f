package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bridgeswap/pkg/errors"
	"bridgeswap/pkg/session"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Manage the simulated wallet session",
}

var walletConnectCmd = &cobra.Command{
	Use:   "connect <kind>",
	Short: "Connect a wallet",
	Long: `Connect one of the supported wallets. The connection is simulated and
yields an address in the wallet's native format.

Supported wallets: metamask, subwallet, okx, eternl, lace`,
	Args: cobra.ExactArgs(1),
	Run:  runWalletConnect,
}

var walletDisconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Disconnect the wallet",
	Run:   runWalletDisconnect,
}

var walletShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the wallet session",
	Run:   runWalletShow,
}

func init() {
	rootCmd.AddCommand(walletCmd)
	walletCmd.AddCommand(walletConnectCmd, walletDisconnectCmd, walletShowCmd)
}

func runWalletConnect(cmd *cobra.Command, args []string) {
	kind := strings.ToLower(args[0])

	supported := false
	for _, k := range session.WalletKinds {
		if k == kind {
			supported = true
			break
		}
	}
	if !supported {
		printError(errors.Newf(errors.KindNotFound, "unknown wallet '%s' (supported: %s)",
			kind, strings.Join(session.WalletKinds, ", ")))
		os.Exit(1)
	}

	_, store, _ := app()

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Connecting %s...", session.WalletDisplayName(kind))
	s.Start()
	err := store.Wallet.Connect(context.Background(), kind)
	s.Stop()

	if err != nil {
		printError(err)
		os.Exit(1)
	}

	sess := store.Wallet.Session()
	printSuccess(fmt.Sprintf("Connected %s", sess.WalletType))
	fmt.Printf("  Address: %s\n\n", color.CyanString(sess.Address))
}

func runWalletDisconnect(cmd *cobra.Command, args []string) {
	_, store, _ := app()
	store.Wallet.Disconnect()
	printSuccess("Wallet disconnected.")
}

func runWalletShow(cmd *cobra.Command, args []string) {
	_, store, _ := app()
	sess := store.Wallet.Session()
	if !sess.Connected {
		fmt.Println("\nNo wallet connected.")
		fmt.Printf("Connect one with: bridgeswap wallet connect <%s>\n\n", strings.Join(session.WalletKinds, "|"))
		return
	}
	fmt.Printf("\n  Wallet:  %s\n", color.YellowString(sess.WalletType))
	fmt.Printf("  Address: %s\n\n", color.CyanString(sess.Address))
}
