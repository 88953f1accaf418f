package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bridgeswap/pkg/settings"
)

var settingsFile string

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show, export or import user settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	Run:   runSettingsShow,
}

var settingsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export settings to a JSON file",
	Run:   runSettingsExport,
}

var settingsImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import settings from a JSON file",
	Long: `Import settings from an exported JSON file. Unknown keys are ignored
and keys missing from the file keep their current values. A malformed
file leaves the settings untouched.`,
	Run: runSettingsImport,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsExportCmd, settingsImportCmd)

	settingsCmd.PersistentFlags().StringVar(&settingsFile, "file", "", "Settings file path (defaults to the configured path)")
}

func settingsPath() string {
	if settingsFile != "" {
		return settingsFile
	}
	cfg, _, _ := app()
	return cfg.SettingsFile
}

// currentSettings returns the exported settings if a file exists,
// otherwise the defaults.
func currentSettings() settings.Settings {
	s, err := settings.Import(settings.Default(), settingsPath())
	if err != nil {
		return settings.Default()
	}
	return s
}

func runSettingsShow(cmd *cobra.Command, args []string) {
	s := currentSettings()
	jsonData, _ := json.MarshalIndent(s, "", "  ")
	fmt.Println(string(jsonData))
}

func runSettingsExport(cmd *cobra.Command, args []string) {
	path := settingsPath()
	if err := settings.Export(currentSettings(), path); err != nil {
		printError(err)
		os.Exit(1)
	}
	printSuccess(fmt.Sprintf("Settings exported to %s", color.CyanString(path)))
}

func runSettingsImport(cmd *cobra.Command, args []string) {
	path := settingsPath()
	s, err := settings.Import(settings.Default(), path)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	_, store, _ := app()
	store.Theme.SetDark(s.Theme == "dark")

	printSuccess(fmt.Sprintf("Settings imported from %s", color.CyanString(path)))
	jsonData, _ := json.MarshalIndent(s, "", "  ")
	fmt.Println(string(jsonData))
}
