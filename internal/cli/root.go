// Package cli wires the utvalg commands, flags, and configuration sources.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/crimson-sun/utvalg/internal/config"
)

var cfgFile string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "utvalg",
	Short: "utvalg - select clean standalone Norwegian sentences from a raw corpus",
	Long: `utvalg reads a tab-separated corpus and keeps only short, grammatically
clean, self-contained sentences suitable for speech and text datasets.

Candidates pass through a cascade of cheap structural filters first, then a
pretrained part-of-speech model rejects anything containing a proper noun.
Survivors are written into size-bounded TSV chunks with provenance metadata,
and a per-filter rejection report is printed at the end.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("utvalg v0.2.1")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.utvalg/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home + "/.utvalg")
			viper.SetConfigType("yaml")
			viper.SetConfigName("config")
		}
	}

	// Read in environment variables that match UTVALG_*
	viper.SetEnvPrefix("UTVALG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A config file is optional; flags and env cover everything.
	_ = viper.ReadInConfig()
}
