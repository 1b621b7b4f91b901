// Package cmd implements the getpro-install command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/2getpro/installer/internal/config"
	"github.com/2getpro/installer/pkg/log"
	"github.com/2getpro/installer/pkg/version"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "getpro-install",
	Short: "getpro-install - provisioning tool for the 2GETPRO v2 bot",
	Long: `getpro-install provisions a 2GETPRO v2 Telegram bot installation:
it collects configuration interactively, renders the environment
document, fills compose and service-unit templates, waits for the
database and cache to come up, and manages environment backups.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is specified, display the help
		if len(args) == 0 {
			cmd.Help()
			return
		}
	},
	Version: version.Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "installer config file (default is /etc/2getpro/installer.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	viper.SetEnvPrefix("GETPRO")
	viper.AutomaticEnv() // read in environment variables that match

	rootCmd.AddCommand(newSetupCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newRenderUnitsCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newWaitCmd())
	rootCmd.AddCommand(newBackupsCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// loadInstallerConfig loads the installer settings honoring the global
// --config flag.
func loadInstallerConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading installer config: %w", err)
	}
	return cfg, nil
}

// newCommandLogger builds the logger subcommands share, honoring the
// config and the --verbose flag.
func newCommandLogger(cfg *config.Config) log.Logger {
	level := log.ParseLevel(cfg.Log.Level)
	if verbose {
		level = log.DebugLevel
	}
	var formatter log.Formatter = log.NewTextFormatter()
	if cfg.Log.Format == "json" {
		formatter = &log.JSONFormatter{}
	}

	opts := []log.LoggerOption{log.WithLevel(level), log.WithFormatter(formatter)}
	if cfg.Log.File != "" {
		fileOut, err := log.NewFileOutput(cfg.Log.File)
		if err != nil {
			printWarning("cannot open log file %s: %v", cfg.Log.File, err)
		} else {
			opts = append(opts, log.WithOutput(log.NewStderrOutput()), log.WithOutput(fileOut))
		}
	}

	logger := log.NewLogger(opts...)
	logger.Debug("getpro-install starting", log.Any("build", version.Map()))
	return logger
}
