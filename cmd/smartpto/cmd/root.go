package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"smart-pto/config"
	"smart-pto/internal/bootstrap"
	"smart-pto/pkg/log"
)

var (
	cfg    *config.Config
	logger log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "smartpto",
	Short: "SmartPTO command line tools",
	Long: `SmartPTO scans your mailbox for time-off signals and proposes PTO windows.

Run 'smartpto auth' once to authorize Gmail access, then 'smartpto analyze'.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger = bootstrap.NewLogger(cfg)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
