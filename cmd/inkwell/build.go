package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/inkwell"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the site into the output directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		logger := newLogger()

		store, err := inkwell.NewStore(appConfig.DatabasePath)
		if err != nil {
			return fmt.Errorf("open content index: %w", err)
		}
		defer store.Close()

		b := inkwell.NewBuilder(appConfig, siteViews(), store, converter(), logger)
		_, err = b.Build(cmd.Context())
		return err
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
