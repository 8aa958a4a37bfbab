package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eringen/inkwell"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site locally and reindex on changes",
	Long: `The serve command indexes the content, then starts a preview server that
renders pages live. Content and static directories are watched and the
index is rebuilt when they change.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		if servePort > 0 {
			appConfig.Addr = fmt.Sprintf(":%d", servePort)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger := newLogger()
		app := inkwell.New(appConfig, siteViews(), converter(), inkwell.WithLogger(logger))
		defer app.Close()

		logger.Infof("serving on http://localhost%s", appConfig.Addr)
		if err := app.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to serve on (overrides addr)")
	rootCmd.AddCommand(serveCmd)
}
