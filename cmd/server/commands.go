package main

import (
	"fmt"

	"github.com/saransh1220/framesync/internal/shared/infrastructure/config"
	"github.com/saransh1220/framesync/internal/shared/logger"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:           "framesync",
		Short:         "Sync Figma frame renders into an S3 bucket",
		Long:          `framesync renders the frames of a Figma file and stores them in an S3-compatible bucket, one folder per page.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.AddCommand(serve, newSyncCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), config.Load())
			if err != nil {
				logger.Log.Error().Err(err).Msg("startup failed")
				return err
			}

			if err := a.server().Start(); err != nil {
				logger.Log.Error().Err(err).Msg("server failed")
				return err
			}
			return nil
		},
	}
}

func newSyncCmd() *cobra.Command {
	var folder string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync frame images once and print the report",
		Long:  `Run one sync of every page (or only --folder) and print what was uploaded, skipped and failed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), config.Load())
			if err != nil {
				return err
			}

			report, err := a.sync.SyncService.Sync(cmd.Context(), folder)
			if err != nil {
				return fmt.Errorf("sync failed: %w", err)
			}

			printReport(cmd.OutOrStdout(), report)

			if _, _, failed := report.Counts(); failed > 0 {
				return fmt.Errorf("%d frame(s) failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&folder, "folder", "f", "", "only sync the page with this name")
	return cmd
}
