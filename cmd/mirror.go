package cmd

import (
	"fmt"

	"mamoji/core/storage"
	"mamoji/feature/author"
	"mamoji/feature/directory"
	"mamoji/feature/mirror"

	"github.com/spf13/cobra"
)

// mirrorCmd mirrors a server's emoji images into object storage.
var mirrorCmd = &cobra.Command{
	Use:   "mirror <host>",
	Short: "Mirror a server's emoji images into object storage",
	Long: `Mirror downloads every emoji image of the host's catalog into the
configured bucket. The catalog is refreshed first when it is stale.

Requires object storage to be configured (STORAGE_ENABLED=true).

Examples:
  mamoji mirror example.social`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		if !e.cfg.Storage.Enabled {
			return fmt.Errorf("object storage is not configured")
		}
		store, err := storage.NewClient(e.cfg.Storage)
		if err != nil {
			return err
		}

		authors := author.NewService(e.db, e.client, e.logger)
		catalog := directory.NewService(directory.NewStore(e.db), e.client, authors, e.logger)
		svc := mirror.NewService(catalog, e.client, store, e.cfg.Storage.Bucket, e.logger)

		report, err := svc.Mirror(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s: mirrored %d, failed %d\n", report.Host, report.Mirrored, len(report.Failures))
		for _, failure := range report.Failures {
			fmt.Printf("  :%s: %s\n", failure.Shortcode, failure.Reason)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(mirrorCmd)
}
