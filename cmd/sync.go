package cmd

import (
	"fmt"

	"mamoji/feature/author"
	"mamoji/feature/directory"

	"github.com/spf13/cobra"
)

// syncCmd registers or refreshes a server's emoji catalog from the terminal.
var syncCmd = &cobra.Command{
	Use:   "sync <host>",
	Short: "Sync a server's emoji catalog",
	Long: `Sync registers the server if it is unknown (discovering its software
through nodeinfo) and refreshes its emoji catalog, honoring the same
freshness window the HTTP API uses.

Examples:
  # Register or refresh a server
  mamoji sync example.social`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		authors := author.NewService(e.db, e.client, e.logger)
		svc := directory.NewService(directory.NewStore(e.db), e.client, authors, e.logger)

		host := args[0]
		emojis, err := svc.Register(cmd.Context(), host)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d emojis\n", host, len(emojis))
		for _, emoji := range emojis {
			category := ""
			if emoji.Category != nil {
				category = " [" + *emoji.Category + "]"
			}
			fmt.Printf("  :%s:%s\n", emoji.Shortcode, category)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(syncCmd)
}
