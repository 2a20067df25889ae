package cmd

import (
	"fmt"

	"mamoji/feature/author"

	"github.com/spf13/cobra"
)

// authorCmd resolves a federated handle from the terminal.
var authorCmd = &cobra.Command{
	Use:   "author <name@host>",
	Short: "Resolve an author handle",
	Long: `Author resolves a federated handle through webfinger and the actor
document, caching the resulting profile.

Examples:
  mamoji author alice@example.social`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		svc := author.NewService(e.db, e.client, e.logger)
		resolved, err := svc.Resolve(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s\n  name:   %s\n  avatar: %s\n", resolved.Handle, resolved.Name, resolved.AvatarURL)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(authorCmd)
}
