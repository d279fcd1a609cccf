package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

func infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info DIGEST",
		Short: "Show the prefix and cost of a digest",
		Long: "Prints the version prefix and work factor embedded in DIGEST, and whether\n" +
			"it differs from the configured values and should be re-hashed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadState(cmd.Context())
			if err != nil {
				return err
			}
			digest := []byte(args[0])
			info, err := st.engine.Info(digest)
			if err != nil {
				return err
			}
			needs, err := st.engine.NeedsRehash(digest)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "prefix: %s\ncost: %d\nneeds_rehash: %t\n",
				info.Prefix, info.Cost, needs)
			return err
		},
	}
}
