package command

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-bcrypt/hashing"
)

func hashCommand() *cobra.Command {
	var (
		cost   int
		prefix string
	)
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Hash a password",
		Long: "Reads a password via stdin or the interactive prompt and prints its bcrypt\n" +
			"digest. --cost and --prefix override the configured values for this call.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := loadState(cmd.Context())
			if err != nil {
				return err
			}

			var opts []hashing.HashOption
			if cmd.Flags().Changed("cost") {
				opts = append(opts, hashing.WithCost(cost))
			}
			if cmd.Flags().Changed("prefix") {
				opts = append(opts, hashing.WithPrefix(hashing.Prefix(prefix)))
			}

			password, err := prompt(cmd, "password: ", true)
			if err != nil {
				return err
			}
			digest, err := st.engine.GenerateContext(cmd.Context(), password, opts...)
			if err != nil {
				return err
			}

			st.logger.DebugContext(cmd.Context(), "generated digest", slog.Int("length", len(digest)))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(digest))
			return err
		},
	}
	cmd.Flags().IntVar(&cost, "cost", hashing.DefaultCost, "bcrypt work factor")
	cmd.Flags().StringVar(&prefix, "prefix", string(hashing.DefaultPrefix), "bcrypt version prefix (2a, 2b, 2y)")
	return cmd
}
