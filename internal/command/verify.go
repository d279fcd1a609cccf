package command

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errMismatch = errors.New("password does not match")

func verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify DIGEST",
		Short: "Verify a password against a digest",
		Long: "Reads a password via stdin or the interactive prompt and checks it against\n" +
			"DIGEST. Exits non-zero when the password does not match.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadState(cmd.Context())
			if err != nil {
				return err
			}
			password, err := prompt(cmd, "password: ", true)
			if err != nil {
				return err
			}
			ok, err := st.engine.VerifyContext(cmd.Context(), []byte(args[0]), password)
			if err != nil {
				return err
			}
			if !ok {
				st.logger.InfoContext(cmd.Context(), "verification failed")
				return errMismatch
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "match")
			return err
		},
	}
}
