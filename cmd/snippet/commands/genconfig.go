package commands

import (
	"fmt"

	"github.com/arthur-debert/snippet/pkg/config"
	"github.com/arthur-debert/snippet/pkg/errors"
	"github.com/spf13/cobra"
)

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, MsgErrGenConfig)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}
}
