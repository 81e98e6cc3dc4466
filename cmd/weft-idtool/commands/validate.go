package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [identity]",
		Short: "Re-run the proof of work and check the address binding",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := identityFromArgs(args)
			if err != nil {
				return err
			}
			if !id.Validate() {
				return fmt.Errorf("identity %s is INVALID", id.Address())
			}
			fmt.Printf("Identity %s is valid.\n", id.Address())
			return nil
		},
	}
}
