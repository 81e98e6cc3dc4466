package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [identity]",
		Short: "Print address, type and fingerprint of an identity",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := identityFromArgs(args)
			if err != nil {
				return err
			}
			fp := id.Fingerprint()
			fmt.Printf("Address:     %s\nType:        %s\nHas private: %v\nHash:        %s\nFingerprint: %s\n",
				id.Address(), id.Type(), id.HasPrivate(), hex.EncodeToString(fp.Hash[:]), fp)
			return nil
		},
	}
}
