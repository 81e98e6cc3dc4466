package commands

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"weft/internal/identity"
)

func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <file>",
		Short: "Sign a file with the stored identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := newStore().Load(passphrase)
			if err != nil {
				return err
			}
			defer id.Scrub()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			sig := make([]byte, identity.SignatureSize)
			if id.Sign(data, sig) == 0 {
				return fmt.Errorf("signing failed")
			}
			fmt.Println(hex.EncodeToString(sig))
			return nil
		},
	}
}
