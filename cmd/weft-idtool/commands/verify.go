package commands

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <identity> <file> <hex-signature>",
		Short: "Verify a file signature against an identity",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := readIdentityArg(args[0])
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			sig, err := hex.DecodeString(args[2])
			if err != nil {
				return fmt.Errorf("bad signature hex: %w", err)
			}
			if !id.Verify(data, sig) {
				return fmt.Errorf("signature does NOT verify")
			}
			fmt.Println("Signature verifies.")
			return nil
		},
	}
}
