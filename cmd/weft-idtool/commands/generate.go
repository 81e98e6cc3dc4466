package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"weft/internal/identity"
)

func generateCmd() *cobra.Command {
	var typeName string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Create a new identity and store it",
		RunE: func(cmd *cobra.Command, args []string) error {
			var t identity.Type
			switch typeName {
			case "c25519":
				t = identity.TypeC25519
			case "p384":
				t = identity.TypeP384
			default:
				return fmt.Errorf("unknown identity type %q", typeName)
			}

			fmt.Println("Generating identity (this may take a while)...")
			id, err := identity.GenerateContext(cmd.Context(), t)
			if err != nil {
				return err
			}
			defer id.Scrub()

			if err := newStore().Save(id, passphrase); err != nil {
				return err
			}
			fmt.Printf("Address:     %s\nType:        %s\nFingerprint: %s\n", id.Address(), id.Type(), id.Fingerprint())
			return nil
		},
	}
	cmd.Flags().StringVarP(&typeName, "type", "t", "p384", `identity type ("c25519" or "p384")`)
	return cmd
}
