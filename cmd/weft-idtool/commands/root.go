package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"weft/internal/store"
)

var (
	home       string
	passphrase string
)

func Execute() error {
	root := &cobra.Command{
		Use:   "weft-idtool",
		Short: "Generate and manage weft overlay identities",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".weft")
			}
			return os.MkdirAll(home, 0o700)
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "identity dir (default ~/.weft)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase sealing identity.secret")

	root.AddCommand(generateCmd(), infoCmd(), validateCmd(), signCmd(), verifyCmd())
	return root.Execute()
}

func newStore() *store.FileStore { return store.NewFileStore(home) }
