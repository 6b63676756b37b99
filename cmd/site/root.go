package main

import (
	"agencysite/internal/config"
	"agencysite/internal/content"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var cfgFile string
var appConfig config.Config

var rootCmd = &cobra.Command{
	Use:   "site",
	Short: "CRE8DIGI agency website",
	Long: `Serves the CRE8DIGI brochure site and its read-only content API from a
single content document, embedded in the binary or read from disk.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load(".env.local")

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./site.yaml)")
	rootCmd.AddCommand(serveCmd, validateCmd)
}

// loadCatalog reads the content document at path, or the embedded one when
// path is empty.
func loadCatalog(path string) (*content.Catalog, error) {
	if path == "" {
		return content.LoadDefault()
	}
	return content.LoadFile(path)
}
