package main

import (
	"errors"
	"fmt"

	"agencysite/internal/content"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
)

var errFindings = errors.New("content has warnings")

var strict bool

var validateCmd = &cobra.Command{
	Use:   "validate [content-file]",
	Short: "Check a content document without starting the server",
	Long: `Loads a content document the same way the server does and reports hard
errors (malformed document, duplicate or missing ids, bad dates) and soft
problems such as unknown icons. Without an argument the configured
content_path, or the embedded document, is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := appConfig.ContentPath
		if len(args) == 1 {
			path = args[0]
		}
		name := path
		if name == "" {
			name = "embedded content"
		}
		out := cmd.OutOrStdout()

		titleColor.Fprintf(out, "Checking %s\n", name)
		catalog, err := loadCatalog(path)
		if err != nil {
			errorColor.Fprintf(out, "✗ %v\n", err)
			return err
		}

		for _, kind := range content.Kinds {
			fmt.Fprintf(out, "  %-13s %d\n", kind, catalog.Len(kind))
		}

		findings := content.Audit(catalog)
		for _, f := range findings {
			warningColor.Fprintf(out, "! %s\n", f)
		}
		if len(findings) > 0 && strict {
			return fmt.Errorf("%w: %d found", errFindings, len(findings))
		}

		successColor.Fprintln(out, "✓ content is valid")
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&strict, "strict", false, "fail when any warning is reported")
}
