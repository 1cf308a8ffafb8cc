package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "qasmfront",
	Short: "OpenQASM 3 semantic frontend tools",
	Long: `qasmfront exercises the OpenQASM 3 compiler frontend's semantic core:
symbol table, expression validator, cast/conversion matrix, and the
deterministic name mangler/demangler.

It intentionally has no lexer or parser of its own — the mangle and
demangle subcommands operate on already-tokenized identifier
descriptions, and build runs the builder façade over a small hardcoded
program shape to demonstrate context/symbol-table/mangler wiring.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
