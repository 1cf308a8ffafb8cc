// Command qasmfront exposes the semantic-core frontend (symbol table,
// validator, mangler, builder façade) as a small CLI for exercising it
// outside of a parser integration, following the same thin
// main-delegates-to-cmd shape as the teacher's dwscript command.
package main

import (
	"fmt"
	"os"

	"github.com/openqasm/qe-qasm-sub003/cmd/qasmfront/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
