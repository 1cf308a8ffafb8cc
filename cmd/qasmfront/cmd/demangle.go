package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openqasm/qe-qasm-sub003/internal/mangle"
)

var demangleCmd = &cobra.Command{
	Use:   "demangle <symbol>",
	Short: "Recover the (name, type, bits) an identifier symbol encodes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := mangle.DemangleIdentifier(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("name:        %s\n", d.Name)
		fmt.Printf("type:        %s\n", d.Type)
		fmt.Printf("bits:        %d\n", d.Bits)
		fmt.Printf("calibration: %v\n", d.InCalibration)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demangleCmd)
}
