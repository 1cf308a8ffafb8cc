package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openqasm/qe-qasm-sub003/internal/ast"
	"github.com/openqasm/qe-qasm-sub003/internal/mangle"
)

var (
	mangleType          string
	mangleBits          int
	mangleInCalibration bool
)

// cliTypeNames maps the --type flag's accepted spellings to the value
// types the mangler actually encodes (spec §6's normative alphabet);
// deliberately a small hand-picked subset rather than every AstType, since
// declaration kinds and modifiers are not valid targets of a standalone
// mangle invocation.
var cliTypeNames = map[string]ast.AstType{
	"bool":        ast.TypeBool,
	"int":         ast.TypeInt,
	"uint":        ast.TypeUInt,
	"float":       ast.TypeFloat,
	"double":      ast.TypeDouble,
	"longdouble":  ast.TypeLongDouble,
	"mpint":       ast.TypeMPInteger,
	"mpuint":      ast.TypeMPUInteger,
	"mpdecimal":   ast.TypeMPDecimal,
	"mpcomplex":   ast.TypeMPComplex,
	"bitset":      ast.TypeBitset,
	"angle":       ast.TypeAngle,
	"qubit":       ast.TypeQubit,
	"qubitarray":  ast.TypeQubitContainer,
	"duration":    ast.TypeDuration,
	"stretch":     ast.TypeStretch,
	"length":      ast.TypeLength,
}

var mangleCmd = &cobra.Command{
	Use:   "mangle <name>",
	Short: "Mangle an identifier's (name, type, bits) into its symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, ok := cliTypeNames[mangleType]
		if !ok {
			return fmt.Errorf("unrecognized --type %q", mangleType)
		}
		out := mangle.New().Start(mangleInCalibration).Identifier(t, mangleBits, args[0]).End().String()
		fmt.Println(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mangleCmd)
	mangleCmd.Flags().StringVar(&mangleType, "type", "int", "identifier's value type (see cliTypeNames)")
	mangleCmd.Flags().IntVar(&mangleBits, "bits", 32, "bit width for sized types")
	mangleCmd.Flags().BoolVar(&mangleInCalibration, "calibration", false, "mangle as if inside a calibration context")
}
