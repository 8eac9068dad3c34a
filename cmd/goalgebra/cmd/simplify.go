package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandrolain/goalgebra"
	"github.com/sandrolain/goalgebra/pkg/evaluator"
)

var simplifyTypeset bool

var simplifyCmd = &cobra.Command{
	Use:   "simplify EXPR",
	Short: "reduce an expression to canonical simplest form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := goalgebra.Parse(args[0])
		if err != nil {
			return err
		}

		out, err := goalgebra.Evaluate(expr, evaluator.WithDebug(verbose))
		if err != nil {
			return err
		}

		if simplifyTypeset {
			fmt.Println(goalgebra.RenderTypeset(out))
		} else {
			fmt.Println(goalgebra.Render(out))
		}
		return nil
	},
}

func init() {
	simplifyCmd.Flags().BoolVar(&simplifyTypeset, "typeset", false, "emit LaTeX output")
	rootCmd.AddCommand(simplifyCmd)
}
