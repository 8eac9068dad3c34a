package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandrolain/goalgebra"
)

var renderTypeset bool

var renderCmd = &cobra.Command{
	Use:   "render EXPR",
	Short: "parse an expression and print it back without simplifying",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := goalgebra.Parse(args[0])
		if err != nil {
			return err
		}

		if renderTypeset {
			fmt.Println(goalgebra.RenderTypeset(expr.AST()))
		} else {
			fmt.Println(goalgebra.Render(expr.AST()))
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().BoolVar(&renderTypeset, "typeset", false, "emit LaTeX output")
	rootCmd.AddCommand(renderCmd)
}
