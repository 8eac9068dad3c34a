package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandrolain/goalgebra"
	"github.com/sandrolain/goalgebra/pkg/evaluator"
)

var (
	equivTrials    int
	equivSeed      int64
	equivTolerance float64
)

var equivCmd = &cobra.Command{
	Use:   "equiv EXPR1 EXPR2",
	Short: "check two expressions for numeric equivalence",
	Long: `equiv substitutes random integers for the variables of both expressions
and compares the resulting values over a number of trials. A "not
equivalent" verdict is definitive; "equivalent" is probabilistic.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := goalgebra.Parse(args[0])
		if err != nil {
			return fmt.Errorf("first expression: %w", err)
		}
		b, err := goalgebra.Parse(args[1])
		if err != nil {
			return fmt.Errorf("second expression: %w", err)
		}

		opts := []evaluator.CheckOption{
			evaluator.WithTrials(equivTrials),
			evaluator.WithTolerance(equivTolerance),
			evaluator.WithCheckDebug(verbose),
		}
		if cmd.Flags().Changed("seed") {
			opts = append(opts, evaluator.WithSeed(equivSeed))
		}

		same, err := goalgebra.Equivalent(a, b, opts...)
		if err != nil {
			return err
		}

		if same {
			fmt.Println("equivalent")
		} else {
			fmt.Println("not equivalent")
		}
		return nil
	},
}

func init() {
	equivCmd.Flags().IntVar(&equivTrials, "trials", 10, "number of random substitution rounds")
	equivCmd.Flags().Int64Var(&equivSeed, "seed", 0, "random seed for reproducible checks")
	equivCmd.Flags().Float64Var(&equivTolerance, "tolerance", 1e-4, "numeric agreement tolerance")
	rootCmd.AddCommand(equivCmd)
}
