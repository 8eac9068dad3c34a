package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandrolain/goalgebra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the goalgebra version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(goalgebra.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
