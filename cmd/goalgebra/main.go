// Command goalgebra is a command line front end for the goalgebra
// expression engine: it parses, simplifies, renders, and compares
// algebraic expressions given as arguments.
package main

import (
	"github.com/sandrolain/goalgebra/cmd/goalgebra/cmd"
)

func main() {
	cmd.Execute()
}
