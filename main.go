// ./main.go
package main

import (
	"github.com/kennedy-st/curbside-cli/cmd"
)

func main() {
	// Execute the root command defined in the cmd package. It handles all
	// command-line parsing, configuration, and execution.
	cmd.Execute()
}
