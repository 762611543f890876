// cmd/chainsight/main.go
package main

import (
	cmd "github.com/mwiater/chainsight/internal/cli"
)

// main starts the chainsight CLI application by delegating to the
// cobra root command defined in the chainsight package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
