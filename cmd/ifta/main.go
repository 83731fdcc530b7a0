// Command ifta prints an IFTA report from an exported fuel entry file.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/micronlogivdev/iftaway/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:], os.Stdout, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "ifta: %v\n", err)
		os.Exit(1)
	}
}
