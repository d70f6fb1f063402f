package main

import (
	"fmt"
	"os"

	"github.com/DSOlab/ggdatetime-sub001/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dtconv:", err)
		os.Exit(1)
	}
}
