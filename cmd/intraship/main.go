package main

import (
	"fmt"
	"os"

	"github.com/aria3ppp/intraship/internal/intraship/app/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
