package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cataggar/configur/launcher"
)

func main() {
	host, err := launcher.CurrentHost()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configur: %v\n", err)
		os.Exit(1)
	}
	os.Exit(launcher.Run(context.Background(), os.Args, host))
}
