package main

import (
	"fmt"
	"os"

	"github.com/crucial707/weblab/cmd/cli/root"
)

func main() {
	if err := root.GetRoot().Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
