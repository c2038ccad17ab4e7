package root

import (
	"fmt"
	"os"

	"github.com/crucial707/weblab/cmd/cli/phone"
	"github.com/spf13/cobra"
)

// Exported RootCmd
var RootCmd = &cobra.Command{
	Use:   "weblab",
	Short: "Web lab utilities",
	Long:  "Command line utilities for the web lab application",
}

func init() {
	RootCmd.AddCommand(phone.Cmd)
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Optional helper to return the RootCmd
func GetRoot() *cobra.Command {
	return RootCmd
}
