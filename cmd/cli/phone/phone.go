package phone

import (
	"github.com/crucial707/weblab/cmd/cli/output"
	phonelib "github.com/crucial707/weblab/internal/phone"
	"github.com/spf13/cobra"
)

// Cmd validates phone numbers from the command line, using the same
// normalizer the /phone page runs.
var Cmd = &cobra.Command{
	Use:   "phone <number>...",
	Short: "Validate and format phone numbers",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rows := make([][]interface{}, 0, len(args))
		for _, raw := range args {
			formatted, err := phonelib.Normalize(raw)
			if err != nil {
				rows = append(rows, []interface{}{raw, "", err.Error()})
				continue
			}
			rows = append(rows, []interface{}{raw, formatted, ""})
		}
		output.RenderTable([]string{"NUMBER", "FORMATTED", "ERROR"}, rows)
	},
}
