// Package head handles the record preview command
package head

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/spf13/cobra"

	"fjacquet/typed-csv/cmd/common"
	"fjacquet/typed-csv/cmd/root"
)

var lines int

// Cmd represents the head command
var Cmd = &cobra.Command{
	Use:   "head",
	Short: "Print the first records of a delimited file",
	Long:  `Print the first N logical records of the input, after quote handling and multi-line field merging.`,
	Run:   headFunc,
}

func init() {
	Cmd.Flags().IntVarP(&lines, "lines", "n", 10, "Number of records to print")
}

func headFunc(cmd *cobra.Command, args []string) {
	reader, closeInput, err := common.OpenInput(cmd)
	if err != nil {
		root.Log.Fatalf("Error opening input: %v", err)
	}
	defer closeInput()

	w := csv.NewWriter(os.Stdout)
	printed := 0
	for printed < lines {
		record, err := reader.NextRecord()
		if err == io.EOF {
			break
		}
		if err != nil {
			root.Log.Fatalf("Error reading record: %v", err)
		}
		if err := w.Write(record); err != nil {
			root.Log.Fatalf("Error writing record: %v", err)
		}
		printed++
	}
	w.Flush()
	if err := w.Error(); err != nil {
		root.Log.Fatalf("Error flushing output: %v", err)
	}
	root.Log.WithField("count", printed).Debug("Printed records")
}
