// Package profile handles the column profiling command
package profile

import (
	"github.com/spf13/cobra"

	"fjacquet/typed-csv/cmd/common"
	"fjacquet/typed-csv/cmd/root"
	"fjacquet/typed-csv/internal/report"
)

var format string

// Cmd represents the profile command
var Cmd = &cobra.Command{
	Use:   "profile",
	Short: "Produce a per-column profile of a delimited file",
	Long: `Read the whole input and report, per header column, the fill rate and the
most specific value type every filled cell satisfied (date, integer,
double, amount or text).`,
	Run: profileFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Report format: csv or json (default from configuration)")
}

func profileFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Profile command called")

	reader, closeInput, err := common.OpenInput(cmd)
	if err != nil {
		root.Log.Fatalf("Error opening input: %v", err)
	}
	defer closeInput()

	reportFormat := format
	if reportFormat == "" {
		reportFormat = "csv"
		if root.Cfg != nil {
			reportFormat = root.Cfg.Report.Format
		}
	}

	generator := report.NewGenerator(root.Log)
	profiles, err := generator.Profile(reader)
	if err != nil {
		root.Log.Fatalf("Error profiling input: %v", err)
	}

	rendered, err := generator.Render(profiles, reportFormat)
	if err != nil {
		root.Log.Fatalf("Error rendering report: %v", err)
	}

	if err := common.WriteOutput(rendered); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
}
