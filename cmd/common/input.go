// Package common provides helpers shared by the CLI commands.
package common

import (
	"os"

	"github.com/spf13/cobra"

	"fjacquet/typed-csv/cmd/root"
	"fjacquet/typed-csv/internal/fileutils"
	"fjacquet/typed-csv/pkg/csvreader"
)

// OpenInput builds a reader over the --input file, or stdin when no file is
// given. The returned function releases the underlying file.
func OpenInput(cmd *cobra.Command) (*csvreader.Reader, func(), error) {
	opts := root.ReaderOptions(cmd)
	if root.SharedFlags.Input == "" {
		return csvreader.New(os.Stdin, opts...), func() {}, nil
	}
	reader, closer, err := csvreader.NewFromFile(root.SharedFlags.Input, opts...)
	if err != nil {
		return nil, nil, err
	}
	return reader, func() {
		if err := closer.Close(); err != nil {
			root.Log.Warnf("Failed to close input file: %v", err)
		}
	}, nil
}

// WriteOutput writes data to the --output file, or stdout when no file is
// given.
func WriteOutput(data []byte) error {
	if root.SharedFlags.Output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return fileutils.WriteFile(root.SharedFlags.Output, data, 0644)
}
