// Package root contains the root command for the application
package root

import (
	"sync"

	"fjacquet/typed-csv/internal/config"
	"fjacquet/typed-csv/internal/currencyutils"
	"fjacquet/typed-csv/internal/fileutils"
	"fjacquet/typed-csv/internal/logging"
	"fjacquet/typed-csv/pkg/csvreader"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input     string
	Output    string
	Delimiter string
	Escape    string
	SkipLines int
	Charset   string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg holds the Viper configuration loaded before any command runs.
	// It stays nil when configuration loading fails; commands then rely on
	// flag values alone.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "typed-csv",
		Short: "A CLI tool to inspect, convert and profile delimiter-separated files.",
		Long: `typed-csv reads delimiter-separated text with configurable delimiter and
quote characters, multi-line quoted fields and strict row-width checking.
It can preview files, rewrite them with a different delimiter, and produce
per-column profiles.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to typed-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Route package-level loggers through the configured instance
			currencyutils.SetLogger(Log)
			fileutils.SetLogger(Log)
			logging.SetDefaultLogger(logging.NewLogrusAdapterFromLogger(Log))

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Warnf("Failed to load configuration, using flag defaults: %v", err)
				return
			}
			Cfg = cfg
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

var initOnce sync.Once

// Init initializes the root command and all flags
func Init() {
	initOnce.Do(registerFlags)
}

func registerFlags() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file (defaults to stdin)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (defaults to stdout)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Delimiter, "delimiter", "d", ",", "Field delimiter character")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Escape, "escape", "e", `"`, "Quote character")
	Cmd.PersistentFlags().IntVarP(&SharedFlags.SkipLines, "skip", "s", 0, "Number of leading lines to skip")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Charset, "charset", "", "Input character encoding (IANA name, default UTF-8)")
}

// ReaderOptions builds csvreader options from the persistent flags, filling
// in configuration values for flags the user did not set explicitly.
func ReaderOptions(cmd *cobra.Command) []csvreader.Option {
	delimiter := SharedFlags.Delimiter
	escape := SharedFlags.Escape
	skip := SharedFlags.SkipLines
	charset := SharedFlags.Charset

	if Cfg != nil {
		flags := cmd.Flags()
		if !flags.Changed("delimiter") {
			delimiter = Cfg.CSV.Delimiter
		}
		if !flags.Changed("escape") {
			escape = Cfg.CSV.Escape
		}
		if !flags.Changed("skip") {
			skip = Cfg.CSV.SkipLines
		}
		if !flags.Changed("charset") && Cfg.CSV.Charset != "" {
			charset = Cfg.CSV.Charset
		}
	}

	opts := []csvreader.Option{
		csvreader.WithLogger(logging.NewLogrusAdapterFromLogger(Log)),
	}
	if r := []rune(delimiter); len(r) == 1 {
		opts = append(opts, csvreader.WithDelimiter(r[0]))
	} else if len(r) != 0 {
		Log.Warnf("Delimiter %q is not a single character, using ','", delimiter)
	}
	if r := []rune(escape); len(r) == 1 {
		opts = append(opts, csvreader.WithEscape(r[0]))
	} else if len(r) != 0 {
		Log.Warnf("Escape %q is not a single character, using '\"'", escape)
	}
	if skip > 0 {
		opts = append(opts, csvreader.WithSkipLines(skip))
	}
	if charset != "" {
		opts = append(opts, csvreader.WithCharset(charset))
	}
	return opts
}
