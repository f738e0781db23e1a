package cli

import (
	"os"

	"github.com/koskimas/tlgen/internal/cmd"
	"github.com/koskimas/tlgen/internal/log"
	"github.com/spf13/cobra"
)

type options struct {
	dir      string
	config   string
	logLevel string
	logFile  string
}

// NewRootCommand builds the tlgen command. Running it without a subcommand
// is the same as running `tlgen generate`.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tlgen",
		Short: "Generate TypeScript classes and a client from a TL schema",
		Long: `tlgen reads a TL schema (td_api.tl by default) and generates a module of
classes mirroring every type and a client with one method per function.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return log.Init(opts.logFile, opts.logLevel)
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runGenerate(opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.dir, "dir", "", "working directory (default: current directory)")
	flags.StringVar(&opts.config, "config", "", "config file, relative to --dir (default: optional "+cmd.ConfigFile+")")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flags.StringVar(&opts.logFile, "log-file", "", "log file (default: stdout)")

	root.AddCommand(&cobra.Command{
		Use:   "generate",
		Short: "Regenerate every output from the schema",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runGenerate(opts)
		},
	})

	return root
}

func runGenerate(opts *options) error {
	dir := opts.dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		dir = wd
	}

	return cmd.Run(cmd.Settings{
		WorkingDir: dir,
		ConfigPath: opts.config,
	})
}
