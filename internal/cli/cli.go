// Package cli implements the cardkit command-line interface.
//
// Commands:
//   - parse: read a card (JSON or YAML) and print it back as canonical JSON
//   - check: report, per element, whether a host can render it or which
//     fallback it resolves to
//   - resources: list the remote resources a card references
//   - schema: print the JSON Schema of the built-in element families
//   - serve: expose parse and check over HTTP (echo or gin)
//
// All commands support --verbose (-v) for debug-level logging. The logger
// travels in context.Context and also traces the parser.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/reoring/cardkit"
	"github.com/reoring/cardkit/elements"
	"github.com/reoring/cardkit/i18n"
	"github.com/reoring/cardkit/internal/config"
	_ "github.com/reoring/cardkit/source" // go-json token driver
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// called by main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the cardkit CLI.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "cardkit",
		Short:         "cardkit parses, checks and serves adaptive card documents",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(cardkit.WithLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("cardkit %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newParseCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newResourcesCmd())
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newServeCmd())

	return root
}

// hostOpts is the --host flag shared by commands that need a host config.
type hostOpts struct {
	path string
}

func (o *hostOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.path, "host", "", "host config file (.toml, .yaml)")
}

// load reads the host config and applies its language to issue messages.
func (o *hostOpts) load() (*config.HostConfig, error) {
	cfg, err := config.LoadOptional(o.path)
	if err != nil {
		return nil, err
	}
	i18n.SetLanguage(cfg.Language)
	return cfg, nil
}

// session bundles what a command needs to parse cards for one host.
type session struct {
	cfg      *config.HostConfig
	opt      cardkit.ParseOpt
	families elements.Families
}

func newSession(cfg *config.HostConfig) (*session, error) {
	opt, err := cfg.Parse.Options()
	if err != nil {
		return nil, err
	}
	return &session{
		cfg:      cfg,
		opt:      opt,
		families: elements.NewFamilies(cfg.Parse.UnknownPolicy()),
	}, nil
}

func (o *hostOpts) session() (*session, error) {
	cfg, err := o.load()
	if err != nil {
		return nil, err
	}
	return newSession(cfg)
}

// exitError reports failure after the command already printed its details.
type exitError struct{ msg string }

func (e exitError) Error() string { return e.msg }
