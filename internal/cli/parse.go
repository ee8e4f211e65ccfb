package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reoring/cardkit"
)

type parseOpts struct {
	host   hostOpts
	indent bool
	output string // output file path (stdout if empty)
}

func newParseCmd() *cobra.Command {
	opts := parseOpts{indent: true}

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a card and print it as canonical JSON",
		Long: `Parse reads a card document (JSON, or YAML for .yaml/.yml files; "-" reads
stdin), applies the host's parse limits and prints the card back as JSON.
Unknown element types, fallback content and additional properties are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], &opts)
		},
	}
	opts.host.register(cmd)
	cmd.Flags().BoolVar(&opts.indent, "indent", opts.indent, "indent the output")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

func runParse(cmd *cobra.Command, path string, opts *parseOpts) error {
	ctx := cmd.Context()
	s, err := opts.host.session()
	if err != nil {
		return err
	}
	prog := newProgress(loggerFromContext(ctx))

	card, err := s.parseFile(ctx, cmd, path)
	if err != nil {
		return err
	}
	v, err := card.SerializeToJSONValue()
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}
	indent := ""
	if opts.indent {
		indent = "  "
	}
	b, err := cardkit.MarshalValue(v, indent)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}
	b = append(b, '\n')

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(b)
		return err
	}
	if err := os.WriteFile(opts.output, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	prog.done(fmt.Sprintf("Wrote %s", opts.output))
	return nil
}
