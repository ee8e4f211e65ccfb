package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/cardkit"
	"github.com/reoring/cardkit/elements"
	yamlsrc "github.com/reoring/cardkit/source/yaml"
)

// readSource reads path ("-" for stdin) and picks the token source by
// extension: .yaml and .yml are read as YAML, anything else as JSON.
func readSource(cmd *cobra.Command, path string) (cardkit.Source, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlsrc.NewBytes(data), nil
	}
	return cardkit.JSONBytes(data), nil
}

// parseFile reads and parses the card at path, printing warnings to the
// command's error stream and issues when parsing fails.
func (s *session) parseFile(ctx context.Context, cmd *cobra.Command, path string) (*elements.Card, error) {
	src, err := readSource(cmd, path)
	if err != nil {
		return nil, err
	}
	res, err := s.families.Parse(ctx, src, s.opt)
	if err != nil {
		return nil, reportFailure(cmd.ErrOrStderr(), path, err)
	}
	loggerFromContext(ctx).Debug("parsed", "file", path, "session", res.SessionID)
	for _, w := range res.Warnings {
		printWarning(cmd.ErrOrStderr(), "%s", w.String())
	}
	return res.Value, nil
}

// reportFailure prints every issue of err and returns a short error for the
// exit status. Errors that are not Issues are returned unchanged.
func reportFailure(w io.Writer, path string, err error) error {
	iss, ok := cardkit.AsIssues(err)
	if !ok {
		return err
	}
	for _, is := range iss {
		printError(w, "%s", is.String())
	}
	return exitError{msg: fmt.Sprintf("%s: %d issue(s)", path, len(iss))}
}
