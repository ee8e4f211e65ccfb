package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/cardkit"
	"github.com/reoring/cardkit/elements"
)

// Element statuses reported by check.
const (
	statusRender       = "render"
	statusFallback     = "fallback"
	statusDrop         = "drop"
	statusUnrenderable = "unrenderable"
)

// elementStatus is the check result of one element.
type elementStatus struct {
	Path     string   `json:"path"`
	Type     string   `json:"type"`
	ID       string   `json:"id,omitempty"`
	Status   string   `json:"status"`
	Unmet    []string `json:"unmet,omitempty"`
	Resolved string   `json:"resolved,omitempty"` // type rendered instead, for fallback
}

// checkCard decides, for every element of card, what a host providing caps
// renders. Children of an element that is not rendered itself are skipped.
func checkCard(card *elements.Card, caps map[string]string) []elementStatus {
	var out []elementStatus
	_ = card.Walk(func(path cardkit.Pointer, e cardkit.Element) error {
		st := elementStatus{
			Path: path.String(),
			Type: e.ElementTypeString(),
			ID:   e.ID(),
		}
		if cardkit.Renderable(e, caps) {
			st.Status = statusRender
			out = append(out, st)
			return nil
		}
		st.Unmet = cardkit.UnmetRequirements(e, caps)
		switch resolved, ok := cardkit.Resolve(e, caps); {
		case ok:
			st.Status = statusFallback
			st.Resolved = resolved.ElementTypeString()
		case lastFallback(e) == cardkit.FallbackDrop:
			st.Status = statusDrop
		default:
			st.Status = statusUnrenderable
		}
		out = append(out, st)
		return elements.SkipChildren
	})
	return out
}

// lastFallback returns the fallback type at the end of the chain of e.
func lastFallback(e cardkit.Element) cardkit.FallbackType {
	for e.FallbackType() == cardkit.FallbackContent {
		e = e.FallbackContent()
	}
	return e.FallbackType()
}

type checkOpts struct {
	host   hostOpts
	strict bool
}

func newCheckCmd() *cobra.Command {
	var opts checkOpts

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Report which elements a host can render",
		Long: `Check parses a card and, for every element, compares its requirements with
the capabilities of the host config (--host). Elements that cannot render are
resolved through their fallback chain.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], &opts)
		},
	}
	opts.host.register(cmd)
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when an element has no usable fallback")
	return cmd
}

func runCheck(cmd *cobra.Command, path string, opts *checkOpts) error {
	ctx := cmd.Context()
	s, err := opts.host.session()
	if err != nil {
		return err
	}
	card, err := s.parseFile(ctx, cmd, path)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	unrenderable := 0
	for _, st := range checkCard(card, s.cfg.Capabilities) {
		label := fmt.Sprintf("%s %s", st.Path, st.Type)
		if st.ID != "" {
			label += fmt.Sprintf(" (%s)", st.ID)
		}
		switch st.Status {
		case statusRender:
			printSuccess(w, "%s", label)
		case statusFallback:
			printWarning(w, "%s falls back to %s", label, st.Resolved)
		case statusDrop:
			printInfo(w, "%s is dropped", label)
		default:
			unrenderable++
			printError(w, "%s cannot render", label)
		}
		if len(st.Unmet) > 0 {
			printDetail(w, "unmet: %s", strings.Join(st.Unmet, ", "))
		}
	}
	if opts.strict && unrenderable > 0 {
		return exitError{msg: fmt.Sprintf("%d element(s) cannot render", unrenderable)}
	}
	return nil
}
