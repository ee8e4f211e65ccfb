package cli

import (
	"github.com/spf13/cobra"

	"github.com/reoring/cardkit"
)

type resourcesOpts struct {
	host   hostOpts
	asJSON bool
}

func newResourcesCmd() *cobra.Command {
	var opts resourcesOpts

	cmd := &cobra.Command{
		Use:   "resources FILE",
		Short: "List the remote resources a card references",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := opts.host.session()
			if err != nil {
				return err
			}
			card, err := s.parseFile(ctx, cmd, args[0])
			if err != nil {
				return err
			}
			res := card.ResourceInformation()
			w := cmd.OutOrStdout()
			if opts.asJSON {
				if res == nil {
					res = []cardkit.RemoteResourceInformation{}
				}
				b, err := cardkit.MarshalValue(res, "  ")
				if err != nil {
					return err
				}
				_, err = w.Write(append(b, '\n'))
				return err
			}
			printInfo(w, "%d resource(s)", len(res))
			for _, r := range res {
				printResource(w, r.URL, r.MimeType)
			}
			return nil
		},
	}
	opts.host.register(cmd)
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print resources as JSON")
	return cmd
}
