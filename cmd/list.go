package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/committools/hookman/cli"
	"github.com/committools/hookman/manifest"
)

// hookListing is one row of 'hookman list' output.
type hookListing struct {
	Repo string   `json:"repo"`
	Rev  string   `json:"rev,omitempty"`
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Args []string `json:"args,omitempty"`
}

// NewListCmd lists every hook declaration in execution order.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List hook declarations in execution order",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)

			path, err := cli.ResolveManifestPath(opts.ManifestFile)
			if err != nil {
				return err
			}

			m, err := manifest.Load(path)
			if err != nil {
				return err
			}

			var listings []hookListing
			for _, repo := range m.Repos {
				for _, hook := range repo.Hooks {
					listings = append(listings, hookListing{
						Repo: repo.Repo,
						Rev:  repo.Rev,
						ID:   hook.ID,
						Name: hook.DisplayName(),
						Args: hook.Args,
					})
				}
			}

			if opts.JSONOutput {
				out, err := json.MarshalIndent(listings, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "REPO\tREV\tHOOK\tARGS")
			for _, l := range listings {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", l.Repo, l.Rev, l.ID, strings.Join(l.Args, " "))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Printf("\n%d hooks across %d repos\n", m.HookCount(), m.RepoCount())
			return nil
		},
	}
}
