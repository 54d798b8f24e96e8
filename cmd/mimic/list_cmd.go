package main

import (
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/fixturelab/mimic/internal/output"
)

// fixtureInfo describes one built-in fixture for the catalogue.
type fixtureInfo struct {
	Name    string
	Summary string
}

var catalogue = []fixtureInfo{
	{"prompt", "status line, 1s pause, y/n question, one stdin line"},
	{"sleep", "banner line, blocking pause, no stdin"},
	{"echo", "mirrors stdin lines back to stdout until EOF"},
	{"spin", "animated spinner on a TTY, plain banner when piped"},
	{"script", "steps loaded from a TOML file"},
}

// fixtureSource implements fuzzy.Source over the catalogue.
type fixtureSource []fixtureInfo

func (s fixtureSource) String(i int) string { return s[i].Name }
func (s fixtureSource) Len() int            { return len(s) }

// filterCatalogue returns fixtures whose name fuzzy-matches query,
// best match first. An empty query returns the full catalogue.
func filterCatalogue(query string) []fixtureInfo {
	if query == "" {
		return catalogue
	}
	matches := fuzzy.FindFrom(query, fixtureSource(catalogue))
	result := make([]fixtureInfo, 0, len(matches))
	for _, m := range matches {
		result = append(result, catalogue[m.Index])
	}
	return result
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [QUERY]",
		Short:   "List available fixtures",
		Aliases: []string{"ls"},
		GroupID: GroupUtility,
		Args:    cobra.MaximumNArgs(1),
		Long: `List the built-in fixtures with a one-line summary of each. With a
query, names are fuzzy-matched and shown best match first.`,
		Example: `  mimic list            # All fixtures
  mimic list pr         # Fuzzy match: prompt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			out := output.FromContext(cmd.Context())
			for _, f := range filterCatalogue(query) {
				out.Printf("%-8s %s\n", f.Name, f.Summary)
			}
			return nil
		},
	}

	return cmd
}
