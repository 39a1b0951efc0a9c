package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Belphemur/ShowSearch/internal/parser"
)

func newSearchCommand(newClient ClientFactory) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Print the shows matching a term",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := newClient(currentConfig(cmd))
			defer catalog.Close()

			term := strings.Join(args, " ")
			shows, err := catalog.SearchShows(cmd.Context(), term)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, shows)
			}
			if len(shows) == 0 {
				_, err := fmt.Fprintln(out, "No shows found")
				return err
			}
			for _, show := range shows {
				fmt.Fprintf(out, "[%d] %s\n", show.ID, show.Name)
				fmt.Fprintf(out, "    %s\n", show.Image)
				if summary := parser.SummaryText(show.Summary); summary != "" {
					fmt.Fprintf(out, "    %s\n", summary)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the shows as JSON")
	return cmd
}
