package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newEpisodesCommand(newClient ClientFactory) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "episodes <show-id>",
		Short: "Print the episodes of a show",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			showID, err := strconv.Atoi(args[0])
			if err != nil || showID <= 0 {
				return fmt.Errorf("invalid show id %q", args[0])
			}

			catalog := newClient(currentConfig(cmd))
			defer catalog.Close()

			list, err := catalog.GetEpisodes(cmd.Context(), showID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, list)
			}
			if len(list.Episodes) == 0 {
				_, err := fmt.Fprintf(out, "No episodes found for show %d\n", list.ShowID)
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSEASON\tNUMBER\tNAME")
			for _, ep := range list.Episodes {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", ep.ID, ep.Season, ep.Number, ep.Name)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the episodes as JSON")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
