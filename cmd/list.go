package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/nordicwalking/trailview/catalog"
	"github.com/nordicwalking/trailview/config"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tracks of the tracks directory",
	RunE:  runListCmd,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runListCmd(cmd *cobra.Command, args []string) error {
	store := catalog.NewStore(config.TracksDirectory(), catalog.StoreOptions{
		Locale:   config.DisplayLocale(),
		MaxBytes: config.MaxBytes(),
	})

	tracks, err := store.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tNAME\tDISTANCE\tTIME\tDATE")
	for _, t := range tracks {
		fmt.Fprintf(w, "%s\t%s\t%.3f km\t%s\t%s\n",
			t.Slug, t.Name, t.Distance, time.Duration(t.Time)*time.Second, t.Date)
	}

	return w.Flush()
}
