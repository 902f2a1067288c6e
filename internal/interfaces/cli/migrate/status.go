package migrate

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/orris-inc/setracker/internal/infrastructure/migration"
)

// PrintStatus renders the schema status as an aligned table.
func PrintStatus(w io.Writer, status *migration.Status) {
	fmt.Fprintf(w, "Strategy: %s\n", status.Strategy)
	fmt.Fprintf(w, "Version:  %d\n\n", status.Version)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TABLE\tSTATE")
	for _, table := range status.Tables {
		state := "missing"
		if table.Present {
			state = "present"
		}
		fmt.Fprintf(tw, "%s\t%s\n", table.Name, state)
	}
	tw.Flush()
}
