package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/edinet-cli/internal/report"
)

var doctypesCmd = &cobra.Command{
	Use:   "doctypes",
	Short: "List known EDINET document type codes",
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "CODE\tNAME\tDESCRIPTION")
		for _, dt := range report.DocTypes() {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", dt.Code, dt.NameEN, dt.Description)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(doctypesCmd)
}
