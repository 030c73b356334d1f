package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/edinet-cli/internal/edinet"
)

var (
	listDate    string
	listType    string
	listCSVOnly bool
	listFormat  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents filed on a date",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		date, err := time.Parse("2006-01-02", listDate)
		if err != nil {
			return eris.Wrapf(err, "list: bad date %q", listDate)
		}

		client := initClient()
		docs, err := client.ListDocuments(ctx, date)
		if err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.UpsertDocuments(ctx, listDate, docs); err != nil {
			return err
		}

		docs = filterDocuments(docs, listType, listCSVOnly)

		if listFormat != "" && listFormat != "table" {
			return writeOutput(os.Stdout, docs, listFormat)
		}
		formatDocumentList(docs)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listDate, "date", time.Now().AddDate(0, 0, -1).Format("2006-01-02"), "filing date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listType, "type", "", "filter by document type code (e.g. 120)")
	listCmd.Flags().BoolVar(&listCSVOnly, "csv-only", false, "only documents with a CSV archive")
	listCmd.Flags().StringVar(&listFormat, "format", "table", "output format: table, json, or yaml")
	rootCmd.AddCommand(listCmd)
}

func filterDocuments(docs []edinet.DocumentMeta, typeCode string, csvOnly bool) []edinet.DocumentMeta {
	out := docs[:0:0]
	for _, d := range docs {
		if typeCode != "" && d.DocTypeCode != typeCode {
			continue
		}
		if csvOnly && !d.HasCSV() {
			continue
		}
		out = append(out, d)
	}
	return out
}

func formatDocumentList(docs []edinet.DocumentMeta) {
	if len(docs) == 0 {
		fmt.Fprintln(os.Stderr, "No documents found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DOC_ID\tTYPE\tEDINET\tCSV\tSUBMITTED\tFILER")
	for _, d := range docs {
		submitted := ""
		if t := d.SubmitTime(); t != nil {
			submitted = t.Format("15:04")
		}
		csv := ""
		if d.HasCSV() {
			csv = "yes"
		}
		filer := d.FilerName
		if len([]rune(filer)) > 28 {
			filer = string([]rune(filer)[:27]) + "…"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			d.DocID, d.DocTypeCode, d.EDINETCode, csv, submitted, filer)
	}
	_ = w.Flush()
}
