package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/edinet-cli/internal/registry"
)

var filerFormat string

var filerCmd = &cobra.Command{
	Use:   "filer <edinet-code>",
	Short: "Classify a filer against the official code lists",
	Long:  "Looks up an EDINET code in the FSA code list downloads (configured via registry.entity_csv and registry.fund_csv) and reports its classification.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Registry.EntityCSV == "" && cfg.Registry.FundCSV == "" {
			return eris.New("filer: no code lists configured (set registry.entity_csv / registry.fund_csv)")
		}

		reg, err := registry.Load(cfg.Registry.EntityCSV, cfg.Registry.FundCSV)
		if err != nil {
			return err
		}

		code := args[0]
		out := struct {
			EDINETCode     string              `json:"edinet_code" yaml:"edinet_code"`
			Type           registry.EntityType `json:"type" yaml:"type"`
			Known          bool                `json:"known" yaml:"known"`
			Name           string              `json:"name,omitempty" yaml:"name,omitempty"`
			SecuritiesCode string              `json:"securities_code,omitempty" yaml:"securities_code,omitempty"`
		}{
			EDINETCode:     code,
			Type:           reg.Classify(code),
			Known:          reg.IsKnown(code),
			Name:           reg.Name(code, true),
			SecuritiesCode: reg.SecuritiesCode(code),
		}
		return writeOutput(os.Stdout, out, filerFormat)
	},
}

func init() {
	filerCmd.Flags().StringVar(&filerFormat, "format", "json", "output format: json or yaml")
	rootCmd.AddCommand(filerCmd)
}
