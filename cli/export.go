package cli

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
	"github.com/spf13/cobra"

	"github.com/meridianhq/meridian/asset"
	"github.com/meridianhq/meridian/internal/client"
)

func exportCommand(cfg *Config) *cobra.Command {
	var search, regions, types, statuses, outPath string
	cmd := &cobra.Command{
		Use:   "export <format>",
		Short: "Download the register as csv or geojson",
		Annotations: map[string]string{
			"group": "core",
		},
		Example: heredoc.Doc(`
			$ meridian export csv
			$ meridian export geojson -o assets.geojson
			$ meridian export csv --region us-east
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			clnt := client.New(cfg.Client)
			payload, filename, err := clnt.Export(cmd.Context(), args[0], asset.Filter{
				Search:   search,
				Regions:  splitCommaValues(regions),
				Types:    splitCommaValues(types),
				Statuses: splitCommaValues(statuses),
			})
			if err != nil {
				return err
			}
			spinner.Stop()

			if outPath == "" {
				outPath = filename
			}
			if outPath == "" {
				outPath = "meridian-export." + args[0]
			}
			if err := os.WriteFile(outPath, payload, 0644); err != nil {
				return err
			}

			fmt.Println("Export written to ", term.Greenf(outPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter by name substring")
	cmd.Flags().StringVarP(&regions, "region", "r", "", "filter by regions (comma separated)")
	cmd.Flags().StringVarP(&types, "type", "t", "", "filter by types (comma separated)")
	cmd.Flags().StringVarP(&statuses, "status", "s", "", "filter by statuses (comma separated)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "path to write the export to (defaults to the server filename)")

	return cmd
}
