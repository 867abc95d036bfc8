package cli

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
	"github.com/spf13/cobra"

	"github.com/meridianhq/meridian/internal/client"
)

func qualityCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quality",
		Short: "Inspect register quality",
		Annotations: map[string]string{
			"group": "core",
		},
		Example: heredoc.Doc(`
		$ meridian quality issues
		`),
	}

	cmd.AddCommand(listIssuesCommand(cfg))

	return cmd
}

func listIssuesCommand(cfg *Config) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "issues",
		Short: "lists quality issues over the whole register",
		Example: heredoc.Doc(`
			$ meridian quality issues
		`),
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			"action:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			clnt := client.New(cfg.Client)
			issues, err := clnt.ListIssues(cmd.Context())
			if err != nil {
				return err
			}
			spinner.Stop()

			if output != "json" {
				report := [][]string{}
				report = append(report, []string{"ASSET", "CODE", "MESSAGE"})
				for _, issue := range issues {
					report = append(report, []string{issue.AssetID, term.Redf(string(issue.Code)), issue.Message})
				}
				printer.Table(os.Stdout, report)

				fmt.Println(term.Cyanf("To view all the data in JSON format, use flag `-o json`"))
			} else {
				fmt.Println(term.Bluef(prettyPrint(issues)))
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "out", "o", "table", "flag to control output viewing, for json `-o json`")

	return cmd
}
