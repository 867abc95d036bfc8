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

func assetsCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "asset",
		Aliases: []string{"assets"},
		Short:   "Manage assets",
		Annotations: map[string]string{
			"group": "core",
		},
		Example: heredoc.Doc(`
		$ meridian asset list
		$ meridian asset view <id>
		$ meridian asset create -b body.json
		$ meridian asset edit <id> -b body.json
		$ meridian asset delete <id>
		`),
	}

	cmd.AddCommand(
		listAssetsCommand(cfg),
		viewAssetCommand(cfg),
		createAssetCommand(cfg),
		editAssetCommand(cfg),
		deleteAssetCommand(cfg),
	)

	return cmd
}

func listAssetsCommand(cfg *Config) *cobra.Command {
	var search, regions, types, statuses, output string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "lists all assets",
		Example: heredoc.Doc(`
			$ meridian asset list
			$ meridian asset list --region us-east,eu-west --status Active
		`),
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			"action:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			clnt := client.New(cfg.Client)
			assets, err := clnt.ListAssets(cmd.Context(), asset.Filter{
				Search:   search,
				Regions:  splitCommaValues(regions),
				Types:    splitCommaValues(types),
				Statuses: splitCommaValues(statuses),
			})
			if err != nil {
				return err
			}

			spinner.Stop()
			if output != "json" {
				report := [][]string{}
				report = append(report, []string{"ID", "NAME", "REGION", "TYPE", "STATUS"})
				for _, a := range assets {
					report = append(report, []string{a.ID, term.Bluef(a.Name), a.Region, a.Type, a.Status.String()})
				}
				printer.Table(os.Stdout, report)

				fmt.Println(term.Cyanf("To view all the data in JSON format, use flag `-o json`"))
			} else {
				fmt.Println(term.Bluef(prettyPrint(assets)))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter by name substring")
	cmd.Flags().StringVarP(&regions, "region", "r", "", "filter by regions (comma separated)")
	cmd.Flags().StringVarP(&types, "type", "t", "", "filter by types (comma separated)")
	cmd.Flags().StringVarP(&statuses, "status", "s", "", "filter by statuses (comma separated)")
	cmd.Flags().StringVarP(&output, "out", "o", "table", "flag to control output viewing, for json `-o json`")

	return cmd
}

func viewAssetCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <id>",
		Short: "view asset for the given ID",
		Example: heredoc.Doc(`
			$ meridian asset view A-1000
		`),
		Args: cobra.ExactArgs(1),
		Annotations: map[string]string{
			"action:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			clnt := client.New(cfg.Client)
			ast, err := clnt.GetAsset(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			spinner.Stop()

			fmt.Println(term.Bluef(prettyPrint(ast)))
			return nil
		},
	}

	return cmd
}

func createAssetCommand(cfg *Config) *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "register a new asset",
		Example: heredoc.Doc(`
			$ meridian asset create --body=filePath
		`),
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			"action:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			var reqBody asset.Asset
			if err := parseFile(filePath, &reqBody); err != nil {
				return err
			}

			clnt := client.New(cfg.Client)
			created, err := clnt.CreateAsset(cmd.Context(), reqBody)
			if err != nil {
				return err
			}
			spinner.Stop()

			fmt.Println("ID: \t", term.Greenf(created.ID))
			return nil
		},
	}
	cmd.Flags().StringVarP(&filePath, "body", "b", "", "filepath to body that has to be registered")
	if err := cmd.MarkFlagRequired("body"); err != nil {
		panic(err)
	}

	return cmd
}

func editAssetCommand(cfg *Config) *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "replace an asset with the given body",
		Example: heredoc.Doc(`
			$ meridian asset edit A-1000 --body=filePath
		`),
		Args: cobra.ExactArgs(1),
		Annotations: map[string]string{
			"action:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			var reqBody asset.Asset
			if err := parseFile(filePath, &reqBody); err != nil {
				return err
			}
			reqBody.ID = args[0]

			clnt := client.New(cfg.Client)
			replaced, err := clnt.ReplaceAsset(cmd.Context(), reqBody)
			if err != nil {
				return err
			}
			spinner.Stop()

			fmt.Println("ID: \t", term.Greenf(replaced.ID))
			return nil
		},
	}
	cmd.Flags().StringVarP(&filePath, "body", "b", "", "filepath to body that has to be applied")
	if err := cmd.MarkFlagRequired("body"); err != nil {
		panic(err)
	}

	return cmd
}

func deleteAssetCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "delete asset with the given ID",
		Example: heredoc.Doc(`
			$ meridian asset delete A-1000
		`),
		Args: cobra.ExactArgs(1),
		Annotations: map[string]string{
			"action:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			clnt := client.New(cfg.Client)
			if err := clnt.DeleteAsset(cmd.Context(), args[0]); err != nil {
				return err
			}
			spinner.Stop()

			fmt.Println("Asset ", term.Redf(args[0]), " Deleted Successfully")
			return nil
		},
	}

	return cmd
}
