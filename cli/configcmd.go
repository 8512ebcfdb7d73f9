package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/gas/config"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage gas configuration",
	}

	cmd.AddCommand(
		newConfigSetCmd(app),
		newConfigGetCmd(app),
		newConfigListCmd(app),
	)

	return cmd
}

func newConfigSetCmd(app *App) *cobra.Command {
	var scopeName string

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value.

Examples:
  gas config set ai.model "your-model-name"
  gas config set user.language "es" --scope global`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := config.ParseScope(scopeName)
			if err != nil {
				return err
			}
			value, err := app.Config.Set(args[0], args[1], scope)
			if err != nil {
				return err
			}
			app.Console.Successf("Set %s = %v in %s config", args[0], value, scope)
			return nil
		},
	}

	cmd.Flags().StringVar(&scopeName, "scope", "local", "where to save the setting (local or global)")

	return cmd
}

func newConfigGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Get a configuration value",
		Long: `Get a configuration value.

If no key is provided, shows all configuration values with their source.

Examples:
  gas config get
  gas config get ai.model`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				value, err := app.Config.Get(args[0])
				if err != nil {
					return err
				}
				app.Console.Printf("%s = %v\n", args[0], value)
				return nil
			}

			cur := app.Config.Current()
			var rows [][]string
			for _, opt := range app.Config.Options() {
				value, err := cur.Value(opt.Path)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					opt.Path,
					fmt.Sprintf("%v", value),
					string(cur.Source(opt.Path)),
				})
			}
			app.Console.Table("Current Configuration", []string{"Setting", "Value", "Source"}, rows)
			return nil
		},
	}
}

func newConfigListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all available configuration options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, opt := range app.Config.Options() {
				rows = append(rows, []string{
					opt.Path,
					opt.Description,
					fmt.Sprintf("%v", opt.Default),
				})
			}
			app.Console.Table("Available Configuration Options", []string{"Setting", "Description", "Default"}, rows)
			return nil
		},
	}
}
