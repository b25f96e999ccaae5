package main

import (
	"github.com/spf13/cobra"

	blogcmd "github.com/goliatone/go-folio/internal/commands/blog"
)

func (a *app) themeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect the site colour themes",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "toggle <current>",
			Short: "Print the theme that follows current",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.handlers.ToggleTheme.Execute(cmd.Context(), blogcmd.ToggleThemeCommand{Current: args[0]})
			},
		},
		a.themeSetCmd(),
		&cobra.Command{
			Use:   "css [name]",
			Short: "Print the stylesheet for a theme, the configured default when omitted",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				msg := blogcmd.ThemeCSSCommand{}
				if len(args) == 1 {
					msg.Name = args[0]
				}
				return a.handlers.ThemeCSS.Execute(cmd.Context(), msg)
			},
		},
	)
	return cmd
}

func (a *app) themeSetCmd() *cobra.Command {
	var msg blogcmd.SelectThemeCommand

	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Print the theme state after switching to name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg.Name = args[0]
			return a.handlers.SelectTheme.Execute(cmd.Context(), msg)
		},
	}
	cmd.Flags().StringVar(&msg.Current, "current", "", "theme active before the switch")
	return cmd
}
