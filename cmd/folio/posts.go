package main

import (
	"github.com/spf13/cobra"

	blogcmd "github.com/goliatone/go-folio/internal/commands/blog"
)

func (a *app) postsCmd() *cobra.Command {
	var (
		msg    blogcmd.ListPostsCommand
		recent int
	)

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List published posts, newest first",
		Example: `  folio posts
  folio posts --tag go
  folio posts --featured
  folio posts --recent 3 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("recent") {
				msg.Recent = &recent
			}
			return a.handlers.ListPosts.Execute(cmd.Context(), msg)
		},
	}
	cmd.Flags().StringVar(&msg.Tag, "tag", "", "only posts carrying this tag (case-insensitive)")
	cmd.Flags().BoolVar(&msg.Featured, "featured", false, "only featured posts")
	cmd.Flags().IntVar(&recent, "recent", 0, "only the N newest posts")
	cmd.Flags().IntVar(&msg.Limit, "limit", 0, "print at most N posts")
	return cmd
}

func (a *app) postCmd() *cobra.Command {
	var msg blogcmd.ShowPostCommand

	cmd := &cobra.Command{
		Use:   "post <slug>",
		Short: "Show a single published post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg.Slug = args[0]
			return a.handlers.ShowPost.Execute(cmd.Context(), msg)
		},
	}
	cmd.Flags().BoolVar(&msg.HTML, "html", false, "render the body to HTML")
	cmd.Flags().BoolVar(&msg.Safe, "safe", false, "drop raw HTML when rendering")
	return cmd
}

func (a *app) tagsCmd() *cobra.Command {
	var msg blogcmd.ListTagsCommand

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List tags with their post counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.handlers.ListTags.Execute(cmd.Context(), msg)
		},
	}
	cmd.Flags().BoolVar(&msg.NamesOnly, "names", false, "print tag names without counts")
	return cmd
}
