package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	blogcmd "github.com/goliatone/go-folio/internal/commands/blog"
	"github.com/goliatone/go-folio/internal/logging"
	"github.com/goliatone/go-folio/internal/watch"
)

func (a *app) checkCmd() *cobra.Command {
	var watchDir bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Lint every post file in the content directory",
		Long: `Check parses every post and reports files that would be skipped, along with
warnings for missing titles, unrecognised dates, unsafe slugs and drafts.
With --watch the check re-runs whenever a post changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := a.handlers.CheckContent.Execute(cmd.Context(), blogcmd.CheckContentCommand{})
			if !watchDir {
				return err
			}
			if err != nil && !errors.Is(err, blogcmd.ErrContentInvalid) {
				return err
			}
			return a.watchContent(cmd.Context())
		},
	}
	cmd.Flags().BoolVarP(&watchDir, "watch", "w", false, "re-run the check when posts change")
	return cmd
}

func (a *app) watchContent(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(a.module.Container().Loader().Dir(),
		watch.WithExtension(a.cfg.Blog.Extension),
		watch.WithLogger(logging.WatchLogger(a.module.LoggerProvider())),
	)
	if err != nil {
		return err
	}

	logger := logging.WatchLogger(a.module.LoggerProvider())
	return w.Run(ctx, func(ctx context.Context) {
		err := a.handlers.CheckContent.Execute(ctx, blogcmd.CheckContentCommand{})
		if err != nil && !errors.Is(err, blogcmd.ErrContentInvalid) {
			logger.Error("watch.check.failed", "error", err)
		}
	})
}
