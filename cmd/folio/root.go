package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	folio "github.com/goliatone/go-folio"
	blogcmd "github.com/goliatone/go-folio/internal/commands/blog"
	"github.com/goliatone/go-folio/internal/di"
	"github.com/goliatone/go-folio/internal/logging/console"
)

type rootFlags struct {
	configFile string
	contentDir string
	output     string
	logLevel   string
}

// app holds the state shared by every subcommand once setup has run.
type app struct {
	out    io.Writer
	errOut io.Writer
	flags  rootFlags

	cfg      folio.Config
	module   *folio.Module
	printer  *printer
	handlers *blogcmd.HandlerSet
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "folio",
		Short: "Folio reads a directory of markdown blog posts",
		Long: `Folio loads markdown posts with YAML front-matter from a content directory
and answers listing, lookup and tag queries over them. Every command re-reads
the directory, so edits show up immediately.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configFile, "config", "", "config file (default ./folio.yaml)")
	pf.StringVar(&a.flags.contentDir, "content-dir", "", "directory holding the posts (default posts)")
	pf.StringVarP(&a.flags.output, "output", "o", formatText, "output format: text, json or yaml")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: trace, debug, info, warn or error")

	root.AddCommand(
		a.postsCmd(),
		a.postCmd(),
		a.tagsCmd(),
		a.themeCmd(),
		a.checkCmd(),
		a.serveCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	printer, err := newPrinter(a.out, a.flags.output)
	if err != nil {
		return err
	}
	a.printer = printer

	cfg, err := loadConfig(cmd, a.flags.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	opts := []di.Option{}
	if cfg.Features.Logger && strings.EqualFold(strings.TrimSpace(cfg.Logging.Provider), "console") {
		level, _ := console.ParseLevel(cfg.Logging.Level)
		opts = append(opts, di.WithLoggerProvider(console.NewProvider(console.Options{
			Writer:   a.errOut,
			MinLevel: &level,
		})))
	}

	module, err := folio.New(cfg, opts...)
	if err != nil {
		return err
	}
	a.module = module

	handlers, err := blogcmd.RegisterBlogCommands(nil, blogcmd.Dependencies{
		Blog:     module.Blog(),
		Loader:   module.Container().Loader(),
		Markdown: module.Markdown(),
		Theme:    module.Theme(),
		Sink:     printer,
	}, module.LoggerProvider())
	if err != nil {
		return err
	}
	a.handlers = handlers
	return nil
}
