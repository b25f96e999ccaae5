package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-folio/internal/blog"
	blogcmd "github.com/goliatone/go-folio/internal/commands/blog"
	"github.com/goliatone/go-folio/internal/themes"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	metaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// printer renders command results. It implements blogcmd.Sink.
type printer struct {
	out    io.Writer
	format string
}

var _ blogcmd.Sink = (*printer)(nil)

func newPrinter(out io.Writer, format string) (*printer, error) {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "", formatText:
		return &printer{out: out, format: formatText}, nil
	case formatJSON, formatYAML:
		return &printer{out: out, format: f}, nil
	default:
		return nil, fmt.Errorf("unsupported output %q (expected text, json or yaml)", format)
	}
}

// Emit writes value. Stylesheets are always written as plain CSS.
func (p *printer) Emit(_ context.Context, kind string, value any) error {
	if kind == blogcmd.KindCSS {
		_, err := fmt.Fprint(p.out, value)
		return err
	}

	switch p.format {
	case formatJSON:
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case formatYAML:
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	}

	var b strings.Builder
	switch v := value.(type) {
	case []interfaces.PostMetadata:
		writePosts(&b, v)
	case blogcmd.PostView:
		writePost(&b, v)
	case []interfaces.TagCount:
		writeTags(&b, v)
	case []string:
		writeTagNames(&b, v)
	case *blog.CheckReport:
		writeReport(&b, v)
	case themes.State:
		writeTheme(&b, v)
	default:
		fmt.Fprintf(&b, "%v\n", v)
	}
	_, err := io.WriteString(p.out, b.String())
	return err
}

func writePosts(b *strings.Builder, posts []interfaces.PostMetadata) {
	if len(posts) == 0 {
		b.WriteString(metaStyle.Render("no posts") + "\n")
		return
	}
	for i, post := range posts {
		if i > 0 {
			b.WriteString("\n")
		}
		title := post.Title
		if post.Featured {
			title += " ★"
		}
		b.WriteString(titleStyle.Render(title) + "\n")
		b.WriteString(metaStyle.Render(postMeta(post)) + "\n")
		if tags := formatTags(post.Tags); tags != "" {
			b.WriteString(tagStyle.Render(tags) + "\n")
		}
	}
}

func writePost(b *strings.Builder, post blogcmd.PostView) {
	b.WriteString(titleStyle.Render(post.Title) + "\n")
	b.WriteString(metaStyle.Render(postMeta(post.PostMetadata)) + "\n")
	if tags := formatTags(post.Tags); tags != "" {
		b.WriteString(tagStyle.Render(tags) + "\n")
	}
	if post.Description != "" {
		b.WriteString("\n" + post.Description + "\n")
	}
	body := post.Content
	if post.ContentHTML != "" {
		body = post.ContentHTML
	}
	b.WriteString("\n" + strings.TrimRight(body, "\n") + "\n")
}

func writeTags(b *strings.Builder, counts []interfaces.TagCount) {
	if len(counts) == 0 {
		b.WriteString(metaStyle.Render("no tags") + "\n")
		return
	}
	for _, count := range counts {
		fmt.Fprintf(b, "%s %s\n", tagStyle.Render("#"+count.Tag), metaStyle.Render(fmt.Sprintf("(%d)", count.Count)))
	}
}

func writeTagNames(b *strings.Builder, tags []string) {
	if len(tags) == 0 {
		b.WriteString(metaStyle.Render("no tags") + "\n")
		return
	}
	for _, tag := range tags {
		b.WriteString(tagStyle.Render("#"+tag) + "\n")
	}
}

func writeReport(b *strings.Builder, report *blog.CheckReport) {
	for _, file := range report.Files {
		mark := okStyle.Render("ok  ")
		if !file.Valid {
			mark = errorStyle.Render("FAIL")
		}
		fmt.Fprintf(b, "%s %s\n", mark, file.Path)
		for _, msg := range file.Errors {
			b.WriteString("     " + errorStyle.Render("error: "+msg) + "\n")
		}
		for _, msg := range file.Warnings {
			b.WriteString("     " + warnStyle.Render("warning: "+msg) + "\n")
		}
	}
	fmt.Fprintf(b, "%d files, %d errors, %d warnings in %s\n", len(report.Files), report.Errors, report.Warnings, report.Dir)
}

func writeTheme(b *strings.Builder, state themes.State) {
	fmt.Fprintf(b, "%s %s\n", titleStyle.Render(string(state.Theme)), metaStyle.Render("("+state.Label+")"))
	for _, v := range state.Variables {
		fmt.Fprintf(b, "  %s: %s\n", v.Name, v.Value)
	}
}

func postMeta(post interfaces.PostMetadata) string {
	parts := []string{}
	for _, part := range []string{post.Date, post.Author, post.ReadTime, post.Slug} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " · ")
}

func formatTags(tags []string) string {
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = "#" + tag
	}
	return strings.Join(out, " ")
}
