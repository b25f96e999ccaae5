package blog

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/goliatone/go-slug"
)

// FileReport collects the findings for one post file.
type FileReport struct {
	Slug          string   `json:"slug" yaml:"slug"`
	Path          string   `json:"path" yaml:"path"`
	Valid         bool     `json:"valid" yaml:"valid"`
	Published     bool     `json:"published" yaml:"published"`
	SuggestedSlug string   `json:"suggestedSlug,omitempty" yaml:"suggestedSlug,omitempty"`
	Errors        []string `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings      []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// CheckReport summarises a content directory check.
type CheckReport struct {
	Dir      string       `json:"dir" yaml:"dir"`
	Files    []FileReport `json:"files" yaml:"files"`
	Errors   int          `json:"errors" yaml:"errors"`
	Warnings int          `json:"warnings" yaml:"warnings"`
}

// OK reports whether no file had errors.
func (r *CheckReport) OK() bool {
	return r != nil && r.Errors == 0
}

// Check lints every post file: unreadable or unparsable files are errors;
// a missing title, an unparsable date, a slug that is not URL safe and an
// unpublished flag are warnings.
func Check(ctx context.Context, loader *Loader) (*CheckReport, error) {
	result, err := loader.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	files := make([]FileReport, 0, len(result.Issues)+len(result.Records))
	for _, issue := range result.Issues {
		files = append(files, FileReport{
			Slug:   issue.Slug,
			Path:   issue.Path,
			Errors: []string{issue.Err.Error()},
		})
	}
	for _, record := range result.Records {
		files = append(files, checkRecord(record))
	}
	// Both lists follow directory order; merge them back by path.
	slices.SortStableFunc(files, func(a, b FileReport) int {
		return strings.Compare(a.Path, b.Path)
	})

	report := &CheckReport{Dir: loader.Dir()}
	for _, file := range files {
		report.add(file)
	}
	return report, nil
}

func (r *CheckReport) add(file FileReport) {
	file.Valid = len(file.Errors) == 0
	r.Errors += len(file.Errors)
	r.Warnings += len(file.Warnings)
	r.Files = append(r.Files, file)
}

func checkRecord(record Record) FileReport {
	meta := record.Metadata
	file := FileReport{
		Slug:      meta.Slug,
		Path:      record.Path,
		Published: meta.Published,
	}

	if meta.Title == "" {
		file.Warnings = append(file.Warnings, "missing title")
	}
	if meta.Date == "" {
		file.Warnings = append(file.Warnings, "missing date; post sorts last")
	} else if _, ok := ParseDate(meta.Date); !ok {
		file.Warnings = append(file.Warnings, fmt.Sprintf("unrecognised date %q; post sorts last", meta.Date))
	}
	if !slug.IsValid(meta.Slug) {
		msg := "slug is not URL safe"
		if normalized, err := slug.Normalize(meta.Slug); err == nil && normalized != "" && normalized != meta.Slug {
			file.SuggestedSlug = normalized
			msg = fmt.Sprintf("slug is not URL safe; consider %q", normalized)
		}
		file.Warnings = append(file.Warnings, msg)
	}
	if !meta.Published {
		file.Warnings = append(file.Warnings, "unpublished; hidden from every listing")
	}
	return file
}
