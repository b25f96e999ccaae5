package blog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-folio/internal/markdown"
	"github.com/goliatone/go-folio/pkg/interfaces"
)

// LoaderConfig describes where posts live and how they are decoded.
type LoaderConfig struct {
	// Dir is the content directory on disk. It is created when missing.
	Dir string
	// Extension selects post files, ".md" when empty.
	Extension string
	Defaults  Defaults
	// FS replaces the on-disk directory, mainly in tests. Dir is then only
	// used in log fields and no directory is created.
	FS fs.FS
}

// Record is a decoded post plus its markdown body and source file name.
type Record struct {
	Metadata interfaces.PostMetadata
	Body     string
	Path     string
}

// LoadIssue describes a file skipped during a directory load.
type LoadIssue struct {
	Path string
	Slug string
	Err  error
}

func (i LoadIssue) Error() string {
	return fmt.Sprintf("%s: %v", i.Path, i.Err)
}

func (i LoadIssue) Unwrap() error { return i.Err }

// LoadResult holds the posts read from the content directory in listing
// order, along with the files that were skipped.
type LoadResult struct {
	Records []Record
	Issues  []LoadIssue
}

// Loader reads post files from the content directory. It keeps no state
// between calls.
type Loader struct {
	dir      string
	ext      string
	defaults Defaults
	fsys     fs.FS
	onDisk   bool
	splitter interfaces.FrontMatterSplitter
}

// NewLoader builds a Loader. A nil splitter uses markdown.Splitter.
func NewLoader(cfg LoaderConfig, splitter interfaces.FrontMatterSplitter) *Loader {
	ext := cfg.Extension
	if ext == "" {
		ext = ".md"
	}
	if splitter == nil {
		splitter = markdown.Splitter{}
	}

	l := &Loader{
		dir:      filepath.Clean(cfg.Dir),
		ext:      ext,
		defaults: cfg.Defaults.normalized(),
		fsys:     cfg.FS,
		splitter: splitter,
	}
	if l.fsys == nil {
		l.fsys = os.DirFS(l.dir)
		l.onDisk = true
	}
	return l
}

// Dir returns the configured content directory.
func (l *Loader) Dir() string { return l.dir }

// Extension returns the post file suffix.
func (l *Loader) Extension() string { return l.ext }

// LoadAll reads every post file in directory listing order. Files that cannot
// be read or parsed are reported in Issues and do not stop the load. A
// missing directory is created and yields an empty result.
func (l *Loader) LoadAll(ctx context.Context) (*LoadResult, error) {
	names, err := l.postFiles(ctx)
	if err != nil {
		return nil, err
	}

	result := &LoadResult{Records: make([]Record, 0, len(names))}
	for _, name := range names {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		record, err := l.read(name)
		if err != nil {
			result.Issues = append(result.Issues, LoadIssue{
				Path: name,
				Slug: strings.TrimSuffix(name, l.ext),
				Err:  err,
			})
			continue
		}
		result.Records = append(result.Records, *record)
	}
	return result, nil
}

// LoadPost reads the file backing slug. It returns an error wrapping
// fs.ErrNotExist when slug does not name a single post file.
func (l *Loader) LoadPost(ctx context.Context, slug string) (*Record, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if !validSlug(slug) {
		return nil, fmt.Errorf("blog loader: invalid slug %q: %w", slug, fs.ErrNotExist)
	}
	return l.read(slug + l.ext)
}

// postFiles lists post file names, creating the content directory first when
// it does not exist.
func (l *Loader) postFiles(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if l.onDisk {
		created, err := l.ensureDir()
		if err != nil || created {
			return nil, err
		}
	}

	entries, err := fs.ReadDir(l.fsys, ".")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("blog loader list %s: %w", l.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), l.ext) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

func (l *Loader) ensureDir() (bool, error) {
	info, err := os.Stat(l.dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return false, fmt.Errorf("blog loader: %s is not a directory", l.dir)
		}
		return false, nil
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(l.dir, 0o755); err != nil {
			return false, fmt.Errorf("blog loader create %s: %w", l.dir, err)
		}
		return true, nil
	default:
		return false, fmt.Errorf("blog loader stat %s: %w", l.dir, err)
	}
}

func (l *Loader) read(name string) (*Record, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("blog loader read %s: %w", name, err)
	}

	meta, body, err := l.splitter.Split(data)
	if err != nil {
		return nil, fmt.Errorf("blog loader parse %s: %w", name, err)
	}

	slug := strings.TrimSuffix(name, l.ext)
	return &Record{
		Metadata: DecodeMetadata(slug, meta, body, l.defaults),
		Body:     string(body),
		Path:     name,
	}, nil
}

func validSlug(slug string) bool {
	if slug == "" || slug == "." || slug == ".." {
		return false
	}
	if strings.ContainsAny(slug, `/\`) {
		return false
	}
	return fs.ValidPath(slug)
}
