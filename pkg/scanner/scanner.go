package scanner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/sync/errgroup"
)

var ErrInvalidConcurrency = errors.New("scanner: concurrency must be at least 1")

// defaultPatterns match user-visible text in markup: element bodies and
// the attributes browsers render to users.
var defaultPatterns = []*regexp.Regexp{
	regexp.MustCompile(`<h[1-6][^>]*>([^<>{}]+)</h[1-6]>`),
	regexp.MustCompile(`<p[^>]*>([^<>{}]+)</p>`),
	regexp.MustCompile(`<button[^>]*>([^<>{}]+)</button>`),
	regexp.MustCompile(`<span[^>]*>([^<>{}]+)</span>`),
	regexp.MustCompile(`<label[^>]*>([^<>{}]+)</label>`),
	regexp.MustCompile(`placeholder="([^"{}]+)"`),
	regexp.MustCompile(`title="([^"{}]+)"`),
	regexp.MustCompile(`alt="([^"{}]+)"`),
}

// defaultHookMarkers identify a file as already wired into the translation
// catalog.
var defaultHookMarkers = []string{"useTranslations", "getTranslations"}

// defaultExtensions are the file types scanned by default.
var defaultExtensions = []string{".tsx", ".jsx", ".html"}

// Finding is one hardcoded text occurrence.
type Finding struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Text    string `json:"text"`
	Context string `json:"context"`
}

// FileResult summarizes one scanned file.
type FileResult struct {
	File             string    `json:"file"`
	UsesTranslations bool      `json:"uses_translations"`
	Findings         []Finding `json:"findings,omitempty"`
}

// Result is the outcome of one scan.
type Result struct {
	// Files needing attention: hardcoded text found, or no translation
	// hook usage at all. Sorted by file path.
	Files []FileResult `json:"files"`

	TotalFiles    int `json:"total_files"`
	CleanFiles    int `json:"clean_files"`
	TotalFindings int `json:"total_findings"`
}

// Scanner scans a source tree for hardcoded user-facing text.
// It is immutable after creation and safe for concurrent use.
type Scanner struct {
	patterns    []*regexp.Regexp
	hookMarkers []string
	extensions  map[string]bool
	concurrency int
}

// Option configures the Scanner during construction.
type Option func(*Scanner) error

// WithPatterns replaces the default detection patterns. Each pattern's
// first capture group (or the whole match when there is none) is reported
// as the hardcoded text.
func WithPatterns(patterns ...*regexp.Regexp) Option {
	return func(s *Scanner) error {
		if len(patterns) > 0 {
			s.patterns = patterns
		}
		return nil
	}
}

// WithHookMarkers replaces the substrings that mark a file as using the
// translation catalog.
func WithHookMarkers(markers ...string) Option {
	return func(s *Scanner) error {
		if len(markers) > 0 {
			s.hookMarkers = markers
		}
		return nil
	}
}

// WithExtensions replaces the scanned file extensions (leading dot
// included).
func WithExtensions(exts ...string) Option {
	return func(s *Scanner) error {
		if len(exts) == 0 {
			return nil
		}
		s.extensions = make(map[string]bool, len(exts))
		for _, ext := range exts {
			s.extensions[strings.ToLower(ext)] = true
		}
		return nil
	}
}

// WithConcurrency caps the number of files scanned in parallel.
// Default: 8.
func WithConcurrency(n int) Option {
	return func(s *Scanner) error {
		if n < 1 {
			return ErrInvalidConcurrency
		}
		s.concurrency = n
		return nil
	}
}

// New creates a Scanner with markup-oriented defaults.
func New(opts ...Option) (*Scanner, error) {
	s := &Scanner{
		patterns:    defaultPatterns,
		hookMarkers: defaultHookMarkers,
		concurrency: 8,
	}
	s.extensions = make(map[string]bool, len(defaultExtensions))
	for _, ext := range defaultExtensions {
		s.extensions[ext] = true
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Scan walks the filesystem and scans every matching file.
func (s *Scanner) Scan(ctx context.Context, fsys fs.FS) (*Result, error) {
	var paths []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if s.extensions[strings.ToLower(path.Ext(p))] {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanner: walk: %w", err)
	}

	var (
		mu      sync.Mutex
		flagged []FileResult
		total   int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, p := range paths {
		p := p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := s.scanFile(fsys, p)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			total++
			if len(res.Findings) > 0 || !res.UsesTranslations {
				flagged = append(flagged, res)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(flagged, func(i, j int) bool { return flagged[i].File < flagged[j].File })

	findings := 0
	for _, f := range flagged {
		findings += len(f.Findings)
	}

	return &Result{
		Files:         flagged,
		TotalFiles:    total,
		CleanFiles:    total - len(flagged),
		TotalFindings: findings,
	}, nil
}

func (s *Scanner) scanFile(fsys fs.FS, p string) (FileResult, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return FileResult{}, fmt.Errorf("scanner: open %q: %w", p, err)
	}
	defer f.Close()

	res := FileResult{File: p}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()

		for _, marker := range s.hookMarkers {
			if strings.Contains(line, marker) {
				res.UsesTranslations = true
				break
			}
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "import") {
			continue
		}

		for _, pattern := range s.patterns {
			for _, match := range pattern.FindAllStringSubmatch(line, -1) {
				text := match[0]
				if len(match) > 1 {
					text = match[1]
				}
				text = strings.TrimSpace(text)
				if !looksTranslatable(text) {
					continue
				}
				res.Findings = append(res.Findings, Finding{
					File:    p,
					Line:    lineNo,
					Text:    text,
					Context: truncate(trimmed, 100),
				})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return FileResult{}, fmt.Errorf("scanner: read %q: %w", p, err)
	}

	return res, nil
}

// looksTranslatable filters out matches that are plainly not prose:
// too short, purely numeric, or without a single letter.
func looksTranslatable(text string) bool {
	if len(text) <= 2 {
		return false
	}
	hasLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	return hasLetter
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
