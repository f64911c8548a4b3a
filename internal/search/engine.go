// Package search implements the paginated text search engine: it splits an
// extracted document into pages, scans each page for a query with exact or
// fuzzy (edit-distance) matching, cuts bounded context windows around every
// hit, and returns the hits ranked by score.
//
// The engine is a pure computation:
//
//   - No I/O and no logging (callers decide what to record)
//   - No shared state; an Engine only carries its immutable ceilings
//   - Offsets are rune offsets, so multi-byte text is never split
//   - Results are capped by MaxResults while scanning, in page order,
//     and only the collected hits are ranked
//
// Scanning stops as soon as MaxResults hits are collected. A strong hit on a
// later page can therefore lose its slot to weaker hits found earlier; this is
// the price of not scanning every page of large documents.
package search

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Options are the per-request search toggles. All fields are independent.
type Options struct {
	CaseSensitive bool `json:"caseSensitive" yaml:"caseSensitive"`
	WholeWord     bool `json:"wholeWord" yaml:"wholeWord"`
	FuzzyMatch    bool `json:"fuzzyMatch" yaml:"fuzzyMatch"`
	ContextLength int  `json:"contextLength" yaml:"contextLength"`
	MaxResults    int  `json:"maxResults" yaml:"maxResults"`
}

// DefaultOptions returns case-insensitive fuzzy matching with 100 runes of
// context and at most 50 results.
func DefaultOptions() Options {
	return Options{
		CaseSensitive: false,
		WholeWord:     false,
		FuzzyMatch:    true,
		ContextLength: 100,
		MaxResults:    50,
	}
}

// Document is the text the engine searches and the name echoed back in the
// result metadata.
type Document struct {
	Name string
	Text string
}

// Result is one ranked hit.
type Result struct {
	PageNumber int      `json:"pageNumber" yaml:"pageNumber"`
	Text       Snippet  `json:"text" yaml:"text"`
	Position   Position `json:"position" yaml:"position"`
	Score      float64  `json:"score" yaml:"score"`
}

// Metadata describes a search run.
type Metadata struct {
	DocumentName  string  `json:"documentName" yaml:"documentName"`
	TotalResults  int     `json:"totalResults" yaml:"totalResults"`
	SearchOptions Options `json:"searchOptions" yaml:"searchOptions"`
}

// Stats are counters about a run that are not part of the response body.
type Stats struct {
	Pages        int
	PagesScanned int
	Truncated    bool
}

// Envelope is the complete result of a search.
type Envelope struct {
	Results  []Result `json:"results" yaml:"results"`
	Metadata Metadata `json:"metadata" yaml:"metadata"`
	Stats    Stats    `json:"-" yaml:"-"`
}

// ----------------------------------------------------------------------------
// Engine options

type Option func(*config)

type config struct {
	maxQueryRunes int
	maxPageRunes  int
	maxResultsCap int
}

func defaultConfig() config {
	return config{
		maxQueryRunes: 256,
		maxPageRunes:  200_000,
		maxResultsCap: 1000,
	}
}

// WithMaxQueryRunes bounds the query length. Zero disables the check.
func WithMaxQueryRunes(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.maxQueryRunes = n
		}
	}
}

// WithMaxPageRunes bounds the length of any single page. Zero disables the check.
func WithMaxPageRunes(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.maxPageRunes = n
		}
	}
}

// WithMaxResultsCap clamps the MaxResults a caller may ask for. Zero disables the clamp.
func WithMaxResultsCap(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.maxResultsCap = n
		}
	}
}

// ----------------------------------------------------------------------------
// Engine

// Engine runs searches. It is immutable after construction and safe for
// concurrent use.
type Engine struct {
	cfg config
}

// NewEngine builds an Engine with the given ceilings.
func NewEngine(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Engine{cfg: cfg}
}

// Effective returns opts as the engine will apply them: negative context
// and result counts become zero and MaxResults is clamped to the engine cap.
func (e *Engine) Effective(opts Options) Options {
	opts.ContextLength = max(opts.ContextLength, 0)
	opts.MaxResults = max(opts.MaxResults, 0)
	if e.cfg.maxResultsCap > 0 && opts.MaxResults > e.cfg.maxResultsCap {
		opts.MaxResults = e.cfg.maxResultsCap
	}
	return opts
}

// Search finds query in doc and returns the ranked hits.
//
// Errors are *StageError values wrapping ErrEmptyQuery, ErrQueryTooLong,
// ErrEmptyText or ErrPageTooLong. The query is used verbatim; only a
// blank query is rejected.
func (e *Engine) Search(doc Document, query string, opts Options) (*Envelope, error) {
	// Validating
	if strings.TrimSpace(query) == "" {
		return nil, &StageError{Stage: StageValidating, Err: ErrEmptyQuery}
	}
	if e.cfg.maxQueryRunes > 0 && utf8.RuneCountInString(query) > e.cfg.maxQueryRunes {
		return nil, &StageError{Stage: StageValidating, Err: ErrQueryTooLong}
	}
	opts = e.Effective(opts)

	// Splitting
	pages, err := SplitPages(doc.Text)
	if err != nil {
		return nil, &StageError{Stage: StageSplitting, Err: err}
	}
	if e.cfg.maxPageRunes > 0 {
		for _, p := range pages {
			if utf8.RuneCountInString(p.Text) > e.cfg.maxPageRunes {
				return nil, &StageError{Stage: StageSplitting, Page: p.Number, Err: ErrPageTooLong}
			}
		}
	}

	q := Normalize([]rune(query), opts.CaseSensitive)
	results := make([]Result, 0, min(opts.MaxResults, 64))
	stats := Stats{Pages: len(pages)}

	// ScanningPage(k), page order, stop once the budget is spent.
	for _, p := range pages {
		if len(results) >= opts.MaxResults {
			stats.Truncated = true
			break
		}
		if p.Text == "" {
			continue
		}
		stats.PagesScanned++
		results = e.scanPage(results, p, q, opts, &stats)
	}

	// Ranking: stable, so discovery order breaks ties.
	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})

	return &Envelope{
		Results: results,
		Metadata: Metadata{
			DocumentName:  doc.Name,
			TotalResults:  len(results),
			SearchOptions: opts,
		},
		Stats: stats,
	}, nil
}

// scanPage appends the accepted hits of one page to results, never letting
// results grow past opts.MaxResults.
func (e *Engine) scanPage(results []Result, p Page, q []rune, opts Options, stats *Stats) []Result {
	original := []rune(p.Text)
	normalized := Normalize(original, opts.CaseSensitive)

	for _, c := range FindMatches(normalized, q, opts.FuzzyMatch) {
		if opts.WholeWord && !IsWholeWord(original, c.Offset, c.Length) {
			continue
		}
		if len(results) >= opts.MaxResults {
			stats.Truncated = true
			break
		}
		snippet, pos := ExtractContext(original, c.Offset, c.Length, opts.ContextLength)
		results = append(results, Result{
			PageNumber: p.Number,
			Text:       snippet,
			Position:   pos,
			Score:      c.Score,
		})
	}
	return results
}
