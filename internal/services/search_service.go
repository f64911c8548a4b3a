// Package services – SearchService
//
// This file implements the SearchService, which runs a text search over one
// stored document. It validates the request, fetches the document exactly
// once, hands its extracted text to the search engine and records the outcome
// (metrics, tracing and an analytics event).
//
// Observability: Search is OpenTelemetry-instrumented; the span carries the
// document id, the query length and the effective options, never the query
// text itself.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-docsearch-backend/internal/analytics"
	"github.com/tbourn/go-docsearch-backend/internal/domain"
	"github.com/tbourn/go-docsearch-backend/internal/repo"
	"github.com/tbourn/go-docsearch-backend/internal/search"
)

// DocumentStore is the read side the search path depends on.
type DocumentStore interface {
	// GetDocument returns the document owned by userID or ErrDocumentNotFound.
	GetDocument(ctx context.Context, id, userID string) (*domain.Document, error)
}

// gormDocumentStore serves documents from the repository.
type gormDocumentStore struct {
	db *gorm.DB
}

// NewDocumentStore returns a DocumentStore backed by db.
func NewDocumentStore(db *gorm.DB) DocumentStore {
	return gormDocumentStore{db: db}
}

func (s gormDocumentStore) GetDocument(ctx context.Context, id, userID string) (*domain.Document, error) {
	d, err := repo.GetDocument(ctx, s.db, id, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrDocumentNotFound
	}
	return d, err
}

// SearchRequest is one search over one document.
type SearchRequest struct {
	DocumentID string
	Query      string
	Options    search.Options
	// RequestID is echoed into the analytics event for correlation.
	RequestID string
}

// Engine is the search computation a SearchService runs; *search.Engine is
// the production implementation.
type Engine interface {
	Effective(opts search.Options) search.Options
	Search(doc search.Document, query string, opts search.Options) (*search.Envelope, error)
}

// SearchService runs searches against stored documents.
type SearchService struct {
	Store   DocumentStore
	Engine  Engine
	Tracker analytics.Tracker

	now func() time.Time
}

// NewSearchService wires a SearchService. A nil engine gets the default
// ceilings and a nil tracker discards events.
func NewSearchService(store DocumentStore, engine Engine, tracker analytics.Tracker) *SearchService {
	if engine == nil {
		engine = search.NewEngine()
	}
	if tracker == nil {
		tracker = analytics.Noop{}
	}
	return &SearchService{Store: store, Engine: engine, Tracker: tracker, now: time.Now}
}

// Search validates req, loads the document and runs the engine over its text.
//
// Errors:
//   - ErrEmptyQuery or ErrDocumentIDRequired for missing inputs, checked in
//     that order (no fetch).
//   - ErrDocumentNotFound when the document is absent or not owned by userID.
//   - ErrNoText when the document carries no extracted text.
//   - ErrQueryTooLong or ErrPageTooLong when a ceiling is exceeded.
//   - ErrSearchFailed for an unexpected engine fault or a missing engine.
//   - ctx.Err() when the context is done before the document is fetched.
func (s *SearchService) Search(ctx context.Context, userID string, req SearchRequest) (env *search.Envelope, err error) {
	opts, optsErr := s.effective(req.Options)

	tr := otel.Tracer("services/SearchService")
	ctx, span := tr.Start(ctx, "Search",
		trace.WithAttributes(
			attribute.String("document.id", req.DocumentID),
			attribute.String("user.id", userID),
			attribute.Int("search.query_runes", utf8.RuneCountInString(req.Query)),
			attribute.Bool("search.fuzzy", opts.FuzzyMatch),
			attribute.Bool("search.case_sensitive", opts.CaseSensitive),
			attribute.Bool("search.whole_word", opts.WholeWord),
			attribute.Int("search.max_results", opts.MaxResults),
		),
	)
	defer span.End()

	start := s.clock()
	defer func() {
		s.record(ctx, span, req, opts, env, err, s.clock().Sub(start))
	}()

	if optsErr != nil {
		return nil, optsErr
	}
	if strings.TrimSpace(req.Query) == "" {
		return nil, ErrEmptyQuery
	}
	if strings.TrimSpace(req.DocumentID) == "" {
		return nil, ErrDocumentIDRequired
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := s.Store.GetDocument(ctx, req.DocumentID, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	if !doc.HasText() {
		return nil, ErrNoText
	}

	return s.run(req.DocumentID, search.Document{Name: doc.Name, Text: doc.Text()}, req.Query, req.Options)
}

// effective resolves the options the engine will apply, under the same
// panic guard as run.
func (s *SearchService) effective(in search.Options) (opts search.Options, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("search engine panic")
			opts, err = in, fmt.Errorf("%w: %v", ErrSearchFailed, r)
		}
	}()
	if s.Engine == nil {
		return in, fmt.Errorf("%w: no engine configured", ErrSearchFailed)
	}
	return s.Engine.Effective(in), nil
}

// run executes the engine and turns a panic into ErrSearchFailed so one bad
// document cannot take the request goroutine down with it.
func (s *SearchService) run(docID string, doc search.Document, query string, opts search.Options) (env *search.Envelope, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("document_id", docID).
				Interface("panic", r).
				Msg("search engine panic")
			env, err = nil, fmt.Errorf("%w: %v", ErrSearchFailed, r)
		}
	}()
	env, err = s.Engine.Search(doc, query, opts)
	if errors.Is(err, search.ErrEmptyText) {
		return nil, ErrNoText
	}
	return env, err
}

func (s *SearchService) record(ctx context.Context, span trace.Span, req SearchRequest, opts search.Options, env *search.Envelope, err error, elapsed time.Duration) {
	outcome := SearchOutcome(err)

	searchDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	searchesTotal.WithLabelValues(outcome).Inc()

	ev := analytics.SearchEvent{
		Type:       analytics.EventSearch,
		Outcome:    outcome,
		DocumentID: req.DocumentID,
		QueryRunes: utf8.RuneCountInString(req.Query),
		Options:    opts,
		LatencyMs:  elapsed.Milliseconds(),
		Timestamp:  s.clock().UTC(),
		RequestID:  req.RequestID,
	}
	if env != nil {
		n := len(env.Results)
		searchResults.Observe(float64(n))
		ev.Results = n
		ev.Truncated = env.Stats.Truncated
		ev.PagesScanned = env.Stats.PagesScanned
		if n == 0 {
			ev.Type = analytics.EventZeroResult
		}
		span.SetAttributes(
			attribute.Int("search.results", n),
			attribute.Int("search.pages", env.Stats.Pages),
			attribute.Bool("search.truncated", env.Stats.Truncated),
		)
	}
	if outcome == analytics.OutcomeError {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	if s.Tracker != nil {
		s.Tracker.TrackSearch(ctx, ev)
	}
}

func (s *SearchService) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// SearchOutcome classifies a Search error into the label used by metrics and
// analytics events.
func SearchOutcome(err error) string {
	switch {
	case err == nil:
		return analytics.OutcomeOK
	case errors.Is(err, ErrNoText):
		return analytics.OutcomeNoText
	case errors.Is(err, ErrDocumentNotFound):
		return analytics.OutcomeNotFound
	case errors.Is(err, ErrQueryTooLong), errors.Is(err, ErrPageTooLong):
		return analytics.OutcomeTooLarge
	case errors.Is(err, ErrDocumentIDRequired), errors.Is(err, ErrEmptyQuery):
		return analytics.OutcomeInvalid
	default:
		return analytics.OutcomeError
	}
}
