package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tbourn/go-docsearch-backend/internal/search"
)

// Output formats accepted by --output.
const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// noText mirrors the API body for documents without extracted text.
type noText struct {
	Error   string          `json:"error" yaml:"error"`
	Results []search.Result `json:"results" yaml:"results"`
}

type searchFlags struct {
	file          string
	name          string
	query         string
	caseSensitive bool
	wholeWord     bool
	fuzzy         bool
	contextLength int
	maxResults    int
	output        string
}

func newSearchCmd(a *app) *cobra.Command {
	f := searchFlags{}
	defaults := search.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search a local page-marked text file without a database.",
		Example: `  docsearch search --file report.txt --query revenue
  docsearch search --file report.txt --query "net income" --fuzzy=false --whole-word --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd.OutOrStdout(), a.engine(), f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "path to the extracted text (\"[PAGE n]\" blocks)")
	fl.StringVarP(&f.query, "query", "q", "", "text to look for")
	fl.StringVar(&f.name, "name", "", "document name for the metadata (default: file name)")
	fl.BoolVar(&f.caseSensitive, "case-sensitive", defaults.CaseSensitive, "match letter case")
	fl.BoolVar(&f.wholeWord, "whole-word", defaults.WholeWord, "only keep hits bounded by non-word characters")
	fl.BoolVar(&f.fuzzy, "fuzzy", defaults.FuzzyMatch, "accept near matches ranked by edit distance")
	fl.IntVar(&f.contextLength, "context", defaults.ContextLength, "runes of context on each side of a hit")
	fl.IntVar(&f.maxResults, "max-results", defaults.MaxResults, "stop scanning after this many hits")
	fl.StringVarP(&f.output, "output", "o", outputJSON, "output format: json|yaml")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}

func runSearch(w io.Writer, engine *search.Engine, f searchFlags) error {
	if err := checkOutput(f.output); err != nil {
		return err
	}
	text, err := search.PrepareTextFile(f.file)
	if err != nil {
		return err
	}
	name := f.name
	if name == "" {
		name = filepath.Base(f.file)
	}

	if text == "" {
		return write(w, f.output, noText{Error: "No text content available for this document", Results: []search.Result{}})
	}

	env, err := engine.Search(search.Document{Name: name, Text: text}, f.query, search.Options{
		CaseSensitive: f.caseSensitive,
		WholeWord:     f.wholeWord,
		FuzzyMatch:    f.fuzzy,
		ContextLength: f.contextLength,
		MaxResults:    f.maxResults,
	})
	if err != nil {
		if stage := search.StageOf(err); stage != "" && !errors.Is(err, search.ErrEmptyQuery) {
			return fmt.Errorf("search failed while %s: %w", stage, err)
		}
		return err
	}
	return write(w, f.output, env)
}

func checkOutput(format string) error {
	if format != outputJSON && format != outputYAML {
		return fmt.Errorf("unsupported output %q (want json or yaml)", format)
	}
	return nil
}

func write(w io.Writer, format string, v any) error {
	if format == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
