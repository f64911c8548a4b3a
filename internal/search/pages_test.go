package search

import (
	"errors"
	"testing"
)

func TestSplitPages_TwoPages(t *testing.T) {
	pages, err := SplitPages("[PAGE 1]\nHello\n\n[PAGE 2]\nWorld\n\n")
	if err != nil {
		t.Fatalf("SplitPages error: %v", err)
	}
	want := []Page{{Number: 1, Text: "Hello\n\n"}, {Number: 2, Text: "World\n\n"}}
	if len(pages) != len(want) {
		t.Fatalf("got %d pages, want %d: %#v", len(pages), len(want), pages)
	}
	for i := range want {
		if pages[i] != want[i] {
			t.Fatalf("page %d = %#v; want %#v", i, pages[i], want[i])
		}
	}
}

func TestSplitPages_NumberingFollowsScanOrderNotLabel(t *testing.T) {
	pages, err := SplitPages("[PAGE 7]\nseven\n[PAGE iv]\nfour\n")
	if err != nil {
		t.Fatalf("SplitPages error: %v", err)
	}
	if len(pages) != 2 || pages[0].Number != 1 || pages[1].Number != 2 {
		t.Fatalf("unexpected numbering: %#v", pages)
	}
	if pages[1].Text != "four\n" {
		t.Fatalf("page 2 text = %q", pages[1].Text)
	}
}

func TestSplitPages_PreambleDropped(t *testing.T) {
	pages, err := SplitPages("cover sheet\n[PAGE 1]\nbody")
	if err != nil {
		t.Fatalf("SplitPages error: %v", err)
	}
	if len(pages) != 1 || pages[0].Text != "body" {
		t.Fatalf("unexpected pages: %#v", pages)
	}
}

func TestSplitPages_MalformedHeaderYieldsEmptyPage(t *testing.T) {
	// Page 2 has no "]\n" terminator; it keeps its slot with empty text.
	pages, err := SplitPages("[PAGE 1]\na\n[PAGE 2 broken[PAGE 3]\nc")
	if err != nil {
		t.Fatalf("SplitPages error: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %#v", pages)
	}
	if pages[1].Text != "" || pages[2].Number != 3 || pages[2].Text != "c" {
		t.Fatalf("unexpected pages: %#v", pages)
	}
}

func TestSplitPages_TextAfterFirstHeaderEnd(t *testing.T) {
	// Only the first "]\n" closes the header; later ones belong to the text.
	pages, err := SplitPages("[PAGE 1]\nlist[0]\nitem")
	if err != nil {
		t.Fatalf("SplitPages error: %v", err)
	}
	if pages[0].Text != "list[0]\nitem" {
		t.Fatalf("page text = %q", pages[0].Text)
	}
}

func TestSplitPages_NoMarkerAndEmpty(t *testing.T) {
	pages, err := SplitPages("plain text without markers")
	if err != nil {
		t.Fatalf("SplitPages error: %v", err)
	}
	if len(pages) != 0 {
		t.Fatalf("expected no pages, got %#v", pages)
	}

	if _, err := SplitPages(""); !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
}
