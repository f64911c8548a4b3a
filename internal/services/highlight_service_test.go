package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tbourn/go-docsearch-backend/internal/domain"
)

func validInput() HighlightInput {
	return HighlightInput{PageNumber: 1, Text: " quick ", PositionStart: 4, PositionEnd: 9}
}

func TestHighlightInput_Validate(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*HighlightInput)
		want error
	}{
		{"ok", func(*HighlightInput) {}, nil},
		{"empty text", func(in *HighlightInput) { in.Text = "  " }, ErrEmptyHighlightText},
		{"page zero", func(in *HighlightInput) { in.PageNumber = 0 }, ErrInvalidPage},
		{"negative start", func(in *HighlightInput) { in.PositionStart = -1 }, ErrInvalidPosition},
		{"end before start", func(in *HighlightInput) { in.PositionEnd = 3 }, ErrInvalidPosition},
		{"empty span", func(in *HighlightInput) { in.PositionEnd = 4 }, nil},
		{"short color", func(in *HighlightInput) { in.Color = "#0f0" }, nil},
		{"bad color", func(in *HighlightInput) { in.Color = "yellow" }, ErrInvalidColor},
		{"bad hex", func(in *HighlightInput) { in.Color = "#ggg000" }, ErrInvalidColor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mod(&in)
			if err := in.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v; want %v", err, tc.want)
			}
		})
	}
}

func TestHighlight_Create_Defaults(t *testing.T) {
	db := newTestDB(t)
	d := mustCreateDoc(t, db, "u1", "fox.pdf", strp(foxText))

	h, replayed, err := NewHighlightService(db).Create(context.Background(), "u1", d.ID, "", validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if replayed {
		t.Fatal("first create must not be a replay")
	}
	if h.Text != "quick" || h.Color != domain.DefaultHighlightColor || h.DocumentID != d.ID {
		t.Fatalf("highlight = %+v", h)
	}
}

func TestHighlight_Create_UnknownOrForeignDocument(t *testing.T) {
	db := newTestDB(t)
	d := mustCreateDoc(t, db, "u1", "fox.pdf", nil)
	svc := NewHighlightService(db)

	if _, _, err := svc.Create(context.Background(), "u1", "missing", "", validInput()); !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("missing: err = %v", err)
	}
	if _, _, err := svc.Create(context.Background(), "u2", d.ID, "", validInput()); !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("foreign: err = %v", err)
	}
}

func TestHighlight_Create_IdempotentReplay(t *testing.T) {
	db := newTestDB(t)
	d := mustCreateDoc(t, db, "u1", "fox.pdf", strp(foxText))
	svc := NewHighlightService(db)

	first, replayed, err := svc.Create(context.Background(), "u1", d.ID, "key-1", validInput())
	if err != nil || replayed {
		t.Fatalf("first: replayed=%v err=%v", replayed, err)
	}

	in := validInput()
	in.Text = "something else"
	second, replayed, err := svc.Create(context.Background(), "u1", d.ID, "key-1", in)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if !replayed || second.ID != first.ID || second.Text != "quick" {
		t.Fatalf("want replay of %s, got %+v (replayed=%v)", first.ID, second, replayed)
	}

	third, replayed, err := svc.Create(context.Background(), "u1", d.ID, "key-2", in)
	if err != nil || replayed || third.ID == first.ID {
		t.Fatalf("new key must create: %+v replayed=%v err=%v", third, replayed, err)
	}

	items, err := svc.List(context.Background(), "u1", d.ID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("highlights = %d; want 2", len(items))
	}
}

func TestHighlight_Create_ExpiredKeyStartsOver(t *testing.T) {
	db := newTestDB(t)
	d := mustCreateDoc(t, db, "u1", "fox.pdf", strp(foxText))
	svc := NewHighlightService(db)
	ctx := context.Background()

	first, _, err := svc.Create(ctx, "u1", d.ID, "key-1", validInput())
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	// expired but not yet purged
	if err := db.Model(&domain.Idempotency{}).
		Where("key = ?", "key-1").
		Update("expires_at", time.Now().UTC().Add(-time.Minute)).Error; err != nil {
		t.Fatalf("expire record: %v", err)
	}

	second, replayed, err := svc.Create(ctx, "u1", d.ID, "key-1", validInput())
	if err != nil || replayed {
		t.Fatalf("second: replayed=%v err=%v", replayed, err)
	}
	if second.ID == first.ID {
		t.Fatal("expired key replayed the old highlight")
	}

	third, replayed, err := svc.Create(ctx, "u1", d.ID, "key-1", validInput())
	if err != nil || !replayed || third.ID != second.ID {
		t.Fatalf("third: %+v replayed=%v err=%v", third, replayed, err)
	}
}

func TestHighlight_Create_KeyOfDeletedHighlightStartsOver(t *testing.T) {
	db := newTestDB(t)
	d := mustCreateDoc(t, db, "u1", "fox.pdf", strp(foxText))
	svc := NewHighlightService(db)
	ctx := context.Background()

	first, _, err := svc.Create(ctx, "u1", d.ID, "key-1", validInput())
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if err := svc.Delete(ctx, "u1", first.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	second, replayed, err := svc.Create(ctx, "u1", d.ID, "key-1", validInput())
	if err != nil || replayed || second.ID == first.ID {
		t.Fatalf("second: %+v replayed=%v err=%v", second, replayed, err)
	}
	items, err := svc.List(ctx, "u1", d.ID)
	if err != nil || len(items) != 1 || items[0].ID != second.ID {
		t.Fatalf("List = %+v, %v", items, err)
	}
}

func TestHighlight_ListAndDelete(t *testing.T) {
	db := newTestDB(t)
	d := mustCreateDoc(t, db, "u1", "fox.pdf", strp(foxText))
	svc := NewHighlightService(db)

	items, err := svc.List(context.Background(), "u1", d.ID)
	if err != nil || items == nil || len(items) != 0 {
		t.Fatalf("empty list: %v %v", items, err)
	}
	if _, err := svc.List(context.Background(), "u2", d.ID); !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("foreign list: err = %v", err)
	}

	h, _, err := svc.Create(context.Background(), "u1", d.ID, "", validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(context.Background(), "u2", h.ID); !errors.Is(err, ErrHighlightNotFound) {
		t.Fatalf("foreign delete: err = %v", err)
	}
	if err := svc.Delete(context.Background(), "u1", h.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(context.Background(), "u1", h.ID); !errors.Is(err, ErrHighlightNotFound) {
		t.Fatalf("second delete: err = %v", err)
	}
}
