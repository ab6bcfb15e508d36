package post

import (
	"errors"
	"testing"
	"time"

	"github.com/photostreak/streak-service/internal/domain"
)

func validPost() Post {
	return Post{
		ID:         "p1",
		GroupID:    "g1",
		UserID:     "alice",
		Username:   "Alice",
		ImageURL:   "/photos/groupPhotos/g1/2026-05-02/alice_1.jpg",
		Date:       "2026-05-02",
		UploadedAt: time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC),
	}
}

func TestPost_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Post)
		wantField string
	}{
		{name: "valid post passes", modify: func(_ *Post) {}},
		{name: "missing group fails", modify: func(p *Post) { p.GroupID = "" }, wantField: "group_id"},
		{name: "missing user fails", modify: func(p *Post) { p.UserID = " " }, wantField: "user_id"},
		{name: "missing image fails", modify: func(p *Post) { p.ImageURL = "" }, wantField: "image_url"},
		{name: "missing date fails", modify: func(p *Post) { p.Date = "" }, wantField: "date"},
		{name: "malformed date fails", modify: func(p *Post) { p.Date = "2026-5-2" }, wantField: "date"},
		{name: "zero upload time fails", modify: func(p *Post) { p.UploadedAt = time.Time{} }, wantField: "uploaded_at"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := validPost()
			tt.modify(&p)
			err := p.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("ValidationError.Fields missing key %q, got %v", tt.wantField, verr.Fields)
			}
		})
	}
}

func TestPosters(t *testing.T) {
	t.Parallel()

	got := Posters([]Post{{UserID: "a"}, {UserID: "b"}, {UserID: "a"}})

	if len(got) != 2 || !got["a"] || !got["b"] {
		t.Errorf("Posters() = %v, want {a b}", got)
	}
}

func TestSortNewestFirst(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	posts := []Post{
		{ID: "early", UploadedAt: base},
		{ID: "late", UploadedAt: base.Add(2 * time.Hour)},
		{ID: "mid", UploadedAt: base.Add(time.Hour)},
	}

	SortNewestFirst(posts)

	for i, id := range []string{"late", "mid", "early"} {
		if posts[i].ID != id {
			t.Errorf("posts[%d] = %q, want %q", i, posts[i].ID, id)
		}
	}
}
