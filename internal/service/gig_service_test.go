package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/abhidesai17/gigflow/internal/model"
	"github.com/abhidesai17/gigflow/internal/service"
)

func TestCreateGigValidation(t *testing.T) {
	s := newMemStore()
	gigs := service.NewGigService(s.Gigs())
	ctx := context.Background()

	if _, err := gigs.CreateGig(ctx, service.CreateGigInput{
		OwnerID: uuid.New(), Title: " ", Description: "work", Budget: 10,
	}); !errors.Is(err, service.ErrInvalidRequest) {
		t.Fatalf("empty title error = %v, want ErrInvalidRequest", err)
	}
	if _, err := gigs.CreateGig(ctx, service.CreateGigInput{
		OwnerID: uuid.New(), Title: "t", Description: "work", Budget: -5,
	}); !errors.Is(err, service.ErrInvalidRequest) {
		t.Fatalf("negative budget error = %v, want ErrInvalidRequest", err)
	}

	gig, err := gigs.CreateGig(ctx, service.CreateGigInput{
		OwnerID: uuid.New(), Title: "  Paint a fence  ", Description: "white", Budget: 0,
	})
	if err != nil {
		t.Fatalf("create gig: %v", err)
	}
	if gig.Title != "Paint a fence" {
		t.Fatalf("title = %q, want trimmed", gig.Title)
	}
	if gig.Status != model.GigStatusOpen {
		t.Fatalf("status = %s, want open", gig.Status)
	}
}

func TestListOpenGigsFilters(t *testing.T) {
	s := newMemStore()
	gigs := service.NewGigService(s.Gigs())
	ctx := context.Background()

	create := func(title string) *model.Gig {
		gig, err := gigs.CreateGig(ctx, service.CreateGigInput{
			OwnerID: uuid.New(), Title: title, Description: "d", Budget: 10,
		})
		if err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
		return gig
	}

	create("Fix kitchen sink")
	assigned := create("Website redesign")
	create("Redesign business cards")
	if _, err := s.Gigs().CompareAndSetStatus(ctx, assigned.ID, model.GigStatusOpen, model.GigStatusAssigned); err != nil {
		t.Fatalf("assign gig: %v", err)
	}

	open, err := gigs.ListOpenGigs(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(open) != 2 {
		t.Fatalf("got %d open gigs, want 2 (assigned gigs hidden)", len(open))
	}
	if open[0].Title != "Redesign business cards" {
		t.Fatalf("first gig = %q, want newest first", open[0].Title)
	}

	matched, err := gigs.ListOpenGigs(ctx, "REDESIGN")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matched) != 1 || matched[0].Title != "Redesign business cards" {
		t.Fatalf("search matched %d gigs (%+v), want only the open redesign gig", len(matched), matched)
	}
}
