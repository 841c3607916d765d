package service

import (
	"testing"
	"time"

	"go-booking-platform/internal/domain/entity"

	"github.com/google/uuid"
)

func TestScoreCustomer(t *testing.T) {
	full := &entity.User{Email: "a@example.com", PhoneNumber: "05551112233", FullName: "Ayse Yilmaz"}
	sparse := &entity.User{Email: "a@example.com"}

	fullScore := ScoreCustomer(full, RelationCounts{Appointments: 4, Purchases: 1})
	sparseScore := ScoreCustomer(sparse, RelationCounts{})
	if fullScore <= sparseScore {
		t.Fatalf("expected complete row with history to outscore sparse row: %d vs %d", fullScore, sparseScore)
	}

	// 10 (email) + 10 (phone) + 5 (name) + 3*4 + 3*1 = 40
	if fullScore != 40 {
		t.Fatalf("expected score 40, got %d", fullScore)
	}
}

func TestPickCanonical_HighestScoreWins(t *testing.T) {
	older := entity.User{ID: uuid.New(), Email: "x@example.com", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	richer := entity.User{ID: uuid.New(), Email: "x@example.com", PhoneNumber: "05551112233", FullName: "X", CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}

	counts := map[uuid.UUID]RelationCounts{
		older.ID:  {},
		richer.ID: {Appointments: 2},
	}

	got := PickCanonical([]entity.User{older, richer}, counts)
	if got.ID != richer.ID {
		t.Fatalf("expected richer row to win, got %s", got.ID)
	}
}

func TestPickCanonical_TieBreaksOnAge(t *testing.T) {
	older := entity.User{ID: uuid.New(), Email: "x@example.com", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := entity.User{ID: uuid.New(), Email: "x@example.com", CreatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}

	counts := map[uuid.UUID]RelationCounts{}
	got := PickCanonical([]entity.User{newer, older}, counts)
	if got.ID != older.ID {
		t.Fatalf("expected oldest row to win the tie, got %s", got.ID)
	}
}

func TestGroupDuplicates(t *testing.T) {
	a1 := entity.User{ID: uuid.New(), Email: "Same@Example.com"}
	a2 := entity.User{ID: uuid.New(), Email: "same@example.com"}
	b1 := entity.User{ID: uuid.New(), Email: "b1@example.com", PhoneNumber: "0555 111 22 33"}
	b2 := entity.User{ID: uuid.New(), Email: "b2@example.com", PhoneNumber: "05551112233"}
	lone := entity.User{ID: uuid.New(), Email: "lone@example.com"}

	groups := GroupDuplicates([]entity.User{a1, a2, b1, b2, lone})
	if len(groups) != 2 {
		t.Fatalf("expected 2 duplicate groups, got %d", len(groups))
	}
	for _, g := range groups {
		if len(g) != 2 {
			t.Fatalf("expected groups of 2, got %d", len(g))
		}
		for _, m := range g {
			if m.ID == lone.ID {
				t.Fatal("unique customer must not appear in any group")
			}
		}
	}
}

func TestGroupDuplicates_Deterministic(t *testing.T) {
	users := []entity.User{
		{ID: uuid.New(), Email: "a@example.com"},
		{ID: uuid.New(), Email: "a@example.com"},
		{ID: uuid.New(), Email: "b@example.com"},
		{ID: uuid.New(), Email: "b@example.com"},
	}

	first := GroupDuplicates(users)
	second := GroupDuplicates(users)
	if len(first) != len(second) {
		t.Fatalf("group counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i][0].ID != second[i][0].ID {
			t.Fatal("group ordering must be deterministic across runs")
		}
	}
}
