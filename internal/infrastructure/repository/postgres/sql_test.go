package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get profile: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(fakeErr("pq: relation profiles does not exist")) {
		t.Fatalf("expected unrelated error to be ignored")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches 23505", func(t *testing.T) {
		err := fmt.Errorf("insert badge: %w", &pq.Error{Code: "23505"})
		if !isUniqueViolation(err) {
			t.Fatalf("expected true for unique violation")
		}
	})

	t.Run("ignores other pq codes", func(t *testing.T) {
		if isUniqueViolation(&pq.Error{Code: "23503"}) {
			t.Fatalf("expected false for foreign key violation")
		}
	})

	t.Run("ignores non pq errors", func(t *testing.T) {
		if isUniqueViolation(fakeErr("duplicate key")) {
			t.Fatalf("expected false for plain error")
		}
	})
}

func TestNullTimeConversions(t *testing.T) {
	if got := nullTimeToTimePtr(sql.NullTime{}); got != nil {
		t.Fatalf("expected nil for null time, got %v", got)
	}

	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	got := nullTimeToTimePtr(timePtrToNullTime(&at))
	if got == nil || !got.Equal(at) || got.Location() != time.UTC {
		t.Fatalf("expected %v in UTC, got %v", at, got)
	}

	if timePtrToNullTime(nil).Valid {
		t.Fatalf("expected invalid null time for nil pointer")
	}
}

func TestNullInt32ToIntPtr(t *testing.T) {
	if got := nullInt32ToIntPtr(sql.NullInt32{}); got != nil {
		t.Fatalf("expected nil, got %v", *got)
	}
	got := nullInt32ToIntPtr(sql.NullInt32{Int32: 4, Valid: true})
	if got == nil || *got != 4 {
		t.Fatalf("expected 4, got %v", got)
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
