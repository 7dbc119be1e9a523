package memory

import "testing"

func TestActivityRepository_ListRange(t *testing.T) {
	repo := NewActivityRepository()
	for _, date := range []string{"2025-01-03", "2024-12-31", "2025-01-01", "2025-02-01"} {
		if _, err := repo.AddMinutes(t.Context(), "u1", date, 10); err != nil {
			t.Fatalf("add minutes: %v", err)
		}
	}
	if _, err := repo.AddMinutes(t.Context(), "u1", "2025-01-01", 5); err != nil {
		t.Fatalf("add minutes: %v", err)
	}

	days, err := repo.ListRange(t.Context(), "u1", "2025-01-01", "2025-01-31")
	if err != nil {
		t.Fatalf("list range: %v", err)
	}
	if len(days) != 2 || days[0].Date != "2025-01-01" || days[0].Minutes != 15 || days[1].Date != "2025-01-03" {
		t.Fatalf("unexpected days: %+v", days)
	}
}
