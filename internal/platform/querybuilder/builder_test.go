package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("user_id", "badge_id").
		From("badges").
		Where(Eq("user_id", "u1"), Eq("earned", false)).
		OrderBy("badge_id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT user_id, badge_id FROM badges WHERE user_id = $1 AND earned = $2 ORDER BY badge_id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "u1" || args[1] != false {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_LimitOffset(t *testing.T) {
	query, _, err := Select("*").
		From("peerpod_posts").
		OrderBy("created_at DESC", "id DESC").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM peerpod_posts ORDER BY created_at DESC, id DESC LIMIT 10 OFFSET 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
}

func TestSelectBuilder_InAndExpr(t *testing.T) {
	query, args, err := Select("date", "minutes").
		From("study_days").
		Where(
			Eq("user_id", "u1"),
			Expr("date BETWEEN ? AND ?", "2025-01-01", "2025-12-31"),
			In("source", []any{"web", "mobile"}),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT date, minutes FROM study_days WHERE user_id = $1 AND date BETWEEN $2 AND $3 AND source IN ($4, $5)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 5 || args[2] != "2025-12-31" || args[4] != "mobile" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("profiles").
		Columns("user_id", "name").
		Values("u1", "Ada").
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO profiles (user_id, name) VALUES ($1, $2) ON CONFLICT (user_id) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "u1" || args[1] != "Ada" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_MultiRow(t *testing.T) {
	query, args, err := InsertInto("badges").
		Columns("user_id", "badge_id").
		Values("u1", 1).
		Values("u1", 2).
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO badges (user_id, badge_id) VALUES ($1, $2), ($3, $4)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("badges").
		Columns("user_id", "badge_id").
		Values("u1").
		ToSQL()
	if err == nil {
		t.Fatalf("expected error for mismatched row width")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("profiles").
		Set("name", "new").
		SetExpr("coins", "coins + ?", int64(5)).
		SetExpr("updated_at", "NOW()").
		Where(Eq("user_id", "u1")).
		Suffix("RETURNING coins").
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE profiles SET name = $1, coins = coins + $2, updated_at = NOW() WHERE user_id = $3 RETURNING coins"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "new" || args[1] != int64(5) || args[2] != "u1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("post_likes").
		Where(Eq("post_id", "p1"), Eq("user_id", "u1")).
		Suffix("RETURNING user_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	wantQuery := "DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2 RETURNING user_id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder_RequiresCondition(t *testing.T) {
	if _, _, err := DeleteFrom("peerpod_posts").ToSQL(); err == nil {
		t.Fatalf("expected error for unconditional delete")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		UserID string `db:"user_id"`
		Name   string `db:"name"`
		skip   string
		Ignore string `db:"-"`
	}

	query, args, err := InsertModel("profiles", row{UserID: "u1", Name: "Ada"}, "")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO profiles (user_id, name) VALUES ($1, $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel_OmitEmpty(t *testing.T) {
	type row struct {
		ID   string `db:"id"`
		Name string `db:"name,omitempty"`
	}

	query, args, err := InsertModel("leaderboard_entries", &row{ID: "lb-1"}, "")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}
	if query != "INSERT INTO leaderboard_entries (id) VALUES ($1)" {
		t.Fatalf("expected empty name omitted, got %s", query)
	}
	if len(args) != 1 || args[0] != "lb-1" {
		t.Fatalf("unexpected args: %+v", args)
	}

	query, args, err = InsertModel("leaderboard_entries", row{ID: "lb-1", Name: "Ada"}, "")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}
	if query != "INSERT INTO leaderboard_entries (id, name) VALUES ($1, $2)" || len(args) != 2 {
		t.Fatalf("unexpected query %s args %+v", query, args)
	}
}

func TestInsertModel_Errors(t *testing.T) {
	var nilRow *struct {
		ID string `db:"id"`
	}
	cases := map[string]any{
		"nil pointer": nilRow,
		"not struct":  "profiles",
		"no columns":  struct{ Name string }{Name: "Ada"},
	}
	for name, model := range cases {
		if _, _, err := InsertModel("profiles", model, ""); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
