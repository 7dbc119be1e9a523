package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/learnquest/internal/domain/profile"
	qb "github.com/riskibarqy/learnquest/internal/platform/querybuilder"
)

type ProfileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (profile.Profile, bool, error) {
	query, args, err := qb.Select("*").From("profiles").Where(qb.Eq("user_id", userID)).ToSQL()
	if err != nil {
		return profile.Profile{}, false, fmt.Errorf("build get profile query: %w", err)
	}

	var row profileTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return profile.Profile{}, false, nil
		}
		return profile.Profile{}, false, fmt.Errorf("get profile: %w", err)
	}
	return profileFromRow(row), true, nil
}

func (r *ProfileRepository) Create(ctx context.Context, p profile.Profile) (profile.Profile, bool, error) {
	query, args, err := qb.InsertModel("profiles", profileTableModel{
		UserID:       p.UserID,
		Name:         p.Name,
		ProfileImage: p.ProfileImage,
		Coins:        p.Coins,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}, "ON CONFLICT (user_id) DO NOTHING RETURNING *")
	if err != nil {
		return profile.Profile{}, false, fmt.Errorf("build create profile query: %w", err)
	}

	var row profileTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if !isNotFound(err) {
			return profile.Profile{}, false, fmt.Errorf("create profile: %w", err)
		}
		existing, ok, getErr := r.GetByUserID(ctx, p.UserID)
		if getErr != nil {
			return profile.Profile{}, false, getErr
		}
		if !ok {
			return profile.Profile{}, false, fmt.Errorf("create profile: conflicting row for user=%s vanished", p.UserID)
		}
		return existing, false, nil
	}
	return profileFromRow(row), true, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, userID string, changes profile.Changes, now time.Time) (profile.Profile, error) {
	insertRow := profileTableModel{UserID: userID, CreatedAt: now, UpdatedAt: now}
	assignments := []string{"updated_at = EXCLUDED.updated_at"}
	if changes.Name != nil {
		insertRow.Name = *changes.Name
		assignments = append(assignments, "name = EXCLUDED.name")
	}
	if changes.ProfileImage != nil {
		insertRow.ProfileImage = *changes.ProfileImage
		assignments = append(assignments, "profile_image = EXCLUDED.profile_image")
	}
	if changes.Coins != nil {
		insertRow.Coins = *changes.Coins
		assignments = append(assignments, "coins = EXCLUDED.coins")
	}

	suffix := "ON CONFLICT (user_id) DO UPDATE SET " + strings.Join(assignments, ", ") + " RETURNING *"
	query, args, err := qb.InsertModel("profiles", insertRow, suffix)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("build upsert profile query: %w", err)
	}

	var row profileTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return profile.Profile{}, fmt.Errorf("upsert profile: %w", err)
	}
	return profileFromRow(row), nil
}

func (r *ProfileRepository) AddCoins(ctx context.Context, userID string, amount int64, now time.Time) (profile.Profile, bool, error) {
	query, args, err := qb.Update("profiles").
		SetExpr("coins", "coins + ?", amount).
		Set("updated_at", now).
		Where(qb.Eq("user_id", userID)).
		Suffix("RETURNING *").
		ToSQL()
	if err != nil {
		return profile.Profile{}, false, fmt.Errorf("build add coins query: %w", err)
	}

	var row profileTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return profile.Profile{}, false, nil
		}
		return profile.Profile{}, false, fmt.Errorf("add coins: %w", err)
	}
	return profileFromRow(row), true, nil
}

func profileFromRow(row profileTableModel) profile.Profile {
	return profile.Profile{
		UserID:       row.UserID,
		Name:         row.Name,
		ProfileImage: row.ProfileImage,
		Coins:        row.Coins,
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
	}
}
