package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/readynurse/internal/db"
	"github.com/alexanderramin/readynurse/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (id, name, email, school, year_level, coins, avatar_url,
		selected_border_id, selected_theme, custom_avatar_unlocked, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Email,
		p.School,
		p.YearLevel,
		p.Coins,
		p.AvatarURL,
		p.SelectedBorderID,
		p.SelectedTheme,
		boolToInt(p.CustomAvatarUnlocked),
		p.CreatedAt.UTC().Format(time.RFC3339),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT id, name, email, school, year_level, coins, avatar_url,
		selected_border_id, selected_theme, custom_avatar_unlocked, created_at, updated_at
		FROM profiles WHERE id = ?`
	var p domain.Profile
	var custom int
	var created, updated string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.School,
		&p.YearLevel,
		&p.Coins,
		&p.AvatarURL,
		&p.SelectedBorderID,
		&p.SelectedTheme,
		&custom,
		&created,
		&updated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}
	p.CustomAvatarUnlocked = intToBool(custom)
	p.CreatedAt = parseTime(created)
	p.UpdatedAt = parseTime(updated)

	if err := r.loadUnlocks(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) loadUnlocks(ctx context.Context, p *domain.Profile) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT kind, item_id FROM profile_unlocks WHERE profile_id = ? ORDER BY unlocked_at, item_id`, p.ID)
	if err != nil {
		return fmt.Errorf("listing unlocks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind, item string
		if err := rows.Scan(&kind, &item); err != nil {
			return fmt.Errorf("scanning unlock: %w", err)
		}
		switch domain.ItemKind(kind) {
		case domain.ItemBorder:
			p.UnlockedBorders = append(p.UnlockedBorders, item)
		case domain.ItemTheme:
			p.UnlockedThemes = append(p.UnlockedThemes, item)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating unlocks: %w", err)
	}
	return nil
}

// Update writes the editable profile fields. Coins and unlocks are only
// changed through IncrementCoins, SpendCoins and Unlock.
func (r *SQLiteProfileRepo) Update(ctx context.Context, p *domain.Profile) error {
	query := `UPDATE profiles SET name = ?, email = ?, school = ?, year_level = ?, avatar_url = ?,
		selected_border_id = ?, selected_theme = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Email,
		p.School,
		p.YearLevel,
		p.AvatarURL,
		p.SelectedBorderID,
		p.SelectedTheme,
		nowUTC(),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}
	return requireAffected(res, "profile "+p.ID)
}

func (r *SQLiteProfileRepo) IncrementCoins(ctx context.Context, id string, delta int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET coins = coins + ?, updated_at = ? WHERE id = ?`, delta, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("incrementing coins: %w", err)
	}
	return requireAffected(res, "profile "+id)
}

func (r *SQLiteProfileRepo) SpendCoins(ctx context.Context, id string, amount int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET coins = coins - ?, updated_at = ? WHERE id = ? AND coins >= ?`,
		amount, nowUTC(), id, amount)
	if err != nil {
		return fmt.Errorf("spending coins: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("spending coins: rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}
	var exists int
	err = r.db.QueryRowContext(ctx, `SELECT 1 FROM profiles WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("profile %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("checking profile: %w", err)
	}
	return ErrInsufficientCoins
}

func (r *SQLiteProfileRepo) Unlock(ctx context.Context, id string, kind domain.ItemKind, itemID string) error {
	if kind == domain.ItemFeature && itemID == domain.FeatureCustomAvatar {
		res, err := r.db.ExecContext(ctx,
			`UPDATE profiles SET custom_avatar_unlocked = 1, updated_at = ? WHERE id = ?`, nowUTC(), id)
		if err != nil {
			return fmt.Errorf("unlocking custom avatar: %w", err)
		}
		if err := requireAffected(res, "profile "+id); err != nil {
			return err
		}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO profile_unlocks (profile_id, kind, item_id, unlocked_at) VALUES (?, ?, ?, ?)`,
		id, string(kind), itemID, nowUTC())
	if err != nil {
		return fmt.Errorf("unlocking %s %s: %w", kind, itemID, err)
	}
	return nil
}
