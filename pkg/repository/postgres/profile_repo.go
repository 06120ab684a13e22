package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"careerpath/pkg/profile"
)

// ProfileRepository implements profile.Repository backed by PostgreSQL (pgx).
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) (*ProfileRepository, error) {
	r := &ProfileRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ProfileRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS profiles (
	name TEXT PRIMARY KEY,
	education TEXT NOT NULL DEFAULT '',
	skills TEXT[] NOT NULL DEFAULT '{}',
	interests TEXT[] NOT NULL DEFAULT '{}',
	updated_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

// Upsert creates or fully replaces the profile for p.Name in a single
// statement, so concurrent saves for the same name converge to one of
// the written states without a torn row.
func (r *ProfileRepository) Upsert(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	row := r.pool.QueryRow(ctx, `
INSERT INTO profiles (name, education, skills, interests, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (name) DO UPDATE SET
	education = EXCLUDED.education,
	skills = EXCLUDED.skills,
	interests = EXCLUDED.interests,
	updated_at = EXCLUDED.updated_at
RETURNING name, education, skills, interests, updated_at
`, p.Name, p.Education, p.Skills, p.Interests, p.UpdatedAt)
	return scanProfile(row)
}

func (r *ProfileRepository) GetByName(ctx context.Context, name string) (profile.Profile, error) {
	row := r.pool.QueryRow(ctx, `
SELECT name, education, skills, interests, updated_at
FROM profiles WHERE name = $1
`, name)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	return p, nil
}

func scanProfile(row pgx.Row) (profile.Profile, error) {
	var p profile.Profile
	var updated time.Time
	if err := row.Scan(&p.Name, &p.Education, &p.Skills, &p.Interests, &updated); err != nil {
		return profile.Profile{}, err
	}
	p.UpdatedAt = updated.UTC()
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Interests == nil {
		p.Interests = []string{}
	}
	return p, nil
}
