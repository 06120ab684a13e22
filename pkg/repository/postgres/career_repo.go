package postgres

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"careerpath/pkg/career"
)

// CareerRepository stores the career catalog and its course links.
type CareerRepository struct {
	pool *pgxpool.Pool
}

func NewCareerRepository(pool *pgxpool.Pool) (*CareerRepository, error) {
	r := &CareerRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *CareerRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS careers (
	id UUID PRIMARY KEY,
	career_name TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	detailed_desc TEXT NOT NULL DEFAULT '',
	required_skills TEXT[] NOT NULL DEFAULT '{}',
	salary TEXT NOT NULL DEFAULT '',
	growth TEXT NOT NULL DEFAULT '',
	icon TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS career_courses (
	career_id UUID NOT NULL REFERENCES careers(id) ON DELETE CASCADE,
	position INT NOT NULL,
	title TEXT NOT NULL,
	platform TEXT NOT NULL DEFAULT '',
	link TEXT NOT NULL DEFAULT '',
	duration TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (career_id, position)
);
`)
	return err
}

const careerSelect = `
SELECT c.id, c.career_name, c.description, c.detailed_desc, c.required_skills,
	c.salary, c.growth, c.icon, c.color,
	COALESCE(
		json_agg(json_build_object(
			'title', cc.title, 'platform', cc.platform,
			'link', cc.link, 'duration', cc.duration
		) ORDER BY cc.position)
			FILTER (WHERE cc.title IS NOT NULL),
		'[]'
	) AS courses
FROM careers c
LEFT JOIN career_courses cc ON cc.career_id = c.id
`

func (r *CareerRepository) ListAll(ctx context.Context) ([]career.Career, error) {
	rows, err := r.pool.Query(ctx, careerSelect+`
GROUP BY c.id
ORDER BY c.career_name
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCareers(rows)
}

func (r *CareerRepository) Names(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT career_name FROM careers ORDER BY career_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

func (r *CareerRepository) GetByNames(ctx context.Context, names []string) ([]career.Career, error) {
	if len(names) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, careerSelect+`
WHERE c.career_name = ANY($1)
GROUP BY c.id
`, names)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCareers(rows)
}

// ReplaceAll swaps the whole catalog inside one transaction. Used by
// the seed tooling only; request-time callers never write.
func (r *CareerRepository) ReplaceAll(ctx context.Context, careers []career.Career) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM careers`); err != nil {
		return err
	}
	for _, c := range careers {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		_, err := tx.Exec(ctx, `
INSERT INTO careers (id, career_name, description, detailed_desc, required_skills, salary, growth, icon, color)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, c.ID, c.CareerName, c.Description, c.DetailedDesc, c.RequiredSkills, c.Salary, c.Growth, c.Icon, c.Color)
		if err != nil {
			return err
		}
		for i, course := range c.Courses {
			_, err := tx.Exec(ctx, `
INSERT INTO career_courses (career_id, position, title, platform, link, duration)
VALUES ($1, $2, $3, $4, $5, $6)
`, c.ID, i, course.Title, course.Platform, course.Link, course.Duration)
			if err != nil {
				return err
			}
		}
	}
	return tx.Commit(ctx)
}

type careerRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func collectCareers(rows careerRows) ([]career.Career, error) {
	var res []career.Career
	for rows.Next() {
		var c career.Career
		var coursesJSON []byte
		if err := rows.Scan(&c.ID, &c.CareerName, &c.Description, &c.DetailedDesc,
			&c.RequiredSkills, &c.Salary, &c.Growth, &c.Icon, &c.Color, &coursesJSON); err != nil {
			return nil, err
		}
		if c.RequiredSkills == nil {
			c.RequiredSkills = []string{}
		}
		c.Courses = []career.Course{}
		_ = json.Unmarshal(coursesJSON, &c.Courses)
		res = append(res, c)
	}
	return res, rows.Err()
}
