package career

import (
	"context"

	"github.com/google/uuid"
)

// Career is one catalog entry. CareerName is the join key the LLM and
// the client both use; JSON tags mirror the wire format the dashboard
// expects.
type Career struct {
	ID             uuid.UUID `json:"id"`
	CareerName     string    `json:"careerName"`
	Description    string    `json:"description"`
	DetailedDesc   string    `json:"detailedDesc"`
	RequiredSkills []string  `json:"requiredSkills"`
	Salary         string    `json:"salary"`
	Growth         string    `json:"growth"`
	Icon           string    `json:"icon"`
	Color          string    `json:"color"`
	Courses        []Course  `json:"courses"`
}

// Course is a learning resource attached to a career.
type Course struct {
	Title    string `json:"title"`
	Platform string `json:"platform"`
	Link     string `json:"link"`
	Duration string `json:"duration"`
}

// Repository is the port for the career catalog. The catalog is
// read-only at request time; ReplaceAll exists for the seed tooling.
type Repository interface {
	ListAll(ctx context.Context) ([]Career, error)
	// Names returns the distinct careerName values in catalog order.
	Names(ctx context.Context) ([]string, error)
	// GetByNames resolves careers by exact careerName match; unknown
	// names are simply absent from the result.
	GetByNames(ctx context.Context, names []string) ([]Career, error)
	// ReplaceAll swaps the whole catalog in one transaction.
	ReplaceAll(ctx context.Context, careers []Career) error
}
