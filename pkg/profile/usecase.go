package profile

import (
	"context"
	"strings"
)

// UseCase covers saving and looking up user profiles.
type UseCase interface {
	Upsert(ctx context.Context, p Profile) (Profile, error)
	GetByName(ctx context.Context, name string) (Profile, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Upsert(ctx context.Context, p Profile) (Profile, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return Profile{}, ErrValidation("name is required")
	}
	// nil slices marshal to null; the client always expects arrays
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Interests == nil {
		p.Interests = []string{}
	}
	return s.repo.Upsert(ctx, p)
}

func (s *service) GetByName(ctx context.Context, name string) (Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Profile{}, ErrValidation("name is required")
	}
	return s.repo.GetByName(ctx, name)
}
