package career

import "context"

// UseCase exposes catalog reads for the dashboard and seed tooling.
type UseCase interface {
	List(ctx context.Context) ([]Career, error)
	Replace(ctx context.Context, careers []Career) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) List(ctx context.Context) ([]Career, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Replace(ctx context.Context, careers []Career) error {
	return s.repo.ReplaceAll(ctx, careers)
}
