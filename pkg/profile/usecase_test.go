package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	byName  map[string]Profile
	upserts int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byName: map[string]Profile{}}
}

func (f *fakeRepo) Upsert(ctx context.Context, p Profile) (Profile, error) {
	f.upserts++
	f.byName[p.Name] = p
	return p, nil
}

func (f *fakeRepo) GetByName(ctx context.Context, name string) (Profile, error) {
	p, ok := f.byName[name]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

func TestUpsertRejectsEmptyName(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.Upsert(context.Background(), Profile{Name: "   ", Skills: []string{"go"}})
	var ve ErrValidation
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 0, repo.upserts, "no record created or altered")
}

func TestUpsertReplacesAllFields(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, Profile{
		Name:      "Alice",
		Education: "Bachelor's",
		Skills:    []string{"go", "sql"},
		Interests: []string{"databases"},
	})
	require.NoError(t, err)

	second := Profile{
		Name:      "Alice",
		Education: "Master's",
		Skills:    []string{"python"},
		Interests: []string{"ml", "statistics"},
	}
	_, err = svc.Upsert(ctx, second)
	require.NoError(t, err)

	got, err := svc.GetByName(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, "Master's", got.Education)
	assert.Equal(t, []string{"python"}, got.Skills, "full replace, not a merge")
	assert.Equal(t, []string{"ml", "statistics"}, got.Interests)
}

func TestUpsertNormalizesNilSlices(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	saved, err := svc.Upsert(context.Background(), Profile{Name: "Bob"})
	require.NoError(t, err)
	assert.NotNil(t, saved.Skills)
	assert.NotNil(t, saved.Interests)
	assert.Empty(t, saved.Skills)
}

func TestUpsertTrimsName(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	saved, err := svc.Upsert(context.Background(), Profile{Name: "  Carol  "})
	require.NoError(t, err)
	assert.Equal(t, "Carol", saved.Name)
}

func TestGetByNameNotFoundIsDistinguishable(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.GetByName(context.Background(), "nobody")
	require.ErrorIs(t, err, ErrNotFound)
}
