package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpath/pkg/career"
)

type fakeCatalog struct {
	careers []career.Career
	err     error
}

func (f *fakeCatalog) ListAll(ctx context.Context) ([]career.Career, error) {
	return f.careers, f.err
}

func (f *fakeCatalog) Names(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	names := make([]string, 0, len(f.careers))
	for _, c := range f.careers {
		names = append(names, c.CareerName)
	}
	return names, nil
}

func (f *fakeCatalog) GetByNames(ctx context.Context, names []string) ([]career.Career, error) {
	if f.err != nil {
		return nil, f.err
	}
	want := map[string]bool{}
	for _, n := range names {
		want[n] = true
	}
	var res []career.Career
	for _, c := range f.careers {
		if want[c.CareerName] {
			res = append(res, c)
		}
	}
	return res, nil
}

func (f *fakeCatalog) ReplaceAll(ctx context.Context, careers []career.Career) error {
	f.careers = careers
	return nil
}

type fakeModel struct {
	replies []string
	errs    []error
	calls   int
	systems []string
	users   []string
}

func (f *fakeModel) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	i := f.calls
	f.calls++
	f.systems = append(f.systems, systemPrompt)
	f.users = append(f.users, userPrompt)
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var reply string
	if i < len(f.replies) {
		reply = f.replies[i]
	}
	return reply, err
}

func catalogOf(names ...string) *fakeCatalog {
	f := &fakeCatalog{}
	for _, n := range names {
		f.careers = append(f.careers, career.Career{CareerName: n})
	}
	return f
}

func TestRecommendValidatesInputBeforeAnyCall(t *testing.T) {
	model := &fakeModel{}
	svc := NewService(catalogOf("A"), model, time.Second)

	_, err := svc.Recommend(context.Background(), nil, []string{"music"})
	var ve ErrValidation
	require.ErrorAs(t, err, &ve)

	_, err = svc.Recommend(context.Background(), []string{"go"}, []string{})
	require.ErrorAs(t, err, &ve)

	assert.Equal(t, 0, model.calls, "no external call on validation failure")
}

func TestRecommendPreservesModelOrderAndDropsUnknown(t *testing.T) {
	catalog := catalogOf("A", "B", "C")
	model := &fakeModel{replies: []string{`{"recommendations": ["C", "A", "Z"]}`}}
	svc := NewService(catalog, model, time.Second)

	res, err := svc.Recommend(context.Background(), []string{"go"}, []string{"music"})
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "C", res[0].CareerName)
	assert.Equal(t, "A", res[1].CareerName)
}

func TestRecommendPromptCarriesProfileAndCatalog(t *testing.T) {
	model := &fakeModel{replies: []string{`{"recommendations": []}`}}
	svc := NewService(catalogOf("Data Scientist", "UX Designer"), model, time.Second)

	_, err := svc.Recommend(context.Background(), []string{"Python", "SQL"}, []string{"statistics"})
	require.NoError(t, err)
	require.Equal(t, 1, model.calls)
	assert.Contains(t, model.users[0], "Python, SQL")
	assert.Contains(t, model.users[0], "statistics")
	assert.Contains(t, model.users[0], "Data Scientist, UX Designer")
	assert.Contains(t, model.systems[0], "recommendations")
}

func TestRecommendExtractsFencedJSON(t *testing.T) {
	reply := "Here you go:\n```json\n{\"recommendations\": [\"B\"]}\n```"
	model := &fakeModel{replies: []string{reply}}
	svc := NewService(catalogOf("A", "B"), model, time.Second)

	res, err := svc.Recommend(context.Background(), []string{"go"}, []string{"music"})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "B", res[0].CareerName)
}

func TestRecommendParseFailures(t *testing.T) {
	cases := map[string]string{
		"not json":        "sorry, I cannot help with that",
		"missing key":     `{"results": ["A"]}`,
		"non-array value": `{"recommendations": "A"}`,
	}
	for name, reply := range cases {
		t.Run(name, func(t *testing.T) {
			model := &fakeModel{replies: []string{reply}}
			svc := NewService(catalogOf("A"), model, time.Second)
			res, err := svc.Recommend(context.Background(), []string{"go"}, []string{"music"})
			require.ErrorIs(t, err, ErrUpstreamParse)
			assert.Nil(t, res, "no partial list on parse failure")
		})
	}
}

func TestRecommendEmptyReplyResolvesToEmptyList(t *testing.T) {
	model := &fakeModel{replies: []string{`{"recommendations": []}`}}
	svc := NewService(catalogOf("A"), model, time.Second)

	res, err := svc.Recommend(context.Background(), []string{"go"}, []string{"music"})
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestRecommendRetriesOnceThenSucceeds(t *testing.T) {
	model := &fakeModel{
		errs:    []error{errors.New("connection reset")},
		replies: []string{"", `{"recommendations": ["A"]}`},
	}
	svc := NewService(catalogOf("A"), model, time.Second)

	res, err := svc.Recommend(context.Background(), []string{"go"}, []string{"music"})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, 2, model.calls)
}

func TestRecommendSurfacesUpstreamCallErrorAfterRetry(t *testing.T) {
	boom := errors.New("service unavailable")
	model := &fakeModel{errs: []error{boom, boom}}
	svc := NewService(catalogOf("A"), model, time.Second)

	_, err := svc.Recommend(context.Background(), []string{"go"}, []string{"music"})
	require.ErrorIs(t, err, ErrUpstreamCall)
	assert.Equal(t, 2, model.calls)
}
