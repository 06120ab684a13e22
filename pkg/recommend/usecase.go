package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"careerpath/pkg/career"
	"careerpath/pkg/llm"
)

// ErrUpstreamParse marks a model reply that does not match the required
// {"recommendations": [...]} shape.
var ErrUpstreamParse = errors.New("model reply does not match recommendations schema")

// ErrUpstreamCall marks a failed call to the external model after retries.
var ErrUpstreamCall = errors.New("model call failed")

// ErrValidation is a simple validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// UseCase turns a profile's skills and interests into an ordered list
// of full catalog records chosen by the external model.
type UseCase interface {
	Recommend(ctx context.Context, skills, interests []string) ([]career.Career, error)
}

type service struct {
	careers career.Repository
	llm     llm.ChatModel
	timeout time.Duration
}

func NewService(careers career.Repository, model llm.ChatModel, timeout time.Duration) UseCase {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &service{
		careers: careers,
		llm:     model,
		timeout: timeout,
	}
}

const systemPrompt = `You are "CareerPath AI," an expert career counselor.
You will be given a user's skills and interests, and a list of available career paths.
Your job is to analyze the user's profile and recommend the top 3 careers *from the provided list*.
You MUST respond *only* with a JSON object in the format:
{ "recommendations": ["Career Name 1", "Career Name 2", "Career Name 3"] }`

func (s *service) Recommend(ctx context.Context, skills, interests []string) ([]career.Career, error) {
	if len(skills) == 0 {
		return nil, ErrValidation("skills are required")
	}
	if len(interests) == 0 {
		return nil, ErrValidation("interests are required")
	}

	names, err := s.careers.Names(ctx)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	user := fmt.Sprintf(
		"User Skills: %s\nUser Interests: %s\nAvailable Careers: %s",
		strings.Join(skills, ", "),
		strings.Join(interests, ", "),
		strings.Join(names, ", "),
	)

	raw, err := s.ask(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamCall, err)
	}

	picked, err := parseRecommendations(raw)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, picked)
}

// ask calls the model with a bounded timeout and one jittered retry.
// The upstream timeout is a deliberate guard: without it a stalled
// provider would hang the whole user-facing request.
func (s *service) ask(ctx context.Context, userPrompt string) (string, error) {
	attempt := func() (string, error) {
		cctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		return s.llm.Ask(cctx, systemPrompt, userPrompt)
	}

	raw, err := attempt()
	if err == nil {
		return raw, nil
	}
	if ctx.Err() != nil {
		return "", err
	}
	time.Sleep(time.Duration(100+rand.Intn(300)) * time.Millisecond)
	return attempt()
}

type recommendationsPayload struct {
	Recommendations []string `json:"recommendations"`
}

// parseRecommendations validates the model reply. A strict unmarshal is
// tried first; if the model wrapped the object in prose or a fenced
// block, the text between the first '{' and last '}' is retried.
func parseRecommendations(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	var out recommendationsPayload
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		out = recommendationsPayload{}
		if i := strings.Index(raw, "{"); i >= 0 {
			if j := strings.LastIndex(raw, "}"); j > i {
				_ = json.Unmarshal([]byte(raw[i:j+1]), &out)
			}
		}
	}
	if out.Recommendations == nil {
		return nil, ErrUpstreamParse
	}
	return out.Recommendations, nil
}

// resolve maps the model's picks back to full catalog records,
// preserving the model's order. Names with no catalog match are
// dropped, never substituted.
func (s *service) resolve(ctx context.Context, picked []string) ([]career.Career, error) {
	if len(picked) == 0 {
		return []career.Career{}, nil
	}
	found, err := s.careers.GetByNames(ctx, picked)
	if err != nil {
		return nil, fmt.Errorf("resolve careers: %w", err)
	}
	byName := make(map[string]career.Career, len(found))
	for _, c := range found {
		byName[c.CareerName] = c
	}
	res := make([]career.Career, 0, len(picked))
	for _, name := range picked {
		if c, ok := byName[name]; ok {
			res = append(res, c)
		}
	}
	return res, nil
}
