package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/fadilmartias/hiring-dashboard/internal/model"
	"github.com/fadilmartias/hiring-dashboard/internal/repository"
)

type fakeN8N struct {
	mu sync.Mutex

	goals     []model.GoalDraft
	forwards  []model.ResumeForward
	rankings  []model.RankingRequest
	listCalls int

	goalErr    error
	forwardErr error
	rankErr    error
	listErr    error
	workflows  []model.WorkflowStatus
	response   json.RawMessage
}

func (f *fakeN8N) CreateGoal(_ context.Context, goal model.GoalDraft) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.goals = append(f.goals, goal)
	if f.goalErr != nil {
		return nil, f.goalErr
	}
	return f.response, nil
}

func (f *fakeN8N) ForwardResume(_ context.Context, payload model.ResumeForward) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forwards = append(f.forwards, payload)
	if f.forwardErr != nil {
		return nil, f.forwardErr
	}
	return f.response, nil
}

func (f *fakeN8N) RankCandidates(_ context.Context, req model.RankingRequest) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rankings = append(f.rankings, req)
	if f.rankErr != nil {
		return nil, f.rankErr
	}
	return f.response, nil
}

func (f *fakeN8N) ListWorkflows(_ context.Context) ([]model.WorkflowStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	return f.workflows, f.listErr
}

func (f *fakeN8N) BaseURL() string { return "http://n8n.test" }

func (f *fakeN8N) WebhookURL(path string) string { return f.BaseURL() + path }

type fakeExtractor struct {
	calls  int
	result *model.ExtractedResume
	err    error
}

func (f *fakeExtractor) Extract(_ context.Context, _ model.ResumeFile) (*model.ExtractedResume, error) {
	f.calls++
	return f.result, f.err
}

func (f *fakeExtractor) BaseURL() string { return "http://extract.test" }

func newActivity() (*ActivityUsecase, *repository.MemoryActivityRepository) {
	repo := repository.NewMemoryActivityRepository()
	return NewActivityUsecase(repo), repo
}
