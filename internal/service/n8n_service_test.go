package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fadilmartias/hiring-dashboard/internal/config"
	"github.com/fadilmartias/hiring-dashboard/internal/model"
	"github.com/fadilmartias/hiring-dashboard/internal/util"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestN8N(t *testing.T, handler http.HandlerFunc, apiKey string) *N8NService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewN8NService(&config.N8NConfig{BaseURL: srv.URL, APIKey: apiKey, Timeout: 5 * time.Second})
}

func TestN8NService_CreateGoal(t *testing.T) {
	var got map[string]any
	svc := newTestN8N(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/webhook/create-goal", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"goal_id":"g-1"}`))
	}, "")

	out, err := svc.CreateGoal(context.Background(), model.GoalDraft{
		Title:           "Hire 3 Senior Python Developers",
		Description:     "Python, FastAPI, PostgreSQL",
		TargetPositions: 3,
		Priority:        model.PriorityHigh,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"goal_id":"g-1"}`, string(out))
	assert.Equal(t, "Hire 3 Senior Python Developers", got["title"])
	assert.Equal(t, float64(3), got["target_positions"])
	assert.Equal(t, "high", got["priority"])
}

func TestN8NService_CreateGoal_ErrorStatus(t *testing.T) {
	svc := newTestN8N(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, "")

	_, err := svc.CreateGoal(context.Background(), model.GoalDraft{Title: "t", Description: "d"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, util.ErrWebhookFailed))
}

func TestN8NService_CreateGoal_Unreachable(t *testing.T) {
	svc := NewN8NService(&config.N8NConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})

	_, err := svc.CreateGoal(context.Background(), model.GoalDraft{Title: "t", Description: "d"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, util.ErrWebhookFailed))
}

func TestN8NService_ForwardResume_RequiresOK(t *testing.T) {
	svc := newTestN8N(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/webhook/resume-upload-webhook", r.URL.Path)
		w.WriteHeader(http.StatusAccepted)
	}, "")

	_, err := svc.ForwardResume(context.Background(), model.ResumeForward{ExtractedData: json.RawMessage(`{}`)})
	assert.True(t, errors.Is(err, util.ErrWebhookFailed))
}

func TestN8NService_ForwardResume_PlainTextBody(t *testing.T) {
	svc := newTestN8N(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Workflow was started"))
	}, "")

	out, err := svc.ForwardResume(context.Background(), model.ResumeForward{ExtractedData: json.RawMessage(`{}`)})
	require.NoError(t, err)
	assert.JSONEq(t, `"Workflow was started"`, string(out))
}

func TestN8NService_RankCandidates(t *testing.T) {
	svc := newTestN8N(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/webhook/rank-candidates", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"jd_id":"jd-7","filters":{"location":"Berlin","limit":5}}`, string(body))
		_, _ = w.Write([]byte(`[{"candidate_id":"c1","score":0.91}]`))
	}, "")

	out, err := svc.RankCandidates(context.Background(), model.RankingRequest{
		JDID:    "jd-7",
		Filters: &model.RankingFilters{Location: "Berlin", Limit: 5},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"candidate_id":"c1","score":0.91}]`, string(out))
}

func TestN8NService_ListWorkflows(t *testing.T) {
	svc := newTestN8N(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/workflows", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-N8N-API-KEY"))
		_, _ = w.Write([]byte(`{"data":[{"id":"resume-processing","name":"Resume Processing Pipeline","active":true,"triggerCount":1},{"id":"x","name":"Draft","active":false}]}`))
	}, "secret")

	workflows, err := svc.ListWorkflows(context.Background())
	require.NoError(t, err)
	require.Len(t, workflows, 2)
	assert.Equal(t, "resume-processing", workflows[0].ID)
	assert.True(t, workflows[0].Active)
	assert.Equal(t, 1, workflows[0].TriggerCount)
	assert.Equal(t, svc.BaseURL()+"/workflow/resume-processing", workflows[0].URL)
	assert.False(t, workflows[1].Active)
}

func TestN8NService_ListWorkflows_NoAPIKey(t *testing.T) {
	called := false
	svc := newTestN8N(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	}, "")

	_, err := svc.ListWorkflows(context.Background())
	assert.Error(t, err)
	assert.False(t, called)
}
