package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fadilmartias/hiring-dashboard/internal/config"
	"github.com/fadilmartias/hiring-dashboard/internal/model"
	"github.com/fadilmartias/hiring-dashboard/internal/util"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const (
	createGoalPath     = "/webhook/create-goal"
	resumeUploadPath   = "/webhook/resume-upload-webhook"
	rankCandidatesPath = "/webhook/rank-candidates"
	workflowsAPIPath   = "/api/v1/workflows"
)

type N8NServiceInterface interface {
	CreateGoal(ctx context.Context, goal model.GoalDraft) (json.RawMessage, error)
	ForwardResume(ctx context.Context, payload model.ResumeForward) (json.RawMessage, error)
	RankCandidates(ctx context.Context, req model.RankingRequest) (json.RawMessage, error)
	ListWorkflows(ctx context.Context) ([]model.WorkflowStatus, error)
	BaseURL() string
	WebhookURL(path string) string
}

type N8NService struct {
	client  *resty.Client
	baseURL string
	apiKey  string
}

func NewN8NService(cfg *config.N8NConfig) *N8NService {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	return &N8NService{
		client:  instrument(client, "n8n"),
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

func (s *N8NService) BaseURL() string {
	return s.baseURL
}

func (s *N8NService) WebhookURL(path string) string {
	return s.baseURL + path
}

func (s *N8NService) logger(path string) *log.Entry {
	return log.WithField("service", "n8n").WithField("path", path)
}

func (s *N8NService) CreateGoal(ctx context.Context, goal model.GoalDraft) (json.RawMessage, error) {
	resp, err := s.postJSON(ctx, createGoalPath, goal)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, s.statusError(createGoalPath, resp)
	}
	return rawBody(resp), nil
}

// ForwardResume posts the extraction result to the resume webhook. Anything
// other than 200 counts as a failed forward.
func (s *N8NService) ForwardResume(ctx context.Context, payload model.ResumeForward) (json.RawMessage, error) {
	resp, err := s.postJSON(ctx, resumeUploadPath, payload)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, s.statusError(resumeUploadPath, resp)
	}
	return rawBody(resp), nil
}

func (s *N8NService) RankCandidates(ctx context.Context, req model.RankingRequest) (json.RawMessage, error) {
	resp, err := s.postJSON(ctx, rankCandidatesPath, req)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, s.statusError(rankCandidatesPath, resp)
	}
	return rawBody(resp), nil
}

// ListWorkflows reads workflow state from the n8n public API. It needs an API
// key; without one it returns an error so callers fall back to known entries.
func (s *N8NService) ListWorkflows(ctx context.Context) ([]model.WorkflowStatus, error) {
	if s.apiKey == "" {
		return nil, errors.New("N8N_API_KEY not set")
	}
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("X-N8N-API-KEY", s.apiKey).
		Get(workflowsAPIPath)
	if err != nil {
		s.logger(workflowsAPIPath).WithError(err).Warn("n8n workflow list request failed")
		return nil, errors.Wrap(err, "list workflows")
	}
	if resp.IsError() {
		return nil, s.statusError(workflowsAPIPath, resp)
	}

	body := resp.String()
	if !gjson.Valid(body) {
		return nil, errors.New("n8n returned invalid JSON for workflow list")
	}
	var workflows []model.WorkflowStatus
	gjson.Get(body, "data").ForEach(func(_, wf gjson.Result) bool {
		id := wf.Get("id").String()
		workflows = append(workflows, model.WorkflowStatus{
			ID:           id,
			Name:         wf.Get("name").String(),
			Active:       wf.Get("active").Bool(),
			TriggerCount: int(wf.Get("triggerCount").Int()),
			URL:          s.baseURL + "/workflow/" + id,
		})
		return true
	})
	return workflows, nil
}

func (s *N8NService) postJSON(ctx context.Context, path string, body any) (*resty.Response, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(path)
	if err != nil {
		s.logger(path).WithError(err).Error("n8n webhook request failed")
		return nil, errors.Wrap(util.ErrWebhookFailed, err.Error())
	}
	return resp, nil
}

func (s *N8NService) statusError(path string, resp *resty.Response) error {
	s.logger(path).
		WithField("status", resp.StatusCode()).
		WithField("response_body", resp.String()).
		Error("n8n webhook returned unexpected status")
	return errors.Wrap(util.ErrWebhookFailed, fmt.Sprintf("%s returned %d", path, resp.StatusCode()))
}

// rawBody returns the response as JSON. Non-JSON bodies (n8n answers some
// webhooks with plain text) are wrapped as a JSON string; empty bodies map to
// null.
func rawBody(resp *resty.Response) json.RawMessage {
	body := resp.Body()
	if len(body) == 0 {
		return nil
	}
	if gjson.ValidBytes(body) {
		return json.RawMessage(body)
	}
	quoted, _ := json.Marshal(string(body))
	return quoted
}
