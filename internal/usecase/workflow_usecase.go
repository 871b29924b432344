package usecase

import (
	"context"
	"time"

	"github.com/fadilmartias/hiring-dashboard/internal/model"
	"github.com/fadilmartias/hiring-dashboard/internal/service"
	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
)

const (
	workflowCacheKey    = "n8n-workflows"
	workflowCacheTTL    = 30 * time.Second
	workflowFallbackTTL = 10 * time.Second
)

type workflowListing struct {
	workflows []model.WorkflowStatus
	live      bool
}

type WorkflowUsecase struct {
	n8n   service.N8NServiceInterface
	cache *cache.Cache
}

func NewWorkflowUsecase(n8n service.N8NServiceInterface) *WorkflowUsecase {
	return &WorkflowUsecase{
		n8n:   n8n,
		cache: cache.New(workflowCacheTTL, 2*workflowCacheTTL),
	}
}

// List returns live workflow state from n8n when available, falling back to
// the known workflows. live reports which of the two was returned. Live
// results are cached for 30s, the fallback for 10s.
func (uc *WorkflowUsecase) List(ctx context.Context) (workflows []model.WorkflowStatus, live bool) {
	if cached, ok := uc.cache.Get(workflowCacheKey); ok {
		listing := cached.(workflowListing)
		return listing.workflows, listing.live
	}

	workflows, err := uc.n8n.ListWorkflows(ctx)
	if err != nil {
		// the fallback is cached briefly so an unreachable n8n is not dialed
		// on every page load
		log.WithError(err).Debug("using known workflow list")
		known := uc.known()
		uc.cache.Set(workflowCacheKey, workflowListing{workflows: known}, workflowFallbackTTL)
		return known, false
	}
	uc.cache.Set(workflowCacheKey, workflowListing{workflows: workflows, live: true}, cache.DefaultExpiration)
	return workflows, true
}

func (uc *WorkflowUsecase) EditorURL() string {
	return uc.n8n.BaseURL()
}

func (uc *WorkflowUsecase) known() []model.WorkflowStatus {
	out := make([]model.WorkflowStatus, len(model.KnownWorkflows))
	for i, wf := range model.KnownWorkflows {
		wf.URL = uc.n8n.BaseURL() + "/workflow/" + wf.ID
		out[i] = wf
	}
	return out
}
