package usecase

import (
	"context"

	"github.com/fadilmartias/hiring-dashboard/internal/config"
	"github.com/fadilmartias/hiring-dashboard/internal/dto"
	"github.com/fadilmartias/hiring-dashboard/internal/service"
)

type DashboardUsecase struct {
	workflows *WorkflowUsecase
	activity  *ActivityUsecase
	extractor service.TextExtractServiceInterface
	n8n       service.N8NServiceInterface
	display   *config.DisplayConfig
}

func NewDashboardUsecase(workflows *WorkflowUsecase, activity *ActivityUsecase, extractor service.TextExtractServiceInterface, n8n service.N8NServiceInterface, display *config.DisplayConfig) *DashboardUsecase {
	return &DashboardUsecase{
		workflows: workflows,
		activity:  activity,
		extractor: extractor,
		n8n:       n8n,
		display:   display,
	}
}

func (uc *DashboardUsecase) Stats(ctx context.Context) dto.DashboardStatsDTO {
	workflows, _ := uc.workflows.List(ctx)
	return uc.StatsFor(ctx, len(workflows))
}

// StatsFor builds the header stats for an already fetched workflow count.
func (uc *DashboardUsecase) StatsFor(ctx context.Context, workflowCount int) dto.DashboardStatsDTO {
	return dto.DashboardStatsDTO{
		AgentStatus: "Active",
		Workflows:   workflowCount,
		ActiveGoals: uc.activity.GoalsSubmitted(ctx),
		Executions:  uc.activity.Executions(ctx),
	}
}

// Settings are read-only; only the n8n and text-extraction URLs are dialed.
func (uc *DashboardUsecase) Settings() dto.SettingsDTO {
	return dto.SettingsDTO{
		N8NURL:         uc.n8n.BaseURL(),
		DatabaseURL:    config.MaskDSN(uc.display.DatabaseURL),
		OllamaURL:      uc.display.OllamaURL,
		TextExtractURL: uc.extractor.BaseURL(),
	}
}
