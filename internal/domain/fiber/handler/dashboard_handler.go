package handler

import (
	"bytes"
	"strings"

	"github.com/fadilmartias/hiring-dashboard/internal/config"
	"github.com/fadilmartias/hiring-dashboard/internal/dto"
	"github.com/fadilmartias/hiring-dashboard/internal/usecase"
	"github.com/fadilmartias/hiring-dashboard/internal/util"
	"github.com/fadilmartias/hiring-dashboard/internal/view"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboard *usecase.DashboardUsecase
	workflows *usecase.WorkflowUsecase
	ranking   *usecase.RankingUsecase
	activity  *usecase.ActivityUsecase
	app       *config.AppConfig
}

func NewDashboardHandler(
	dashboard *usecase.DashboardUsecase,
	workflows *usecase.WorkflowUsecase,
	ranking *usecase.RankingUsecase,
	activity *usecase.ActivityUsecase,
	app *config.AppConfig,
) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		workflows: workflows,
		ranking:   ranking,
		activity:  activity,
		app:       app,
	}
}

func (h *DashboardHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.Page)
	app.Get("/api/dashboard", h.Stats)
	app.Get("/api/workflows", h.Workflows)
	app.Get("/api/settings", h.Settings)
	app.Get("/api/activities", h.Activities)
}

func (h *DashboardHandler) Page(c *fiber.Ctx) error {
	ctx := c.UserContext()
	workflows, live := h.workflows.List(ctx)
	info := h.ranking.Info()

	var buf bytes.Buffer
	err := view.RenderDashboard(&buf, view.Page{
		Title:            h.app.Name,
		ActiveTab:        c.Query("tab"),
		Stats:            h.dashboard.StatsFor(ctx, len(workflows)),
		Workflows:        workflows,
		WorkflowsLive:    live,
		EditorURL:        h.workflows.EditorURL(),
		Settings:         h.dashboard.Settings(),
		ScoringFactors:   info.ScoringFactors,
		FilteringOptions: info.FilteringOptions,
		RankingWebhook:   info.WebhookURL,
		Accept:           strings.Join(util.AllowedResumeExtensions, ","),
		MaxUploadMB:      h.app.UploadMaxSize / (1024 * 1024),
	})
	if err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get dashboard stats",
		Data:    h.dashboard.Stats(c.UserContext()),
	})
}

func (h *DashboardHandler) Workflows(c *fiber.Ctx) error {
	workflows, live := h.workflows.List(c.UserContext())
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get workflows",
		Data: dto.WorkflowListDTO{
			EditorURL: h.workflows.EditorURL(),
			Live:      live,
			Workflows: workflows,
		},
	})
}

func (h *DashboardHandler) Settings(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get settings",
		Data:    h.dashboard.Settings(),
	})
}

func (h *DashboardHandler) Activities(c *fiber.Ctx) error {
	activities, pagination, err := h.activity.List(c.UserContext(), c.QueryInt("page", 1), c.QueryInt("page_size", 20))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list activities",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get activities",
		Data:       activities,
		Pagination: pagination,
	})
}
