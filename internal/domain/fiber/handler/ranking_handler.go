package handler

import (
	"github.com/fadilmartias/hiring-dashboard/internal/dto"
	"github.com/fadilmartias/hiring-dashboard/internal/middleware"
	"github.com/fadilmartias/hiring-dashboard/internal/usecase"
	"github.com/fadilmartias/hiring-dashboard/internal/util"
	"github.com/gofiber/fiber/v2"
)

const msgRankingFailed = "Error ranking candidates. Make sure n8n is running."

type RankingHandler struct {
	uc   *usecase.RankingUsecase
	gate *middleware.BusyGate
}

func NewRankingHandler(uc *usecase.RankingUsecase, gate *middleware.BusyGate) *RankingHandler {
	return &RankingHandler{uc: uc, gate: gate}
}

func (h *RankingHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/rankings", h.Info)
	app.Post("/api/rankings", h.gate.Guard("ranking"), h.Rank)
}

func (h *RankingHandler) Info(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get ranking configuration",
		Data:    h.uc.Info(),
	})
}

func (h *RankingHandler) Rank(c *fiber.Ctx) error {
	var req dto.RankingRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	out, err := h.uc.Rank(c.UserContext(), req)
	if err != nil {
		return util.HandleError(c, err, msgRankingFailed)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Candidates ranked",
		Data:    out,
	})
}
