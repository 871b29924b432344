package handler

import (
	"github.com/fadilmartias/hiring-dashboard/internal/dto"
	"github.com/fadilmartias/hiring-dashboard/internal/middleware"
	"github.com/fadilmartias/hiring-dashboard/internal/usecase"
	"github.com/fadilmartias/hiring-dashboard/internal/util"
	"github.com/gofiber/fiber/v2"
)

const (
	msgGoalCreated = "Goal created! AI agent is now working autonomously."
	msgGoalFailed  = "Error creating goal. Make sure n8n is running."
)

type GoalHandler struct {
	uc   *usecase.GoalUsecase
	gate *middleware.BusyGate
}

func NewGoalHandler(uc *usecase.GoalUsecase, gate *middleware.BusyGate) *GoalHandler {
	return &GoalHandler{uc: uc, gate: gate}
}

func (h *GoalHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/goals", h.gate.Guard("goal"), h.Create)
}

func (h *GoalHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	out, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return util.HandleError(c, err, msgGoalFailed)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: msgGoalCreated,
		Data:    out,
	})
}
