package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fadilmartias/hiring-dashboard/internal/dto"
	"github.com/fadilmartias/hiring-dashboard/internal/model"
	"github.com/fadilmartias/hiring-dashboard/internal/service"
	"github.com/fadilmartias/hiring-dashboard/internal/util"
	log "github.com/sirupsen/logrus"
)

const msgGoalMissingFields = "Please fill in title and description"

type GoalUsecase struct {
	n8n      service.N8NServiceInterface
	activity *ActivityUsecase
}

func NewGoalUsecase(n8n service.N8NServiceInterface, activity *ActivityUsecase) *GoalUsecase {
	return &GoalUsecase{n8n: n8n, activity: activity}
}

// Create validates the draft and posts it to the create-goal webhook. An
// invalid draft returns *util.ValidationError without touching the network.
func (uc *GoalUsecase) Create(ctx context.Context, req dto.CreateGoalRequest) (json.RawMessage, error) {
	goal, err := buildGoalDraft(req)
	if err != nil {
		return nil, err
	}

	out, err := uc.n8n.CreateGoal(ctx, goal)
	if err != nil {
		log.WithError(err).WithField("title", goal.Title).Error("goal submission failed")
		uc.activity.Record(ctx, model.ActivityGoal, model.UploadStatusError, goal.Title, err.Error())
		return nil, err
	}

	log.WithField("title", goal.Title).WithField("priority", goal.Priority).Info("goal submitted to n8n")
	uc.activity.Record(ctx, model.ActivityGoal, model.UploadStatusSuccess, goal.Title, "")
	return out, nil
}

func buildGoalDraft(req dto.CreateGoalRequest) (model.GoalDraft, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Priority = strings.ToLower(strings.TrimSpace(req.Priority))

	missing := map[string]string{}
	if req.Title == "" {
		missing["title"] = "title is required"
	}
	if req.Description == "" {
		missing["description"] = "description is required"
	}
	if len(missing) > 0 {
		return model.GoalDraft{}, util.NewValidationError(msgGoalMissingFields, missing)
	}

	if req.TargetPositions == 0 {
		req.TargetPositions = 1
	}
	if req.Priority == "" {
		req.Priority = string(model.PriorityMedium)
	}
	if err := util.ValidateStruct(req, "Invalid goal"); err != nil {
		return model.GoalDraft{}, err
	}

	return model.GoalDraft{
		Title:           req.Title,
		Description:     req.Description,
		TargetPositions: req.TargetPositions,
		Priority:        model.Priority(req.Priority),
	}, nil
}
