package usecase

import (
	"context"
	"math"
	"time"

	"github.com/fadilmartias/hiring-dashboard/internal/metrics"
	"github.com/fadilmartias/hiring-dashboard/internal/model"
	"github.com/fadilmartias/hiring-dashboard/internal/repository"
	"github.com/fadilmartias/hiring-dashboard/internal/response"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ActivityUsecase struct {
	repo repository.ActivityRepositoryInterface
	now  func() time.Time
}

func NewActivityUsecase(repo repository.ActivityRepositoryInterface) *ActivityUsecase {
	return &ActivityUsecase{repo: repo, now: time.Now}
}

// Record stores the outcome of a forwarded action. Failing to record never
// changes the outcome reported to the user.
func (uc *ActivityUsecase) Record(ctx context.Context, action model.ActivityAction, status model.UploadStatus, subject, detail string) {
	metrics.ActionOutcomes.WithLabelValues(string(action), string(status)).Inc()
	activity := &model.Activity{
		ID:        uuid.New(),
		Action:    action,
		Status:    status,
		Subject:   subject,
		Detail:    detail,
		CreatedAt: uc.now().UTC(),
	}
	if err := uc.repo.Create(ctx, activity); err != nil {
		log.WithError(err).
			WithField("action", action).
			WithField("status", status).
			Warn("could not record dashboard activity")
	}
}

func (uc *ActivityUsecase) List(ctx context.Context, page, pageSize int) ([]model.Activity, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	// keep (page-1)*pageSize+pageSize within int
	if maxPage := math.MaxInt / pageSize; page > maxPage {
		page = maxPage
	}
	offset := (page - 1) * pageSize
	activities, total, err := uc.repo.List(ctx, offset, pageSize)
	if err != nil {
		return nil, nil, err
	}
	return activities, response.NewPagination(page, pageSize, total, len(activities)), nil
}

func (uc *ActivityUsecase) GoalsSubmitted(ctx context.Context) int64 {
	n, err := uc.repo.CountByAction(ctx, model.ActivityGoal, model.UploadStatusSuccess)
	if err != nil {
		log.WithError(err).Warn("could not count submitted goals")
	}
	return n
}

func (uc *ActivityUsecase) Executions(ctx context.Context) int64 {
	n, err := uc.repo.CountByStatus(ctx, model.UploadStatusSuccess, model.UploadStatusPartial)
	if err != nil {
		log.WithError(err).Warn("could not count executions")
	}
	return n
}
