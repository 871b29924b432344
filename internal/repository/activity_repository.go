package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/fadilmartias/hiring-dashboard/internal/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ActivityRepositoryInterface interface {
	Create(ctx context.Context, activity *model.Activity) error
	List(ctx context.Context, offset, limit int) ([]model.Activity, int64, error)
	CountByAction(ctx context.Context, action model.ActivityAction, statuses ...model.UploadStatus) (int64, error)
	CountByStatus(ctx context.Context, statuses ...model.UploadStatus) (int64, error)
}

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(activity).Error, "create activity")
}

func (r *ActivityRepository) List(ctx context.Context, offset, limit int) ([]model.Activity, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Activity{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count activities")
	}
	var activities []model.Activity
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&activities).Error
	return activities, total, errors.Wrap(err, "list activities")
}

func (r *ActivityRepository) CountByAction(ctx context.Context, action model.ActivityAction, statuses ...model.UploadStatus) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Activity{}).Where("action = ?", action)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	err := q.Count(&n).Error
	return n, errors.Wrap(err, "count activities by action")
}

func (r *ActivityRepository) CountByStatus(ctx context.Context, statuses ...model.UploadStatus) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Activity{})
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	err := q.Count(&n).Error
	return n, errors.Wrap(err, "count activities by status")
}

// DefaultMemoryActivityLimit is how many activities the in-memory log keeps.
const DefaultMemoryActivityLimit = 1000

// MemoryActivityRepository keeps the most recent activities in process
// memory. It is used when no database is configured; older entries are
// dropped once limit is reached.
type MemoryActivityRepository struct {
	mu         sync.RWMutex
	activities []model.Activity
	limit      int
}

func NewMemoryActivityRepository() *MemoryActivityRepository {
	return NewMemoryActivityRepositoryWithLimit(DefaultMemoryActivityLimit)
}

func NewMemoryActivityRepositoryWithLimit(limit int) *MemoryActivityRepository {
	if limit <= 0 {
		limit = DefaultMemoryActivityLimit
	}
	return &MemoryActivityRepository{limit: limit}
}

func (r *MemoryActivityRepository) Create(_ context.Context, activity *model.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities = append(r.activities, *activity)
	if over := len(r.activities) - r.limit; over > 0 {
		kept := make([]model.Activity, r.limit)
		copy(kept, r.activities[over:])
		r.activities = kept
	}
	return nil
}

func (r *MemoryActivityRepository) List(_ context.Context, offset, limit int) ([]model.Activity, int64, error) {
	r.mu.RLock()
	sorted := make([]model.Activity, len(r.activities))
	copy(sorted, r.activities)
	r.mu.RUnlock()

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	total := int64(len(sorted))
	if offset < 0 || limit <= 0 || offset >= len(sorted) {
		return []model.Activity{}, total, nil
	}
	end := len(sorted)
	if limit < end-offset {
		end = offset + limit
	}
	return sorted[offset:end], total, nil
}

func (r *MemoryActivityRepository) CountByAction(_ context.Context, action model.ActivityAction, statuses ...model.UploadStatus) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, a := range r.activities {
		if a.Action == action && statusIn(a.Status, statuses) {
			n++
		}
	}
	return n, nil
}

func (r *MemoryActivityRepository) CountByStatus(_ context.Context, statuses ...model.UploadStatus) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, a := range r.activities {
		if statusIn(a.Status, statuses) {
			n++
		}
	}
	return n, nil
}

func statusIn(status model.UploadStatus, statuses []model.UploadStatus) bool {
	if len(statuses) == 0 {
		return true
	}
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
