package model

import (
	"time"

	"github.com/google/uuid"
)

type ActivityAction string

const (
	ActivityGoal    ActivityAction = "goal"
	ActivityResume  ActivityAction = "resume"
	ActivityRanking ActivityAction = "ranking"
)

// Activity records the outcome of one forwarded dashboard action.
type Activity struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Action    ActivityAction `gorm:"type:varchar(20);index" json:"action"`
	Status    UploadStatus   `gorm:"type:varchar(20);index" json:"status"` // success, partial, error
	Subject   string         `gorm:"type:text" json:"subject"`
	Detail    string         `gorm:"type:text" json:"detail"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
}

func (a *Activity) TableName() string {
	return "dashboard_activities"
}
