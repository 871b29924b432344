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

type RankingUsecase struct {
	n8n      service.N8NServiceInterface
	activity *ActivityUsecase
}

func NewRankingUsecase(n8n service.N8NServiceInterface, activity *ActivityUsecase) *RankingUsecase {
	return &RankingUsecase{n8n: n8n, activity: activity}
}

// Rank forwards the job description id and filters to the ranking workflow and
// returns its answer as is. Scoring happens inside n8n.
func (uc *RankingUsecase) Rank(ctx context.Context, req dto.RankingRequest) (json.RawMessage, error) {
	req.JDID = strings.TrimSpace(req.JDID)
	if err := util.ValidateStruct(req, "Please provide a job description ID"); err != nil {
		return nil, err
	}

	out, err := uc.n8n.RankCandidates(ctx, toRankingRequest(req))
	if err != nil {
		log.WithError(err).WithField("jd_id", req.JDID).Error("ranking request failed")
		uc.activity.Record(ctx, model.ActivityRanking, model.UploadStatusError, req.JDID, err.Error())
		return nil, err
	}
	uc.activity.Record(ctx, model.ActivityRanking, model.UploadStatusSuccess, req.JDID, "")
	return out, nil
}

// Info is the static explanation shown on the ranking panel.
func (uc *RankingUsecase) Info() RankingInfo {
	return RankingInfo{
		ScoringFactors:   model.ScoringFactors,
		FilteringOptions: model.FilteringOptions,
		WebhookURL:       uc.n8n.WebhookURL("/webhook/rank-candidates"),
	}
}

type RankingInfo struct {
	ScoringFactors   []model.ScoringFactor `json:"scoring_factors"`
	FilteringOptions []string              `json:"filtering_options"`
	WebhookURL       string                `json:"webhook_url"`
}

func toRankingRequest(req dto.RankingRequest) model.RankingRequest {
	out := model.RankingRequest{JDID: req.JDID}
	if f := req.Filters; f != nil {
		out.Filters = &model.RankingFilters{
			Location:           strings.TrimSpace(f.Location),
			MinExperienceYears: f.MinExperienceYears,
			WorkAuthorization:  strings.TrimSpace(f.WorkAuthorization),
			Custom:             strings.TrimSpace(f.Custom),
			Limit:              f.Limit,
		}
	}
	return out
}
