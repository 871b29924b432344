package service

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/fadilmartias/hiring-dashboard/internal/config"
	"github.com/fadilmartias/hiring-dashboard/internal/model"
	"github.com/fadilmartias/hiring-dashboard/internal/util"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const extractPath = "/extract"

type TextExtractServiceInterface interface {
	Extract(ctx context.Context, file model.ResumeFile) (*model.ExtractedResume, error)
	BaseURL() string
}

type TextExtractService struct {
	client  *resty.Client
	baseURL string
}

func NewTextExtractService(cfg *config.TextExtractConfig) *TextExtractService {
	return &TextExtractService{
		client:  instrument(resty.New().SetBaseURL(cfg.BaseURL).SetTimeout(cfg.Timeout), "text-extract"),
		baseURL: cfg.BaseURL,
	}
}

func (s *TextExtractService) BaseURL() string {
	return s.baseURL
}

// Extract uploads the file as multipart field "file". Every failure comes
// back as *util.ExtractionError carrying a message fit for the user.
func (s *TextExtractService) Extract(ctx context.Context, file model.ResumeFile) (*model.ExtractedResume, error) {
	logger := log.WithField("service", "text-extract").WithField("file_name", file.Name)

	resp, err := s.client.R().
		SetContext(ctx).
		SetFileReader("file", file.Name, bytes.NewReader(file.Content)).
		Post(extractPath)
	if err != nil {
		logger.WithError(err).Error("text extraction request failed")
		return nil, &util.ExtractionError{Message: err.Error(), Err: err}
	}

	body := resp.String()
	if resp.IsError() {
		message := gjson.Get(body, "detail").String()
		if message == "" {
			message = "Upload failed"
		}
		logger.WithField("status", resp.StatusCode()).WithField("response_body", body).Error("text extraction returned error status")
		return nil, &util.ExtractionError{
			Message: message,
			Err:     errors.Errorf("extract returned %d", resp.StatusCode()),
		}
	}
	if !gjson.Valid(body) {
		logger.WithField("response_body", body).Error("text extraction returned invalid JSON")
		return nil, &util.ExtractionError{Message: "Upload failed", Err: errors.New("invalid JSON from extractor")}
	}

	logger.Info("text extraction succeeded")
	return ParseExtraction(resp.Body()), nil
}

// ParseExtraction reads the known fields without enforcing a schema; missing
// or mistyped fields are left at their zero value.
func ParseExtraction(raw []byte) *model.ExtractedResume {
	doc := gjson.ParseBytes(raw)
	extracted := &model.ExtractedResume{
		Name:            doc.Get("name").String(),
		Email:           doc.Get("email").String(),
		Location:        doc.Get("location").String(),
		ExperienceYears: doc.Get("experience_years").Float(),
		Skills:          []string{},
		Raw:             json.RawMessage(raw),
	}
	for _, skill := range doc.Get("skills").Array() {
		if s := skill.String(); s != "" {
			extracted.Skills = append(extracted.Skills, s)
		}
	}
	return extracted
}
