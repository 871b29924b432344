package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/hiring-dashboard/internal/model"
	"github.com/fadilmartias/hiring-dashboard/internal/service"
	"github.com/fadilmartias/hiring-dashboard/internal/util"
	log "github.com/sirupsen/logrus"
)

const msgForwardFailed = "Text extracted successfully, but workflow processing failed. Check n8n logs."

type UploadUsecase struct {
	extractor service.TextExtractServiceInterface
	n8n       service.N8NServiceInterface
	activity  *ActivityUsecase
	maxSize   int64
	now       func() time.Time
}

func NewUploadUsecase(extractor service.TextExtractServiceInterface, n8n service.N8NServiceInterface, activity *ActivityUsecase, maxSize int64) *UploadUsecase {
	return &UploadUsecase{
		extractor: extractor,
		n8n:       n8n,
		activity:  activity,
		maxSize:   maxSize,
		now:       time.Now,
	}
}

// Upload sends the file to the extractor and forwards the result to n8n.
//
// Outcomes: a nil result with *util.ValidationError or *util.ExtractionError
// when nothing could be extracted; status partial when only the forward
// failed; status success otherwise.
func (uc *UploadUsecase) Upload(ctx context.Context, file *model.ResumeFile) (*model.UploadResult, error) {
	if err := uc.validate(file); err != nil {
		return nil, err
	}
	logger := log.WithField("file_name", file.Name).WithField("file_size", file.Size)

	extraction, err := uc.extractor.Extract(ctx, *file)
	if err != nil {
		logger.WithError(err).Error("resume extraction failed")
		uc.activity.Record(ctx, model.ActivityResume, model.UploadStatusError, file.Name, err.Error())
		return nil, err
	}

	processing, err := uc.n8n.ForwardResume(ctx, model.ResumeForward{
		ExtractedData:    extraction.Raw,
		OriginalFilename: file.Name,
		FileSize:         file.Size,
		UploadTimestamp:  uc.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		logger.WithError(err).Warn("resume extracted but n8n forwarding failed")
		uc.activity.Record(ctx, model.ActivityResume, model.UploadStatusPartial, file.Name, err.Error())
		return &model.UploadResult{
			Extraction: extraction,
			Status:     model.UploadStatusPartial,
			Warning:    msgForwardFailed,
		}, nil
	}

	logger.Info("resume processed")
	uc.activity.Record(ctx, model.ActivityResume, model.UploadStatusSuccess, file.Name, "")
	return &model.UploadResult{
		Extraction:    extraction,
		N8NProcessing: processing,
		Status:        model.UploadStatusSuccess,
	}, nil
}

func (uc *UploadUsecase) validate(file *model.ResumeFile) error {
	if file == nil || file.Name == "" {
		return util.NewValidationError("Please select a file", map[string]string{"file": "file is required"})
	}
	if file.Size <= 0 || len(file.Content) == 0 {
		return util.NewValidationError("The selected file is empty", map[string]string{"file": "file is empty"})
	}
	if uc.maxSize > 0 && file.Size > uc.maxSize {
		return util.NewValidationError(
			fmt.Sprintf("file size is too large (max %dMB)", uc.maxSize/(1024*1024)),
			map[string]string{"file": "file is too large"},
		)
	}
	if !util.IsAllowedResumeFile(file.Name) {
		return util.NewValidationError("unsupported file type", map[string]string{"file": "allowed types: .pdf, .doc, .docx, .txt, .md"})
	}
	if util.IsPDF(file.Name) {
		pages, err := util.InspectPDF(file.Content)
		if err != nil {
			log.WithError(err).WithField("file_name", file.Name).Warn("rejected unreadable PDF")
			return util.NewValidationError("The selected PDF could not be read", map[string]string{"file": "file is not a readable PDF"})
		}
		log.WithField("file_name", file.Name).WithField("pages", pages).Debug("PDF accepted")
	}
	return nil
}
