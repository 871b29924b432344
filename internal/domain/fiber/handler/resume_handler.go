package handler

import (
	"io"

	"github.com/fadilmartias/hiring-dashboard/internal/middleware"
	"github.com/fadilmartias/hiring-dashboard/internal/model"
	"github.com/fadilmartias/hiring-dashboard/internal/usecase"
	"github.com/fadilmartias/hiring-dashboard/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

const msgUploadFailed = "Upload failed"

type ResumeHandler struct {
	uc   *usecase.UploadUsecase
	gate *middleware.BusyGate
}

func NewResumeHandler(uc *usecase.UploadUsecase, gate *middleware.BusyGate) *ResumeHandler {
	return &ResumeHandler{uc: uc, gate: gate}
}

func (h *ResumeHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/resumes", h.gate.Guard("resume"), h.Upload)
}

func (h *ResumeHandler) Upload(c *fiber.Ctx) error {
	file, err := readResumeFile(c, "file")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "cannot read uploaded file",
		}, err)
	}

	result, err := h.uc.Upload(c.UserContext(), file)
	if err != nil {
		return util.HandleError(c, err, msgUploadFailed)
	}

	message := "Resume uploaded and processed successfully"
	if result.Status == model.UploadStatusPartial {
		message = result.Warning
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: message,
		Data:    result,
	})
}

// readResumeFile returns nil without error when the form has no file, so the
// usecase can report it as a validation error.
func readResumeFile(c *fiber.Ctx, field string) (*model.ResumeFile, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	f, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open multipart file")
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrap(err, "read multipart file")
	}
	return &model.ResumeFile{
		Name:    header.Filename,
		Size:    header.Size,
		Content: content,
	}, nil
}
