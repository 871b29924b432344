package usecase

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/fadilmartias/hiring-dashboard/internal/model"
	"github.com/fadilmartias/hiring-dashboard/internal/util"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleExtraction() *model.ExtractedResume {
	return &model.ExtractedResume{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Location:        "Austin, TX",
		ExperienceYears: 5,
		Skills:          []string{"python", "docker"},
		Raw:             json.RawMessage(`{"name":"Jane Doe","skills":["python","docker"]}`),
	}
}

func sampleFile() *model.ResumeFile {
	content := []byte("Jane Doe\njane@example.com\n5 years experience")
	return &model.ResumeFile{Name: "jane.txt", Size: int64(len(content)), Content: content}
}

func newUploadUsecase(extractor *fakeExtractor, n8n *fakeN8N) (*UploadUsecase, *ActivityUsecase) {
	activity, _ := newActivity()
	uc := NewUploadUsecase(extractor, n8n, activity, 5*1024*1024)
	uc.now = func() time.Time { return time.Date(2026, 10, 15, 8, 30, 0, 0, time.UTC) }
	return uc, activity
}

func TestUploadUsecase_Success(t *testing.T) {
	extractor := &fakeExtractor{result: sampleExtraction()}
	n8n := &fakeN8N{response: json.RawMessage(`{"candidate_id":"c-1"}`)}
	uc, activity := newUploadUsecase(extractor, n8n)

	result, err := uc.Upload(context.Background(), sampleFile())
	require.NoError(t, err)
	assert.Equal(t, model.UploadStatusSuccess, result.Status)
	require.NotNil(t, result.Extraction)
	assert.Equal(t, "Jane Doe", result.Extraction.Name)
	assert.JSONEq(t, `{"candidate_id":"c-1"}`, string(result.N8NProcessing))
	assert.Empty(t, result.Warning)

	require.Len(t, n8n.forwards, 1)
	fwd := n8n.forwards[0]
	assert.Equal(t, "jane.txt", fwd.OriginalFilename)
	assert.Equal(t, sampleFile().Size, fwd.FileSize)
	assert.Equal(t, "2026-10-15T08:30:00Z", fwd.UploadTimestamp)
	assert.JSONEq(t, string(sampleExtraction().Raw), string(fwd.ExtractedData))
	assert.Equal(t, int64(1), activity.Executions(context.Background()))
}

func TestUploadUsecase_PartialWhenForwardFails(t *testing.T) {
	extractor := &fakeExtractor{result: sampleExtraction()}
	n8n := &fakeN8N{forwardErr: errors.Wrap(util.ErrWebhookFailed, "status 500")}
	uc, activity := newUploadUsecase(extractor, n8n)

	result, err := uc.Upload(context.Background(), sampleFile())
	require.NoError(t, err)
	assert.Equal(t, model.UploadStatusPartial, result.Status)
	assert.NotNil(t, result.Extraction)
	assert.Nil(t, result.N8NProcessing)
	assert.Equal(t, msgForwardFailed, result.Warning)
	assert.Equal(t, int64(1), activity.Executions(context.Background()))
}

func TestUploadUsecase_ExtractionFailure(t *testing.T) {
	extractor := &fakeExtractor{err: &util.ExtractionError{Message: "Unsupported file type. Only PDF and TXT files are supported."}}
	n8n := &fakeN8N{}
	uc, activity := newUploadUsecase(extractor, n8n)

	result, err := uc.Upload(context.Background(), sampleFile())
	assert.Nil(t, result)
	var extractionErr *util.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.NotEmpty(t, extractionErr.Message)
	assert.Empty(t, n8n.forwards, "nothing is forwarded without extraction data")
	assert.Zero(t, activity.Executions(context.Background()))
}

func TestUploadUsecase_ValidationNeverCallsExtractor(t *testing.T) {
	big := make([]byte, 6*1024*1024)
	tests := []struct {
		name string
		file *model.ResumeFile
	}{
		{"no file", nil},
		{"no name", &model.ResumeFile{Size: 3, Content: []byte("abc")}},
		{"empty file", &model.ResumeFile{Name: "cv.txt"}},
		{"too large", &model.ResumeFile{Name: "cv.txt", Size: int64(len(big)), Content: big}},
		{"bad extension", &model.ResumeFile{Name: "cv.exe", Size: 3, Content: []byte("abc")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor := &fakeExtractor{result: sampleExtraction()}
			n8n := &fakeN8N{}
			uc, _ := newUploadUsecase(extractor, n8n)

			result, err := uc.Upload(context.Background(), tt.file)
			assert.Nil(t, result)
			var verr *util.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Zero(t, extractor.calls)
			assert.Empty(t, n8n.forwards)
		})
	}
}

func TestUploadUsecase_UnreadablePDFNeverReachesExtractor(t *testing.T) {
	extractor := &fakeExtractor{result: sampleExtraction()}
	uc, _ := newUploadUsecase(extractor, &fakeN8N{})

	content := []byte("this is not a pdf document")
	_, err := uc.Upload(context.Background(), &model.ResumeFile{Name: "cv.pdf", Size: int64(len(content)), Content: content})
	var verr *util.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, extractor.calls)
}

func TestUploadUsecase_ReadablePDFReachesExtractor(t *testing.T) {
	content, err := os.ReadFile("testdata/resume.pdf")
	require.NoError(t, err)

	extractor := &fakeExtractor{result: sampleExtraction()}
	n8n := &fakeN8N{response: json.RawMessage(`{"ok":true}`)}
	uc, _ := newUploadUsecase(extractor, n8n)

	result, err := uc.Upload(context.Background(), &model.ResumeFile{Name: "cv.pdf", Size: int64(len(content)), Content: content})
	require.NoError(t, err)
	assert.Equal(t, model.UploadStatusSuccess, result.Status)
	assert.Equal(t, 1, extractor.calls)
	require.Len(t, n8n.forwards, 1)
	assert.Equal(t, "cv.pdf", n8n.forwards[0].OriginalFilename)
}
