package model

import "encoding/json"

type UploadStatus string

const (
	UploadStatusSuccess UploadStatus = "success"
	UploadStatusPartial UploadStatus = "partial"
	UploadStatusError   UploadStatus = "error"
)

// ResumeFile is a file received from the dashboard, held only for one upload.
type ResumeFile struct {
	Name    string
	Size    int64
	Content []byte
}

// ExtractedResume is what the text-extraction service returned. Raw is kept
// verbatim so it can be forwarded to n8n untouched.
type ExtractedResume struct {
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Location        string          `json:"location"`
	ExperienceYears float64         `json:"experience_years"`
	Skills          []string        `json:"skills"`
	Raw             json.RawMessage `json:"-"`
}

// ResumeForward is the body of the resume-upload webhook.
type ResumeForward struct {
	ExtractedData    json.RawMessage `json:"extracted_data"`
	OriginalFilename string          `json:"original_filename"`
	FileSize         int64           `json:"file_size"`
	UploadTimestamp  string          `json:"upload_timestamp"`
}

type UploadResult struct {
	Extraction    *ExtractedResume `json:"extraction"`
	N8NProcessing json.RawMessage  `json:"n8n_processing"`
	Status        UploadStatus     `json:"status"`
	Warning       string           `json:"warning,omitempty"`
}
