package util

import (
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// AllowedResumeExtensions are the file types the dashboard accepts. The
// extraction service has the final say on what it can parse.
var AllowedResumeExtensions = []string{".pdf", ".doc", ".docx", ".txt", ".md"}

func IsAllowedResumeFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range AllowedResumeExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func IsPDF(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".pdf")
}

// InspectPDF opens the document with MuPDF and returns its page count. It
// only checks that the file is a readable PDF with at least one page.
func InspectPDF(content []byte) (int, error) {
	doc, err := fitz.NewFromMemory(content)
	if err != nil {
		return 0, errors.Wrap(err, "failed to open PDF")
	}
	defer doc.Close()

	pages := doc.NumPage()
	if pages == 0 {
		return 0, errors.New("PDF has no pages")
	}
	log.WithField("pages", pages).Debug("PDF inspected")
	return pages, nil
}
