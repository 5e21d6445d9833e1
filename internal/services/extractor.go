package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Media types accepted for uploaded CVs.
const (
	MimeTextPlain = "text/plain"
	MimePdf       = "application/pdf"
	MimeDoc       = "application/msword"
	MimeDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ExtractionFallback replaces the CV text when extraction fails. The match
// operation still runs with this degraded input.
const ExtractionFallback = "Could not decode the CV file content as text."

type TextExtractorService interface {
	ExtractText(data []byte, mediaType string) (string, error)
}

type textExtractorService struct{}

func NewTextExtractorService() TextExtractorService {
	return &textExtractorService{}
}

// ExtractText returns a plain-text rendition of the uploaded file. Legacy
// .doc files have no supported decoder and always fail here; callers decide
// how to degrade.
func (t *textExtractorService) ExtractText(data []byte, mediaType string) (string, error) {
	switch mediaType {
	case MimeTextPlain:
		return string(data), nil
	case MimePdf:
		return extractPdfText(data)
	case MimeDocx:
		return extractDocxText(data)
	default:
		return "", fmt.Errorf("unsupported media type: %s", mediaType)
	}
}

func extractPdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("no text content found in docx")
	}

	return content, nil
}
