package handlers

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"cvmatch/cv-job-match/internal/services"
)

var allowedMediaTypes = map[string]bool{
	services.MimeTextPlain: true,
	services.MimePdf:       true,
	services.MimeDoc:       true,
	services.MimeDocx:      true,
}

var extensionMediaTypes = map[string]string{
	".txt":  services.MimeTextPlain,
	".pdf":  services.MimePdf,
	".doc":  services.MimeDoc,
	".docx": services.MimeDocx,
}

// SubmissionHandler accepts one multipart form submission and runs the
// whole analysis fan-out. Validation failures are reported per field and
// block the submission before any model call is made.
type SubmissionHandler struct {
	submissionService services.SubmissionService
	maxFileSize       int64
	minJobDescChars   int
}

func NewSubmissionHandler(
	submissionService services.SubmissionService,
	maxFileSize int64,
	minJobDescChars int,
) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		maxFileSize:       maxFileSize,
		minJobDescChars:   minJobDescChars,
	}
}

// HandleSubmit handles POST /submissions
func (h *SubmissionHandler) HandleSubmit(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	fieldErrors := fiber.Map{}

	var jobDescription string
	if values := form.Value["job_description"]; len(values) > 0 {
		jobDescription = values[0]
	}
	if utf8.RuneCountInString(jobDescription) < h.minJobDescChars {
		fieldErrors["job_description"] = fmt.Sprintf(
			"Job description must be at least %d characters.", h.minJobDescChars)
	}

	var cvFile *multipart.FileHeader
	var mediaType string
	files := form.File["cv_file"]
	switch {
	case len(files) != 1:
		fieldErrors["cv_file"] = "Exactly one CV file is required."
	case files[0].Size > h.maxFileSize:
		fieldErrors["cv_file"] = fmt.Sprintf(
			"CV file too large. Max size: %d bytes.", h.maxFileSize)
	default:
		cvFile = files[0]
		mediaType = resolveMediaType(cvFile)
		if !allowedMediaTypes[mediaType] {
			fieldErrors["cv_file"] = "Unsupported file type. Allowed: plain text, PDF, Word (.doc, .docx)."
		}
	}

	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": fieldErrors,
		})
	}

	src, err := cvFile.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to open uploaded file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}

	result, err := h.submissionService.Process(
		c.UserContext(), jobDescription, cvFile.Filename, mediaType, data)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

// resolveMediaType prefers the declared multipart content type and falls
// back to the file extension when the declaration is absent or unknown.
func resolveMediaType(file *multipart.FileHeader) string {
	declared := file.Header.Get(fiber.HeaderContentType)
	if declared != "" {
		if parsed, _, err := mime.ParseMediaType(declared); err == nil && allowedMediaTypes[parsed] {
			return parsed
		}
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if mt, ok := extensionMediaTypes[ext]; ok {
		return mt
	}

	return declared
}
