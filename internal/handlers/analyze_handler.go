package handlers

import (
	"github.com/gofiber/fiber/v2"

	"cvmatch/cv-job-match/internal/models"
	"cvmatch/cv-job-match/internal/services"
)

// AnalyzeHandler exposes the three operations as individually callable
// JSON endpoints.
type AnalyzeHandler struct {
	analyzer services.AnalyzerService
}

func NewAnalyzeHandler(analyzer services.AnalyzerService) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer}
}

// HandleAnalyzeCv handles POST /analyze-cv
func (h *AnalyzeHandler) HandleAnalyzeCv(c *fiber.Ctx) error {
	var req models.AnalyzeCvRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.CvDataURI == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cv_data_uri is required",
		})
	}

	result, err := h.analyzer.AnalyzeCv(c.UserContext(), req)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

// HandleAnalyzeJob handles POST /analyze-job
func (h *AnalyzeHandler) HandleAnalyzeJob(c *fiber.Ctx) error {
	var req models.AnalyzeJobRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	result, err := h.analyzer.AnalyzeJobDescription(c.UserContext(), req)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

// HandleMatch handles POST /match
func (h *AnalyzeHandler) HandleMatch(c *fiber.Ctx) error {
	var req models.MatchRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	if req.CvText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "cv_text is required",
		})
	}

	result, err := h.analyzer.MatchCvToJob(c.UserContext(), req)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}
