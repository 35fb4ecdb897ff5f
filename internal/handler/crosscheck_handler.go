package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"vergos/internal/domain"
	"vergos/internal/service"
)

// CrossCheckHandler handles reconciliation endpoints.
type CrossCheckHandler struct {
	crossCheckService service.CrossCheckService
}

// NewCrossCheckHandler creates a new CrossCheckHandler.
func NewCrossCheckHandler(crossCheckService service.CrossCheckService) *CrossCheckHandler {
	return &CrossCheckHandler{crossCheckService: crossCheckService}
}

// Run handles POST /api/v1/crosscheck.
// The body is one period's parsed documents; the response wraps the full
// reconciliation report. Missing documents are not an error — they surface
// as skip results inside the report.
func (h *CrossCheckHandler) Run(c *gin.Context) {
	var input domain.CrossCheckInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", "request body is not a valid cross-check input")
		return
	}

	report := h.crossCheckService.Run(c.Request.Context(), &input)

	requestID, _ := c.Get("request_id")
	log.Printf("[%s] cross-check completed — checks=%d critical=%d warnings=%d",
		requestID, report.Summary.Total, report.Summary.CriticalIssues, report.Summary.Warnings)

	RespondOK(c, report)
}

// Export handles POST /api/v1/crosscheck/export?format=csv|xlsx.
// It runs the engine and streams the serialized report as a download.
func (h *CrossCheckHandler) Export(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", string(service.FormatCSV)))
	if format != service.FormatCSV && format != service.FormatXLSX {
		HandleError(c, domain.ErrUnsupportedFormat)
		return
	}

	var input domain.CrossCheckInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", "request body is not a valid cross-check input")
		return
	}

	c.Header("Content-Type", format.ContentType())
	c.Header("Content-Disposition", `attachment; filename="`+format.Filename()+`"`)
	c.Status(http.StatusOK)

	if err := h.crossCheckService.Export(c.Request.Context(), &input, format, c.Writer); err != nil {
		// Headers are already written; log and abort the stream.
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] export failed: %v", requestID, err)
		c.Abort()
	}
}
