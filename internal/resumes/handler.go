package resumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amychanwt/apply-boost/internal/shared/server/respond"
	"github.com/amychanwt/apply-boost/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resume/upload", h.upload)
	rg.DELETE("/resume/:fileId", h.delete)
}

func (h *Handler) upload(c *gin.Context) {
	// Bound the whole request body; the per-file limit is checked below.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes+(1<<20))

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Message(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != MimePDF {
		respond.Message(c, http.StatusBadRequest, "Only PDF files are allowed")
		return
	}
	if fileHeader.Size > h.MaxUploadBytes {
		respond.Message(c, http.StatusBadRequest, "File too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Message(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	res, err := h.Svc.Upload(c.Request.Context(), fileHeader.Filename, contentType, file)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.Message(c, http.StatusBadRequest, "Only PDF files are allowed")
			return
		}
		respond.Message(c, http.StatusInternalServerError, "Failed to upload resume")
		return
	}
	c.Set("fileId", res.FileID)

	ins, kws, err := h.Svc.Analyze(c.Request.Context(), res.FileID)
	if err != nil {
		// Storage success is independent of analysis success: the upload is
		// confirmed even when analysis cannot run.
		telemetry.Warn("resume.analysis.failed", map[string]any{
			"file_id":    res.FileID,
			"err":        err.Error(),
			"request_id": c.GetString("requestId"),
		})
		respond.JSON(c, http.StatusOK, gin.H{
			"message":       "Resume uploaded but analysis failed",
			"url":           "/uploads/" + res.FileID,
			"fileId":        res.FileID,
			"analysisError": "Failed to analyze resume",
		})
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"message":  "Resume uploaded and analyzed successfully",
		"url":      "/uploads/" + res.FileID,
		"fileId":   res.FileID,
		"insights": ins,
		"keywords": kws,
	})
}

func (h *Handler) delete(c *gin.Context) {
	fileID := c.Param("fileId")
	c.Set("fileId", fileID)

	if err := h.Svc.Delete(c.Request.Context(), fileID); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Message(c, http.StatusNotFound, "File not found")
			return
		}
		respond.Message(c, http.StatusInternalServerError, "Failed to delete resume")
		return
	}

	respond.Message(c, http.StatusOK, "Resume deleted successfully")
}
