package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"facemetry/internal/facerr"
	"facemetry/internal/landmark"
)

func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HandleAnalyze runs the full pipeline: decode, landmark resolution,
// feature scoring and quality gating in one report.
func (h *Handler) HandleAnalyze(c *gin.Context) {
	var req imageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, facerr.Wrap(facerr.CodeInvalidInput, err))
		return
	}

	frame, ok := h.decodeFrame(c, req.Image)
	if !ok {
		return
	}

	set, ok := h.resolveLandmarks(c, frame, req.Landmarks)
	if !ok {
		return
	}

	report, err := h.analyzer.Analyze(c.Request.Context(), frame, set)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// HandleFeatures measures the facial features of a landmark set without
// scoring them.
func (h *Handler) HandleFeatures(c *gin.Context) {
	var req landmarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, facerr.Wrap(facerr.CodeInvalidInput, err))
		return
	}

	features, err := h.analyzer.ExtractFeatures(landmark.Set(req.Landmarks))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"features": features})
}

// HandleScore measures and scores a landmark set against the configured
// baselines.
func (h *Handler) HandleScore(c *gin.Context) {
	var req landmarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, facerr.Wrap(facerr.CodeInvalidInput, err))
		return
	}

	features, scores, err := h.analyzer.Score(landmark.Set(req.Landmarks))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"features": features, "scores": scores})
}

// HandleValidate runs the capture quality gate alone.
func (h *Handler) HandleValidate(c *gin.Context) {
	var req imageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, facerr.Wrap(facerr.CodeInvalidInput, err))
		return
	}

	frame, ok := h.decodeFrame(c, req.Image)
	if !ok {
		return
	}

	set, ok := h.resolveLandmarks(c, frame, req.Landmarks)
	if !ok {
		return
	}

	check, err := h.analyzer.Validate(frame, set)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, check)
}
