// Package server exposes the analysis engine over HTTP for the capture
// frontend and batch callers.
package server

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"facemetry/internal/analysis"
	"facemetry/internal/capture"
	"facemetry/internal/facerr"
	"facemetry/internal/landmark"
	"facemetry/internal/meshclient"
	"facemetry/pkg/log"
)

// Handler serves the analysis API.
type Handler struct {
	analyzer *analysis.Analyzer
	loader   *capture.Loader
	source   meshclient.Source
}

// NewHandler creates the handler over an analyzer, an image loader and a
// landmark source.
func NewHandler(analyzer *analysis.Analyzer, loader *capture.Loader, source meshclient.Source) *Handler {
	return &Handler{
		analyzer: analyzer,
		loader:   loader,
		source:   source,
	}
}

// imageRequest carries a base64-encoded image and an optional landmark set.
// A missing landmarks field means the mesh service should be queried; an
// explicit empty array means the caller already knows no face was found.
type imageRequest struct {
	Image     string           `json:"image" binding:"required"`
	Landmarks []landmark.Point `json:"landmarks"`
}

// landmarksRequest carries a landmark set alone, for the endpoints that
// never look at pixels.
type landmarksRequest struct {
	Landmarks []landmark.Point `json:"landmarks"`
}

// decodeFrame turns the base64 payload into an RGBA frame, responding with
// the mapped error on failure.
func (h *Handler) decodeFrame(c *gin.Context, payload string) (capture.Frame, bool) {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		respondError(c, facerr.Wrap(facerr.CodeInvalidImage, fmt.Errorf("decode image payload: %w", err)))
		return capture.Frame{}, false
	}

	frame, err := h.loader.Decode(bytes.NewReader(data))
	if err != nil {
		respondError(c, err)
		return capture.Frame{}, false
	}

	return frame, true
}

// resolveLandmarks returns the caller-provided set when the field was
// present, otherwise asks the configured landmark source.
func (h *Handler) resolveLandmarks(c *gin.Context, frame capture.Frame, points []landmark.Point) (landmark.Set, bool) {
	if points != nil {
		return landmark.Set(points), true
	}

	set, err := h.source.Detect(c.Request.Context(), frame)
	if err != nil {
		respondError(c, err)
		return nil, false
	}

	return set, true
}

// respondError writes the {error, code} envelope with the status mapped
// from the stable code.
func respondError(c *gin.Context, err error) {
	code, ok := facerr.CodeOf(err)
	if !ok {
		code = facerr.CodeAnalysisFailed
	}

	status := statusForCode(code)
	if status >= http.StatusInternalServerError {
		log.Error(log.Fields{
			"code":  string(code),
			"error": err.Error(),
			"path":  c.FullPath(),
		}, "request failed")
	}

	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}

// statusForCode maps the stable engine codes onto HTTP statuses.
func statusForCode(code facerr.Code) int {
	switch code {
	case facerr.CodeInvalidImage:
		return http.StatusBadRequest
	case facerr.CodeInvalidInput, facerr.CodeInsufficientLandmarks, facerr.CodeMissingLandmark:
		return http.StatusUnprocessableEntity
	case facerr.CodeDetectorUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
