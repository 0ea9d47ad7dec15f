package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"medreport-assistant/internal/gateway"
	"medreport-assistant/pkg/response"
)

// maxUploadSize caps report photos at 8 MiB.
const maxUploadSize = 8 << 20

type AnalysisHandler struct {
	analyzer *gateway.Analyzer
}

func NewAnalysisHandler(analyzer *gateway.Analyzer) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer}
}

// Analyze accepts a multipart report image and returns the structured
// interpretation. The result is not stored; saving is a separate, explicit
// action against the reports endpoint.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "No file uploaded", nil)
		return
	}
	defer file.Close()

	mimeType, ok := imageMimeType(header.Filename)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Unsupported file type, upload a PNG, JPEG or WebP image", nil)
		return
	}

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Failed to read file content", nil)
		return
	}

	result, err := h.analyzer.Analyze(r.Context(), imageBytes, mimeType)
	if err != nil {
		response.BadGateway(w, "Failed to analyze report")
		return
	}

	response.Success(w, http.StatusOK, "Report analyzed successfully", result)
}

var imageMimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

func imageMimeType(filename string) (string, bool) {
	mimeType, ok := imageMimeTypes[strings.ToLower(filepath.Ext(filename))]
	return mimeType, ok
}
