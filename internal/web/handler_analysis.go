package web

import (
	"bytes"
	"encoding/base64"
	"io"
	"net/http"

	"github.com/TECH-MENTORING-EU/FoodRescue/internal/domain"
)

// maxPhotoBytes bounds uploads; phone photos are a few MB.
const maxPhotoBytes = 20 << 20

type analysisPayload struct {
	ID          string        `json:"id"`
	ImageBase64 string        `json:"image_base64,omitempty"`
	Caption     string        `json:"caption"`
	ItemTable   string        `json:"item_table"`
	Items       []itemPayload `json:"items"`
	CreatedAt   string        `json:"created_at"`
}

type itemPayload struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func toAnalysisPayload(r domain.FoodAnalysisResult, includeImage bool) analysisPayload {
	p := analysisPayload{
		ID:        r.ID.String(),
		Caption:   r.Caption,
		ItemTable: r.ItemTable,
		Items:     make([]itemPayload, 0, len(r.Items)),
		CreatedAt: r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if includeImage {
		p.ImageBase64 = r.ImageBase64
	}
	for _, it := range r.Items {
		p.Items = append(p.Items, itemPayload{Name: it.Name, Quantity: it.Quantity})
	}
	return p
}

// handleAnalyzePhoto accepts a multipart photo upload, hands it to the
// vision collaborator and records the result. The stored record carries
// whatever the collaborator returned, verbatim.
func (s *Server) handleAnalyzePhoto(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		http.Error(w, "photo file required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes))
	if err != nil {
		http.Error(w, "failed to read photo", http.StatusBadRequest)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	analysis, err := s.analyzer.Analyze(r.Context(), bytes.NewReader(imageData), mimeType)
	if err != nil {
		s.logger.Error("photo analysis failed", "error", err)
		http.Error(w, "failed to analyze photo", http.StatusInternalServerError)
		return
	}

	result := s.analyses.Add(
		base64.StdEncoding.EncodeToString(imageData),
		analysis.Caption,
		analysis.ItemTable,
	)

	s.logger.Info("photo analyzed", "analysis_id", result.ID, "items", len(result.Items))
	s.writeJSON(w, http.StatusCreated, toAnalysisPayload(result, false))
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	results := s.analyses.Results()

	payload := make([]analysisPayload, 0, len(results))
	for _, res := range results {
		payload = append(payload, toAnalysisPayload(res, true))
	}
	s.writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleClearAnalyses(w http.ResponseWriter, r *http.Request) {
	s.analyses.Clear()
	w.WriteHeader(http.StatusNoContent)
}
