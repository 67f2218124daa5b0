package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/saransh1220/framesync/internal/modules/imagesync/application"
	"github.com/saransh1220/framesync/internal/shared/logger"
	"github.com/saransh1220/framesync/internal/shared/utils"
)

// UpdateImageRequest is the body of POST /update-image; an empty body syncs all pages
type UpdateImageRequest struct {
	Folder string `json:"folder"`
}

type SyncHandler struct {
	service application.SyncService
}

func NewSyncHandler(service application.SyncService) *SyncHandler {
	return &SyncHandler{service: service}
}

// UpdateImage handles POST /update-image - syncs frame renders into the bucket
func (h *SyncHandler) UpdateImage(w http.ResponseWriter, r *http.Request) {
	var req UpdateImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	// A started sync runs to completion even if the client goes away
	ctx := context.WithoutCancel(r.Context())

	report, err := h.service.Sync(ctx, req.Folder)
	if err != nil {
		logger.Log.Error().Err(err).Str("folder", req.Folder).Msg("failed to update images")
		http.Error(w, "an error occurred while processing the request", http.StatusInternalServerError)
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		utils.WriteJSON(w, http.StatusOK, report)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Images uploaded for folder: %s!", report.Target())
}
