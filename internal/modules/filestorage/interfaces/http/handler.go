package http

import (
	"bytes"
	"context"
	"html/template"
	"net/http"

	"github.com/saransh1220/framesync/internal/shared/logger"
	"github.com/saransh1220/framesync/internal/shared/utils"
	"github.com/saransh1220/framesync/internal/web"
)

// FileService is the subset of the file service the read endpoints use
type FileService interface {
	ListFolders(ctx context.Context) ([]string, error)
	ListImagesByFolder(ctx context.Context) (map[string][]string, error)
}

type StorageHandler struct {
	service   FileService
	templates *template.Template
}

func NewStorageHandler(service FileService, templates *template.Template) *StorageHandler {
	return &StorageHandler{
		service:   service,
		templates: templates,
	}
}

// Index handles GET / - renders the landing page with the bucket folders
func (h *StorageHandler) Index(w http.ResponseWriter, r *http.Request) {
	folders, err := h.service.ListFolders(r.Context())
	if err != nil {
		logger.Log.Error().Err(err).Msg("failed to render index page")
		http.Error(w, "failed to load the main page", http.StatusInternalServerError)
		return
	}

	// Render into a buffer so a template error can still produce a 500
	buf := &bytes.Buffer{}
	if err := h.templates.ExecuteTemplate(buf, "index.html", web.IndexData{Folders: folders}); err != nil {
		logger.Log.Error().Err(err).Msg("failed to execute index template")
		http.Error(w, "failed to load the main page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// Folders handles GET /folders - lists first-level bucket folders
func (h *StorageHandler) Folders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.service.ListFolders(r.Context())
	if err != nil {
		logger.Log.Error().Err(err).Msg("failed to list folders")
		http.Error(w, "failed to get folders from the bucket", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, folders)
}

// Images handles GET /images - object URLs grouped by folder
func (h *StorageHandler) Images(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.service.ListImagesByFolder(r.Context())
	if err != nil {
		logger.Log.Error().Err(err).Msg("failed to list images")
		http.Error(w, "failed to get images from the bucket", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, grouped)
}
