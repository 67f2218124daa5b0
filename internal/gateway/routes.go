package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	storage_http "github.com/saransh1220/framesync/internal/modules/filestorage/interfaces/http"
	sync_http "github.com/saransh1220/framesync/internal/modules/imagesync/interfaces/http"
	"github.com/saransh1220/framesync/internal/web"
)

// RouterConfig holds all the handlers needed for routing
type RouterConfig struct {
	StorageHandler *storage_http.StorageHandler
	SyncHandler    *sync_http.SyncHandler

	// UploadsDir is served under /uploads/ when images live on local disk
	UploadsDir string
}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) *Router {
	router := NewRouter()

	// Health Check
	router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus Metrics Endpoint
	router.Handle("GET /metrics", promhttp.Handler())

	// Landing page and bucket views
	router.HandleFunc("GET /{$}", config.StorageHandler.Index)
	router.HandleFunc("GET /folders", config.StorageHandler.Folders)
	router.HandleFunc("GET /images", config.StorageHandler.Images)

	// Sync
	router.HandleFunc("POST /update-image", config.SyncHandler.UpdateImage)

	if config.UploadsDir != "" {
		router.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(config.UploadsDir))))
	}

	// Static assets
	router.Handle("GET /", web.Static())

	return router
}
