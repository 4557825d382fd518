package http

import (
	"net/http"

	"github.com/fleettrack/fleettrack/internal/delivery/http/middleware"
	"github.com/fleettrack/fleettrack/internal/infrastructure/imagehost"
	"github.com/fleettrack/fleettrack/internal/pkg/logger"
)

// UploadHandler принимает изображения и отдает их на внешний хостинг.
// Сами файлы у нас не хранятся: клиент получает долговечный URL
// и передает его в последующих запросах.
type UploadHandler struct {
	images      imagehost.Client
	maxFileSize int64
	logger      logger.Logger
}

// NewUploadHandler создает новый handler
func NewUploadHandler(images imagehost.Client, maxFileSize int64, logger logger.Logger) *UploadHandler {
	return &UploadHandler{
		images:      images,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Upload загружает изображение на хостинг
// POST /api/v1/uploads
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserClaims(r.Context()); !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		respondError(w, http.StatusBadRequest, "File too large or malformed form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.images.Upload(r.Context(), header.Filename, file)
	if err != nil {
		respondServiceError(w, h.logger, err, "upload image")
		return
	}

	h.logger.Info("Image uploaded", map[string]interface{}{
		"filename": header.Filename,
		"bytes":    header.Size,
	})

	respondData(w, http.StatusCreated, map[string]string{
		"url": result.URL,
	})
}
