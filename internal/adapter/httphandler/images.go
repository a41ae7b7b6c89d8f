package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/niksmo/warehouse/internal/core/domain"
	"github.com/niksmo/warehouse/internal/core/port"
)

// POST /upload-image JSON {image, filename?} (200 OK, 400 Bad request)

type ImagesHandler struct {
	uploader port.ImageUploader
}

func RegisterImages(mux *http.ServeMux, uploader port.ImageUploader) {
	h := ImagesHandler{uploader}
	mux.HandleFunc("POST /upload-image", h.Upload)
	mux.HandleFunc("OPTIONS /upload-image", preflight("POST, OPTIONS"))
	mux.HandleFunc("/upload-image", methodNotAllowed)
}

func (h ImagesHandler) Upload(w http.ResponseWriter, r *http.Request) {
	const op = "ImagesHandler.Upload"
	log := slog.With("op", op)

	var req UploadImage
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	img, err := h.uploader.UploadImage(r.Context(), req.Image, req.Filename)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Image data is required")
		} else {
			writeDomainError(w, err)
		}
		log.Warn("failed to upload image", "err", err)
		return
	}

	resp := UploadedImage{
		URL: "data:image/jpeg;base64," + img.Data,
		ID:  img.ID,
	}

	writeJSON(w, http.StatusOK, resp)
	log.Info("image uploaded", "id", img.ID, "filename", img.Filename)
}
