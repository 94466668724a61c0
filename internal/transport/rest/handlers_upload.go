package rest

import (
	"net/http"

	"github.com/opportunest/opportunest-server/internal/metrics"
	"github.com/opportunest/opportunest-server/internal/pkg/logger"
	"github.com/opportunest/opportunest-server/internal/transport/rest/response"
)

// maxImageBytes caps a single image upload.
const maxImageBytes = 5 << 20

// UploadImage accepts a multipart "image" part, stores it in the bucket and
// returns the public URL for use in scholarship and application records.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		response.Fail(w, http.StatusBadRequest, "image too large or malformed upload", nil)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.Fail(w, http.StatusBadRequest, "missing image field", nil)
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		metrics.ImageUploadsTotal.WithLabelValues("failed").Inc()
		logger.WithCtx(r.Context()).Error().Err(err).Str("filename", header.Filename).Msg("image upload failed")
		response.Err(w, err)
		return
	}

	metrics.ImageUploadsTotal.WithLabelValues("success").Inc()
	response.OK(w, http.StatusOK, map[string]string{"display_url": url})
}
