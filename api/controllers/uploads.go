package controllers

import (
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/storelinkhq/storelink-backend/api/responses"
	"github.com/storelinkhq/storelink-backend/internal/stores"
	"github.com/storelinkhq/storelink-backend/internal/uploads"
	"github.com/storelinkhq/storelink-backend/pkg/config"
	pkgerrors "github.com/storelinkhq/storelink-backend/pkg/errors"
	"github.com/storelinkhq/storelink-backend/pkg/logger"
)

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// UploadImages pushes the multipart "files" entries to the image host and
// returns the hosted URLs.
func UploadImages(svc uploads.Service, storesSvc stores.Service, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := ownerIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if _, err := storesSvc.ResolveStoreID(r.Context(), ownerID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := r.ParseMultipartForm(cfg.Media.MaxUploadBytes() * 2); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form"))
			return
		}

		headers := r.MultipartForm.File["files"]
		if len(headers) == 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "No files provided"))
			return
		}

		for i, fh := range headers {
			contentType := strings.ToLower(fh.Header.Get("Content-Type"))
			if _, ok := allowedImageTypes[contentType]; !ok {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation,
					fmt.Sprintf("Invalid file type for file %d: %s. Allowed types: JPG, PNG, GIF, WebP", i+1, contentType)))
				return
			}
			if fh.Size > cfg.Media.MaxUploadBytes() {
				sizeMB := int(math.Round(float64(fh.Size) / (1 << 20)))
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation,
					fmt.Sprintf("File %d is too large: %dMB. Maximum size: %dMB", i+1, sizeMB, cfg.Media.MaxUploadMB)))
				return
			}
		}

		files := make([]io.Reader, 0, len(headers))
		openFiles := make([]multipart.File, 0, len(headers))
		defer func() {
			for _, f := range openFiles {
				f.Close()
			}
		}()
		for _, fh := range headers {
			file, openErr := fh.Open()
			if openErr != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, openErr, "open uploaded file"))
				return
			}
			openFiles = append(openFiles, file)
			files = append(files, file)
		}

		urls, err := svc.UploadImages(r.Context(), files)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessageData(w, http.StatusOK,
			fmt.Sprintf("Successfully uploaded %d image(s)", len(urls)),
			map[string]any{"urls": urls, "count": len(urls)})
	}
}
