package controllers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/google/uuid"

	"github.com/storelinkhq/storelink-backend/internal/stores"
	"github.com/storelinkhq/storelink-backend/pkg/config"
)

type stubStoreService struct {
	storeID    uuid.UUID
	resolveErr error
	full       *stores.StoreFullDTO
	fullErr    error
}

func (s *stubStoreService) ResolveStoreID(ctx context.Context, ownerID uuid.UUID) (uuid.UUID, error) {
	return s.storeID, s.resolveErr
}

func (s *stubStoreService) CreateContent(ctx context.Context, ownerID uuid.UUID, input stores.CreateContentInput) (*stores.WebContentDTO, error) {
	panic("unimplemented")
}

func (s *stubStoreService) UpdateContent(ctx context.Context, ownerID uuid.UUID, input stores.UpdateContentInput) (*stores.WebContentDTO, error) {
	panic("unimplemented")
}

func (s *stubStoreService) GetContent(ctx context.Context, ownerID uuid.UUID) (*stores.WebContentDTO, error) {
	panic("unimplemented")
}

func (s *stubStoreService) GetBasics(ctx context.Context, ownerID uuid.UUID) (*stores.StoreBasicsDTO, error) {
	panic("unimplemented")
}

func (s *stubStoreService) GetFull(ctx context.Context, ownerID uuid.UUID) (*stores.StoreFullDTO, error) {
	return s.full, s.fullErr
}

type stubUploadService struct {
	urls []string
	err  error
}

func (s *stubUploadService) UploadImages(ctx context.Context, files []io.Reader) ([]string, error) {
	return s.urls, s.err
}

func uploadConfig() *config.Config {
	return &config.Config{Media: config.MediaConfig{MaxUploadMB: 5}}
}

func multipartBody(t *testing.T, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="files"; filename="photo.jpg"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, writer.FormDataContentType()
}

func TestUploadImages(t *testing.T) {
	logg := testLogger()
	storesSvc := &stubStoreService{storeID: uuid.New()}

	t.Run("no files", func(t *testing.T) {
		buf := &bytes.Buffer{}
		writer := multipart.NewWriter(buf)
		writer.Close()
		req := httptest.NewRequest(http.MethodPost, "/api/upload-images", buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		req = req.WithContext(authedContext(uuid.New()))
		rec := httptest.NewRecorder()
		UploadImages(&stubUploadService{}, storesSvc, uploadConfig(), logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		body := decodeEnvelope(t, rec)
		if body["error"] != "No files provided" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("disallowed type", func(t *testing.T) {
		buf, contentType := multipartBody(t, "application/pdf", []byte("%PDF"))
		req := httptest.NewRequest(http.MethodPost, "/api/upload-images", buf)
		req.Header.Set("Content-Type", contentType)
		req = req.WithContext(authedContext(uuid.New()))
		rec := httptest.NewRecorder()
		UploadImages(&stubUploadService{}, storesSvc, uploadConfig(), logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		body := decodeEnvelope(t, rec)
		if body["error"] != "Invalid file type for file 1: application/pdf. Allowed types: JPG, PNG, GIF, WebP" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		buf, contentType := multipartBody(t, "image/jpeg", []byte("jpegdata"))
		req := httptest.NewRequest(http.MethodPost, "/api/upload-images", buf)
		req.Header.Set("Content-Type", contentType)
		req = req.WithContext(authedContext(uuid.New()))
		rec := httptest.NewRecorder()
		svc := &stubUploadService{urls: []string{"https://cdn.example.test/1.jpg"}}
		UploadImages(svc, storesSvc, uploadConfig(), logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := decodeEnvelope(t, rec)
		if body["message"] != "Successfully uploaded 1 image(s)" {
			t.Fatalf("unexpected body %v", body)
		}
		data, ok := body["data"].(map[string]any)
		if !ok || data["count"] != float64(1) {
			t.Fatalf("unexpected data %v", body["data"])
		}
	})
}
