package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	pkgerrors "github.com/storelinkhq/storelink-backend/pkg/errors"
)

type stubUploader struct {
	calls   int
	failOn  int
	baseURL string
}

func (s *stubUploader) Upload(ctx context.Context, file io.Reader) (string, error) {
	s.calls++
	if s.failOn > 0 && s.calls == s.failOn {
		return "", errors.New("image host unavailable")
	}
	return fmt.Sprintf("%s/%d.jpg", s.baseURL, s.calls), nil
}

func TestUploadImages(t *testing.T) {
	stub := &stubUploader{baseURL: "https://cdn.example.test"}
	svc, err := NewService(stub)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	files := []io.Reader{strings.NewReader("a"), strings.NewReader("b"), strings.NewReader("c")}
	urls, err := svc.UploadImages(context.Background(), files)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(urls) != 3 || urls[0] != "https://cdn.example.test/1.jpg" {
		t.Fatalf("unexpected urls %v", urls)
	}
	if stub.calls != 3 {
		t.Fatalf("expected 3 uploads, got %d", stub.calls)
	}
}

func TestUploadImagesFailsWholeBatch(t *testing.T) {
	stub := &stubUploader{baseURL: "https://cdn.example.test", failOn: 2}
	svc, err := NewService(stub)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	files := []io.Reader{strings.NewReader("a"), strings.NewReader("b"), strings.NewReader("c")}
	_, err = svc.UploadImages(context.Background(), files)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if stub.calls != 2 {
		t.Fatalf("expected upload loop to stop at failure, calls=%d", stub.calls)
	}
}
