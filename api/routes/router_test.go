package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	product "github.com/storelinkhq/storelink-backend/internal/products"
	"github.com/storelinkhq/storelink-backend/internal/stores"
	"github.com/storelinkhq/storelink-backend/internal/users"
	"github.com/storelinkhq/storelink-backend/pkg/config"
	"github.com/storelinkhq/storelink-backend/pkg/logger"
	"github.com/storelinkhq/storelink-backend/pkg/types"
)

type stubUsersService struct{}

func (stubUsersService) EnsureActive(ctx context.Context, userID uuid.UUID) error {
	return nil
}

func (stubUsersService) GetProfile(ctx context.Context, userID uuid.UUID) (*users.ProfileDTO, error) {
	return &users.ProfileDTO{}, nil
}

type stubStoreService struct{}

func (stubStoreService) ResolveStoreID(ctx context.Context, ownerID uuid.UUID) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (stubStoreService) CreateContent(ctx context.Context, ownerID uuid.UUID, input stores.CreateContentInput) (*stores.WebContentDTO, error) {
	return &stores.WebContentDTO{}, nil
}

func (stubStoreService) UpdateContent(ctx context.Context, ownerID uuid.UUID, input stores.UpdateContentInput) (*stores.WebContentDTO, error) {
	return &stores.WebContentDTO{}, nil
}

func (stubStoreService) GetContent(ctx context.Context, ownerID uuid.UUID) (*stores.WebContentDTO, error) {
	return &stores.WebContentDTO{}, nil
}

func (stubStoreService) GetBasics(ctx context.Context, ownerID uuid.UUID) (*stores.StoreBasicsDTO, error) {
	return &stores.StoreBasicsDTO{}, nil
}

func (stubStoreService) GetFull(ctx context.Context, ownerID uuid.UUID) (*stores.StoreFullDTO, error) {
	return &stores.StoreFullDTO{}, nil
}

type stubProductService struct{}

func (stubProductService) Create(ctx context.Context, ownerID uuid.UUID, input product.CreateInput) error {
	return nil
}

func (stubProductService) List(ctx context.Context, ownerID uuid.UUID, input product.ListInput) (*product.ListResult, error) {
	return &product.ListResult{Products: []product.ProductDTO{}}, nil
}

func (stubProductService) View(ctx context.Context, productID uuid.UUID) (*product.ProductDTO, error) {
	return &product.ProductDTO{ID: productID}, nil
}

func (stubProductService) Edit(ctx context.Context, productID uuid.UUID, input product.EditInput) (*product.ProductDTO, error) {
	return &product.ProductDTO{ID: productID}, nil
}

func (stubProductService) Delete(ctx context.Context, productID uuid.UUID) (*product.DeleteResult, error) {
	return &product.DeleteResult{ProductID: productID}, nil
}

type stubSocialLinksService struct{}

func (stubSocialLinksService) Get(ctx context.Context, ownerID uuid.UUID) ([]types.SocialLink, error) {
	return []types.SocialLink{}, nil
}

func (stubSocialLinksService) Replace(ctx context.Context, ownerID uuid.UUID, links *[]types.SocialLink) error {
	return nil
}

type stubUploadService struct{}

func (stubUploadService) UploadImages(ctx context.Context, files []io.Reader) ([]string, error) {
	return []string{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App:   config.AppConfig{Env: "test", Port: "0"},
		Media: config.MediaConfig{MaxUploadMB: 5},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(
		cfg,
		logg,
		nil, // db client
		nil, // redis client
		nil, // http metrics
		stubUsersService{},
		stubStoreService{},
		stubProductService{},
		stubSocialLinksService{},
		stubUploadService{},
	)
}

func TestHealthLiveIsPublic(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for liveness got %d", resp.Code)
	}
}

func TestAPIGroupRejectsMissingIdentity(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/owner/products/list", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity headers got %d", resp.Code)
	}
}

func TestOwnerGroupRequiresOwnerRole(t *testing.T) {
	router := newTestRouter(testConfig())

	customer := httptest.NewRequest(http.MethodGet, "/api/owner/products/list", nil)
	customer.Header.Set("X-User-Id", uuid.NewString())
	customer.Header.Set("X-User-Role", "customer")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, customer)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner got %d", resp.Code)
	}

	owner := httptest.NewRequest(http.MethodGet, "/api/owner/products/list", nil)
	owner.Header.Set("X-User-Id", uuid.NewString())
	owner.Header.Set("X-User-Role", "owner")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, owner)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for owner got %d", resp.Code)
	}
}

func TestOwnerRoutesAreMounted(t *testing.T) {
	router := newTestRouter(testConfig())
	id := uuid.NewString()

	routes := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/api/owner/products/create", `{"name":"RedMug12","category":"popular","actualPrice":100,"totalQuantity":5}`},
		{http.MethodGet, "/api/owner/products/list", ""},
		{http.MethodGet, "/api/owner/products/view/" + id, ""},
		{http.MethodPut, "/api/owner/products/edit/" + id, `{}`},
		{http.MethodDelete, "/api/owner/products/delete/" + id, ""},
		{http.MethodGet, "/api/owner/social-links", ""},
		{http.MethodPost, "/api/owner/social-links", `{"socialLinks":[]}`},
		{http.MethodPost, "/api/owner/web-content", `{"displayName":"Linkway"}`},
		{http.MethodPut, "/api/owner/web-content", `{}`},
		{http.MethodGet, "/api/owner/web-content", ""},
		{http.MethodGet, "/api/owner/admin-data/basic", ""},
		{http.MethodGet, "/api/owner/admin-data/all", ""},
	}

	for _, rt := range routes {
		var body io.Reader
		if rt.body != "" {
			body = strings.NewReader(rt.body)
		}
		req := httptest.NewRequest(rt.method, rt.path, body)
		req.Header.Set("X-User-Id", uuid.NewString())
		req.Header.Set("X-User-Role", "owner")
		if rt.body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code == http.StatusNotFound || resp.Code == http.StatusMethodNotAllowed {
			t.Fatalf("%s %s is not mounted, got %d", rt.method, rt.path, resp.Code)
		}
	}
}
