package banner

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"contentadmin/internal/database"
	"contentadmin/internal/domain"
	"contentadmin/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubBlobStore records deleted keys; the handler tests run against real
// repositories on in-memory sqlite with only the object store faked out.
type stubBlobStore struct {
	deleted []string
}

func (s *stubBlobStore) Delete(_ context.Context, s3Key string) error {
	s.deleted = append(s.deleted, s3Key)
	return nil
}

func setupRouter(t *testing.T) (*gin.Engine, *repository.UploadRepository, *stubBlobStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	uploads := repository.NewUploadRepository(db)
	banners := repository.NewBannerRepository(db)
	store := &stubBlobStore{}
	handler := NewHandler(NewService(banners, uploads, store, zap.NewNop()))

	router := gin.New()
	api := router.Group("/api")
	handler.RegisterPublicRoutes(api)
	handler.RegisterAdminRoutes(api)

	return router, uploads, store
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func registerUpload(t *testing.T, uploads *repository.UploadRepository, key string) *domain.Upload {
	t.Helper()
	u := &domain.Upload{
		Filename:     key,
		OriginalName: key,
		FileURL:      "https://bucket.s3.us-east-1.amazonaws.com/" + key,
		S3Key:        key,
		ContentType:  "image/jpeg",
		FileSize:     100,
	}
	require.NoError(t, uploads.Create(context.Background(), u))
	return u
}

func TestCreateAndListBanners(t *testing.T) {
	router, uploads, _ := setupRouter(t)

	desktop := registerUpload(t, uploads, "images/d.jpg")
	mobile := registerUpload(t, uploads, "images/m.jpg")

	resp := performRequest(router, http.MethodPost, "/api/banner", CreateBannerRequest{
		Title:             "Summer sale",
		SubTitle:          "Up to 50% off",
		BannerImage:       desktop.FileURL,
		BannerMobileImage: mobile.FileURL,
		Link:              "/sale",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var created BannerResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, 1, created.DisplayOrder)
	require.NotNil(t, created.DesktopUpload)
	assert.Equal(t, desktop.ID, created.DesktopUpload.ID)
	require.NotNil(t, created.MobileUpload)
	assert.Equal(t, mobile.ID, created.MobileUpload.ID)

	resp = performRequest(router, http.MethodGet, "/api/banner", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var list []BannerResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Summer sale", list[0].Title)
}

func TestCreateValidationError(t *testing.T) {
	router, _, _ := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/api/banner", map[string]any{
		"title": "missing everything else",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestDeleteBannerCleansUpImages(t *testing.T) {
	router, uploads, store := setupRouter(t)

	desktop := registerUpload(t, uploads, "images/d.jpg")
	mobile := registerUpload(t, uploads, "images/m.jpg")

	resp := performRequest(router, http.MethodPost, "/api/banner", CreateBannerRequest{
		Title:             "t",
		SubTitle:          "s",
		BannerImage:       desktop.FileURL,
		BannerMobileImage: mobile.FileURL,
		Link:              "/promo",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = performRequest(router, http.MethodDelete, "/api/banner/1", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	// both slot blobs deleted, then the redundant URL pass repeats the keys
	assert.Equal(t, []string{"images/d.jpg", "images/m.jpg", "images/d.jpg", "images/m.jpg"}, store.deleted)

	// upload rows are soft-deleted, not gone
	rows, err := uploads.GetByIDs(context.Background(), []int64{desktop.ID, mobile.ID})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].IsDeleted)
	assert.True(t, rows[1].IsDeleted)

	resp = performRequest(router, http.MethodGet, "/api/banner/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteMissingBannerIs404(t *testing.T) {
	router, _, store := setupRouter(t)

	resp := performRequest(router, http.MethodDelete, "/api/banner/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Empty(t, store.deleted)
}

func TestDisplayOrdersEndpointReordersList(t *testing.T) {
	router, uploads, _ := setupRouter(t)

	desktop := registerUpload(t, uploads, "images/d.jpg")
	mobile := registerUpload(t, uploads, "images/m.jpg")

	for _, title := range []string{"first", "second"} {
		resp := performRequest(router, http.MethodPost, "/api/banner", CreateBannerRequest{
			Title:             title,
			SubTitle:          "s",
			BannerImage:       desktop.FileURL,
			BannerMobileImage: mobile.FileURL,
			Link:              "/promo",
		})
		require.Equal(t, http.StatusCreated, resp.Code)
	}

	resp := performRequest(router, http.MethodPatch, "/api/banner/display-orders", UpdateDisplayOrdersRequest{
		DisplayOrders: []DisplayOrderItem{
			{ID: 2, DisplayOrder: 1},
			{ID: 1, DisplayOrder: 2},
		},
	})
	require.Equal(t, http.StatusOK, resp.Code)

	// the response holds the refreshed rows in request order
	var updated []BannerResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	require.Len(t, updated, 2)
	assert.Equal(t, "second", updated[0].Title)
	assert.Equal(t, 1, updated[0].DisplayOrder)
	assert.Equal(t, "first", updated[1].Title)
	assert.Equal(t, 2, updated[1].DisplayOrder)

	// the public list reflects the new ordering
	resp = performRequest(router, http.MethodGet, "/api/banner", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var list []BannerResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Title)
	assert.Equal(t, "first", list[1].Title)
}
