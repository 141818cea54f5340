package repository

import (
	"context"
	"testing"
	"time"

	"contentadmin/internal/database"
	"contentadmin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func seedUpload(t *testing.T, r *UploadRepository, key string) *domain.Upload {
	t.Helper()
	u := &domain.Upload{
		Filename:     key,
		OriginalName: key,
		FileURL:      "https://bucket.s3.us-east-1.amazonaws.com/" + key,
		S3Key:        key,
		ContentType:  "image/jpeg",
		FileSize:     100,
	}
	require.NoError(t, r.Create(context.Background(), u))
	return u
}

func TestUploadSoftDeleteHidesRowFromReads(t *testing.T) {
	db := testDB(t)
	r := NewUploadRepository(db)
	ctx := context.Background()

	u := seedUpload(t, r, "images/a.jpg")

	require.NoError(t, r.SoftDelete(ctx, u.ID))

	_, err := r.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	all, err := r.ListAll(ctx)
	assert.NoError(t, err)
	assert.Empty(t, all)

	// cleanup still needs the key after the flag is set
	rows, err := r.GetByIDs(ctx, []int64{u.ID})
	assert.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsDeleted)
	assert.Equal(t, "images/a.jpg", rows[0].S3Key)
}

func TestUploadFindByURLSkipsDeletedRows(t *testing.T) {
	db := testDB(t)
	r := NewUploadRepository(db)
	ctx := context.Background()

	first := seedUpload(t, r, "images/dup.jpg")
	second := seedUpload(t, r, "images/dup.jpg")
	url := first.FileURL

	got, err := r.FindByURL(ctx, url)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	require.NoError(t, r.SoftDelete(ctx, first.ID))

	got, err = r.FindByURL(ctx, url)
	assert.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)

	require.NoError(t, r.SoftDelete(ctx, second.ID))

	_, err = r.FindByURL(ctx, url)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUploadBoardStamping(t *testing.T) {
	db := testDB(t)
	r := NewUploadRepository(db)
	ctx := context.Background()

	a := seedUpload(t, r, "images/a.jpg")
	b := seedUpload(t, r, "images/b.jpg")
	seedUpload(t, r, "images/c.jpg")

	require.NoError(t, r.SetBoardID(ctx, a.ID, 7))
	require.NoError(t, r.SetBoardIDByKey(ctx, "images/b.jpg", 7))

	owned, err := r.ListByBoardID(ctx, 7)
	assert.NoError(t, err)
	require.Len(t, owned, 2)

	ids := []int64{owned[0].ID, owned[1].ID}
	assert.ElementsMatch(t, []int64{a.ID, b.ID}, ids)
}

func seedBanner(t *testing.T, r *BannerRepository, title string, order int) *domain.Banner {
	t.Helper()
	b := &domain.Banner{
		Title:             title,
		SubTitle:          "sub",
		BannerImage:       "https://bucket.s3.us-east-1.amazonaws.com/images/d.jpg",
		BannerMobileImage: "https://bucket.s3.us-east-1.amazonaws.com/images/m.jpg",
		Link:              "/promo",
		DisplayOrder:      order,
	}
	require.NoError(t, r.Create(context.Background(), b))
	return b
}

func TestBannerListOrdersByDisplayOrderThenCreation(t *testing.T) {
	db := testDB(t)
	r := NewBannerRepository(db)
	ctx := context.Background()

	// created in this sequence: late (order 2), early (order 1), tied (order 1)
	seedBanner(t, r, "late", 2)
	time.Sleep(5 * time.Millisecond)
	seedBanner(t, r, "early", 1)
	time.Sleep(5 * time.Millisecond)
	seedBanner(t, r, "tied", 1)

	out, err := r.ListAll(ctx)
	assert.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "early", out[0].Title)
	assert.Equal(t, "tied", out[1].Title)
	assert.Equal(t, "late", out[2].Title)
}

func TestBannerMaxDisplayOrder(t *testing.T) {
	db := testDB(t)
	r := NewBannerRepository(db)
	ctx := context.Background()

	max, err := r.MaxDisplayOrder(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, max)

	seedBanner(t, r, "a", 3)
	seedBanner(t, r, "b", 1)

	max, err = r.MaxDisplayOrder(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3, max)
}

func TestBannerUploadRelations(t *testing.T) {
	db := testDB(t)
	banners := NewBannerRepository(db)
	uploads := NewUploadRepository(db)
	ctx := context.Background()

	desktop := seedUpload(t, uploads, "images/d.jpg")
	mobile := seedUpload(t, uploads, "images/m.jpg")
	b := seedBanner(t, banners, "hero", 1)

	require.NoError(t, banners.SetDesktopUpload(ctx, b.ID, desktop.ID))
	require.NoError(t, banners.SetMobileUpload(ctx, b.ID, mobile.ID))

	got, err := banners.GetByID(ctx, b.ID)
	assert.NoError(t, err)
	require.NotNil(t, got.DesktopUpload)
	require.NotNil(t, got.MobileUpload)
	assert.Equal(t, "images/d.jpg", got.DesktopUpload.S3Key)
	assert.Equal(t, "images/m.jpg", got.MobileUpload.S3Key)
}

func TestBannerDeleteReportsExistence(t *testing.T) {
	db := testDB(t)
	r := NewBannerRepository(db)
	ctx := context.Background()

	b := seedBanner(t, r, "gone", 1)

	deleted, err := r.Delete(ctx, b.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = r.Delete(ctx, b.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestBoardImageLinks(t *testing.T) {
	db := testDB(t)
	boards := NewBoardRepository(db)
	uploads := NewUploadRepository(db)
	ctx := context.Background()

	u1 := seedUpload(t, uploads, "images/1.jpg")
	u2 := seedUpload(t, uploads, "images/2.jpg")

	b := &domain.Board{Author: "jane", Title: "post", Content: "<p>hi</p>"}
	require.NoError(t, boards.Create(ctx, b))

	require.NoError(t, boards.CreateImageLink(ctx, b.ID, u1.ID))
	require.NoError(t, boards.CreateImageLink(ctx, b.ID, u2.ID))

	links, err := boards.ListImageLinks(ctx, b.ID)
	assert.NoError(t, err)
	assert.Len(t, links, 2)

	got, err := boards.GetByID(ctx, b.ID)
	assert.NoError(t, err)
	require.Len(t, got.Images, 2)
	var keys []string
	for _, img := range got.Images {
		require.NotNil(t, img.Upload)
		keys = append(keys, img.Upload.S3Key)
	}
	assert.ElementsMatch(t, []string{"images/1.jpg", "images/2.jpg"}, keys)

	require.NoError(t, boards.DeleteImageLinks(ctx, b.ID))
	links, err = boards.ListImageLinks(ctx, b.ID)
	assert.NoError(t, err)
	assert.Empty(t, links)
}

func TestBoardListPagination(t *testing.T) {
	db := testDB(t)
	r := NewBoardRepository(db)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		b := &domain.Board{Author: "jane", Title: title, Content: "x"}
		require.NoError(t, r.Create(ctx, b))
		time.Sleep(5 * time.Millisecond)
	}

	total, err := r.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)

	page, err := r.List(ctx, 0, 2)
	assert.NoError(t, err)
	require.Len(t, page, 2)
	// newest first
	assert.Equal(t, "third", page[0].Title)
	assert.Equal(t, "second", page[1].Title)

	page, err = r.List(ctx, 2, 2)
	assert.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "first", page[0].Title)
}
