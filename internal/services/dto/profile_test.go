package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agencia_backend/internal/models"
)

func TestToFilterDefaults(t *testing.T) {
	f := (&ListProfilesQuery{}).ToFilter()

	assert.Equal(t, "ALL", f.Status)
	assert.Equal(t, "createdAt", f.SortBy)
	assert.Equal(t, "desc", f.SortOrder)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.Limit)
	assert.Nil(t, f.Featured)
}

func TestToFilterExplicitValues(t *testing.T) {
	page, limit := 3, 50
	q := &ListProfilesQuery{
		Status:    "PENDING",
		Featured:  "true",
		SortBy:    "views",
		SortOrder: "asc",
		Page:      &page,
		Limit:     &limit,
	}
	f := q.ToFilter()

	assert.Equal(t, "PENDING", f.Status)
	require.NotNil(t, f.Featured)
	assert.True(t, *f.Featured)
	assert.Equal(t, "views", f.SortBy)
	assert.Equal(t, "asc", f.SortOrder)
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 50, f.Limit)
}

func TestToFilterFeaturedAll(t *testing.T) {
	f := (&ListProfilesQuery{Featured: "all"}).ToFilter()
	assert.Nil(t, f.Featured)
}

func TestPublicProfileResponseHidesModeration(t *testing.T) {
	p := &models.Profile{
		ArtisticName: "Vera",
		Status:       models.StatusApproved,
		User:         &models.User{Name: "Vera N", Email: "vera@example.com"},
		Photos: []models.Photo{
			{URL: "/uploads/a.jpg", Status: models.StatusApproved},
			{URL: "/uploads/b.jpg", Status: models.StatusPending},
			{URL: "/uploads/c.jpg", Status: models.StatusRejected},
		},
	}

	resp := NewPublicProfileResponse(p)

	require.Len(t, resp.Photos, 1)
	assert.Equal(t, "/uploads/a.jpg", resp.Photos[0].URL)
	assert.Empty(t, resp.UserEmail)
	assert.Empty(t, resp.UserName)
}
