package integration

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"agencia_backend/internal/models"
	"agencia_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listResponse struct {
	Items []struct {
		ID           string `json:"id"`
		ArtisticName string `json:"artistic_name"`
		Status       string `json:"status"`
		Views        int    `json:"views"`
	} `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
}

func TestAdminListRequiresAdminRole(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/models", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	helpers.CreateUser(t, ts, "Vera", "vera@test.com", "password123", models.UserRoleVisitor)
	token := helpers.Login(t, ts, "vera@test.com", "password123")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/models", token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, body, "No autorizado")
}

func TestAdminListFilters(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	helpers.CreateModelProfile(t, ts, "Ana", models.StatusApproved)
	helpers.CreateModelProfile(t, ts, "Berta", models.StatusPending)
	helpers.CreateModelProfile(t, ts, "Carla", models.StatusRejected)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/models", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var all listResponse
	require.NoError(t, json.Unmarshal([]byte(body), &all))
	assert.Equal(t, int64(3), all.Total, "default status filter is ALL")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/models?status=PENDING", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var pending listResponse
	require.NoError(t, json.Unmarshal([]byte(body), &pending))
	require.Equal(t, int64(1), pending.Total)
	assert.Equal(t, "Berta", pending.Items[0].ArtisticName)
}

func TestAdminListSearchAndSort(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	_, ana := helpers.CreateModelProfile(t, ts, "Ana López", models.StatusApproved)
	helpers.CreateModelProfile(t, ts, "Berta Díaz", models.StatusApproved)
	require.NoError(t, ts.DB.Model(ana).Update("views", 99).Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/models?search=ana", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var search listResponse
	require.NoError(t, json.Unmarshal([]byte(body), &search))
	require.Equal(t, int64(1), search.Total, "search is case-insensitive")
	assert.Equal(t, "Ana López", search.Items[0].ArtisticName)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/models?sortBy=views&sortOrder=desc", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var sorted listResponse
	require.NoError(t, json.Unmarshal([]byte(body), &sorted))
	require.Len(t, sorted.Items, 2)
	assert.Equal(t, "Ana López", sorted.Items[0].ArtisticName)
}

func TestAdminListPagination(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	for i := 0; i < 5; i++ {
		helpers.CreateModelProfile(t, ts, "Modelo", models.StatusApproved)
		time.Sleep(time.Millisecond)
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/models?page=2&limit=2", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var page listResponse
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	assert.Equal(t, int64(5), page.Total, "total ignores pagination")
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.TotalPages)
}

func TestAdminListRejectsOutOfRangePagination(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	for _, path := range []string{
		"/api/v1/admin/models?page=0",
		"/api/v1/admin/models?limit=0",
		"/api/v1/admin/models?limit=101",
		"/api/v1/admin/models?sortBy=bogus",
		"/api/v1/admin/models?status=bogus",
	} {
		res, body := ts.SendRequest(t, http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "%s: %s", path, body)
	}
}

func TestApproveStampsApprovedAtOnce(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, profile := helpers.CreateModelProfile(t, ts, "Diana", models.StatusPending)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/models/"+profile.ID+"/approve", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var first models.Profile
	require.NoError(t, ts.DB.First(&first, "id = ?", profile.ID).Error)
	require.Equal(t, models.StatusApproved, first.Status)
	require.NotNil(t, first.ApprovedAt)

	// a second approve keeps the original timestamp
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/admin/models/"+profile.ID+"/approve", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var second models.Profile
	require.NoError(t, ts.DB.First(&second, "id = ?", profile.ID).Error)
	require.NotNil(t, second.ApprovedAt)
	assert.WithinDuration(t, *first.ApprovedAt, *second.ApprovedAt, time.Millisecond)
}

func TestRejectAndBackToPending(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, profile := helpers.CreateModelProfile(t, ts, "Elena", models.StatusApproved)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/models/"+profile.ID+"/reject", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/admin/models/"+profile.ID+"/pending", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got models.Profile
	require.NoError(t, ts.DB.First(&got, "id = ?", profile.ID).Error)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestSetFeatured(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, profile := helpers.CreateModelProfile(t, ts, "Flor", models.StatusRejected)

	// featuring is independent of moderation status
	res, _ := ts.SendRequest(t, http.MethodPatch, "/api/v1/admin/models/"+profile.ID+"/featured", token, map[string]bool{"featured": true})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got models.Profile
	require.NoError(t, ts.DB.First(&got, "id = ?", profile.ID).Error)
	assert.True(t, got.Featured)
}

func TestUpdateArtisticNameRederivesSlug(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, profile := helpers.CreateModelProfile(t, ts, "Gina", models.StatusApproved)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/admin/models/"+profile.ID, token, map[string]string{
		"artistic_name": "Gina Renée",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var got models.Profile
	require.NoError(t, ts.DB.First(&got, "id = ?", profile.ID).Error)
	assert.Equal(t, "gina-renee", got.Slug)
}

func TestDeleteCascades(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	user, profile := helpers.CreateModelProfile(t, ts, "Hilda", models.StatusApproved)
	helpers.CreatePhoto(t, ts, profile, models.StatusApproved)

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/admin/models/"+profile.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var photoCount, profileCount, userCount int64
	ts.DB.Model(&models.Photo{}).Where("profile_id = ?", profile.ID).Count(&photoCount)
	ts.DB.Model(&models.Profile{}).Where("id = ?", profile.ID).Count(&profileCount)
	ts.DB.Model(&models.User{}).Where("id = ?", user.ID).Count(&userCount)

	assert.Zero(t, photoCount)
	assert.Zero(t, profileCount)
	assert.Zero(t, userCount, "the owning user row goes with the profile")
}
