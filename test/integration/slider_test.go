package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"agencia_backend/internal/models"
	"agencia_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliderAddAssignsNextOrder(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, profile := helpers.CreateModelProfile(t, ts, "Uma", models.StatusApproved)
	first := helpers.CreatePhoto(t, ts, profile, models.StatusApproved)
	second := helpers.CreatePhoto(t, ts, profile, models.StatusApproved)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/slider", token, map[string]string{"photo_id": first.ID})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/slider", token, map[string]string{"photo_id": second.ID})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var added struct {
		SliderOrder int `json:"slider_order"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &added))
	assert.Equal(t, 1, added.SliderOrder, "second photo lands after the first")
}

func TestSliderRejectsUnapprovedPhoto(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, profile := helpers.CreateModelProfile(t, ts, "Vala", models.StatusApproved)
	pending := helpers.CreatePhoto(t, ts, profile, models.StatusPending)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/slider", token, map[string]string{"photo_id": pending.ID})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var got models.Photo
	require.NoError(t, ts.DB.First(&got, "id = ?", pending.ID).Error)
	assert.False(t, got.IsSliderPhoto, "a rejected add must not mutate the photo")
}

func TestSliderRemoveClearsOrder(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, profile := helpers.CreateModelProfile(t, ts, "Wanda", models.StatusApproved)
	photo := helpers.CreatePhoto(t, ts, profile, models.StatusApproved)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/slider", token, map[string]string{"photo_id": photo.ID})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/admin/slider/"+photo.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got models.Photo
	require.NoError(t, ts.DB.First(&got, "id = ?", photo.ID).Error)
	assert.False(t, got.IsSliderPhoto)
	assert.Equal(t, models.SliderOrderNone, got.SliderOrder)
}

func TestSliderReorder(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, profile := helpers.CreateModelProfile(t, ts, "Xena", models.StatusApproved)

	var ids []string
	for i := 0; i < 3; i++ {
		photo := helpers.CreatePhoto(t, ts, profile, models.StatusApproved)
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/slider", token, map[string]string{"photo_id": photo.ID})
		require.Equal(t, http.StatusCreated, res.StatusCode)
		ids = append(ids, photo.ID)
	}

	reversed := []string{ids[2], ids[1], ids[0]}
	res, body := ts.SendRequest(t, http.MethodPatch, "/api/v1/admin/slider/order", token, map[string][]string{"photo_ids": reversed})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var slider []struct {
		ID          string `json:"id"`
		SliderOrder int    `json:"slider_order"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &slider))
	require.Len(t, slider, 3)
	for i, item := range slider {
		assert.Equal(t, reversed[i], item.ID)
		assert.Equal(t, i, item.SliderOrder)
	}
}

func TestRejectedPhotoLeavesPublicSlider(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, profile := helpers.CreateModelProfile(t, ts, "Zaida", models.StatusApproved)
	photo := helpers.CreatePhoto(t, ts, profile, models.StatusApproved)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/slider", token, map[string]string{"photo_id": photo.ID})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/admin/photos/"+photo.ID+"/reject", token, map[string]string{"reason": "retake"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/slider", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var public []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &public))
	assert.Empty(t, public, "a rejected photo must not reach the homepage")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/slider", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var admin []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &admin))
	require.Len(t, admin, 1, "the admin view keeps the slider row")
	assert.Equal(t, photo.ID, admin[0].ID)
	assert.Equal(t, string(models.StatusRejected), admin[0].Status)
}

func TestPublicSliderEndpoint(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, profile := helpers.CreateModelProfile(t, ts, "Yara", models.StatusApproved)
	photo := helpers.CreatePhoto(t, ts, profile, models.StatusApproved)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/slider", token, map[string]string{"photo_id": photo.ID})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/slider", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var slider []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &slider))
	assert.Len(t, slider, 1)
}
