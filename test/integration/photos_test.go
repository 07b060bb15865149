package integration

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"testing"

	"agencia_backend/internal/models"
	"agencia_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadPhoto sends a freshly encoded PNG through the multipart endpoint.
func uploadPhoto(t *testing.T, ts *helpers.TestServer, token, profileID string) (*http.Response, string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var pngBuf bytes.Buffer
	require.NoError(t, png.Encode(&pngBuf, img))

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("profile_id", profileID))

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="file"; filename="foto.png"`}
	header["Content-Type"] = []string{"image/png"}
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(pngBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+"/api/v1/photos", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	resBody, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(resBody)
}

func TestUploadRequiresAuth(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	_, profile := helpers.CreateModelProfile(t, ts, "Karla", models.StatusApproved)

	res, _ := uploadPhoto(t, ts, "", profile.ID)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestModelUploadsToOwnProfileOnly(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	owner, profile := helpers.CreateModelProfile(t, ts, "Laura", models.StatusApproved)
	_, otherProfile := helpers.CreateModelProfile(t, ts, "Marta", models.StatusApproved)

	token := helpers.Login(t, ts, owner.Email, "password123")

	res, body := uploadPhoto(t, ts, token, profile.ID)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var photo struct {
		Status       string `json:"status"`
		ThumbnailURL string `json:"thumbnail_url"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &photo))
	assert.Equal(t, "PENDING", photo.Status, "model uploads start pending")
	assert.NotEmpty(t, photo.ThumbnailURL)

	res, _ = uploadPhoto(t, ts, token, otherProfile.ID)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestAdminUploadIsApprovedImmediately(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, profile := helpers.CreateModelProfile(t, ts, "Nora", models.StatusApproved)

	res, body := uploadPhoto(t, ts, token, profile.ID)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var photo struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &photo))
	assert.Equal(t, "APPROVED", photo.Status)
}

func TestPhotoModeration(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, profile := helpers.CreateModelProfile(t, ts, "Olga", models.StatusApproved)
	photo := helpers.CreatePhoto(t, ts, profile, models.StatusPending)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/photos/"+photo.ID+"/reject", token, map[string]string{
		"reason": "Baja resolución",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var got models.Photo
	require.NoError(t, ts.DB.First(&got, "id = ?", photo.ID).Error)
	require.Equal(t, models.StatusRejected, got.Status)
	require.NotNil(t, got.RejectionReason)
	assert.Equal(t, "Baja resolución", *got.RejectionReason)

	// approval clears the rejection reason
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/admin/photos/"+photo.ID+"/approve", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	require.NoError(t, ts.DB.First(&got, "id = ?", photo.ID).Error)
	assert.Equal(t, models.StatusApproved, got.Status)
	assert.Nil(t, got.RejectionReason)
}

func TestSetProfilePhotoKeepsSingleFlag(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, profile := helpers.CreateModelProfile(t, ts, "Paula", models.StatusApproved)
	first := helpers.CreatePhoto(t, ts, profile, models.StatusApproved)
	second := helpers.CreatePhoto(t, ts, profile, models.StatusApproved)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/admin/models/"+profile.ID+"/profile-photo/"+first.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/models/"+profile.ID+"/profile-photo/"+second.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var flagged int64
	ts.DB.Model(&models.Photo{}).Where("profile_id = ? AND is_profile_photo = ?", profile.ID, true).Count(&flagged)
	assert.Equal(t, int64(1), flagged, "at most one profile photo per profile")

	var got models.Photo
	require.NoError(t, ts.DB.First(&got, "id = ?", second.ID).Error)
	assert.True(t, got.IsProfilePhoto)
}

func TestSetProfilePhotoRejectsForeignPhoto(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, profile := helpers.CreateModelProfile(t, ts, "Queta", models.StatusApproved)
	_, other := helpers.CreateModelProfile(t, ts, "Rosa", models.StatusApproved)
	foreign := helpers.CreatePhoto(t, ts, other, models.StatusApproved)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/admin/models/"+profile.ID+"/profile-photo/"+foreign.ID, token, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestReorderGallery(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, profile := helpers.CreateModelProfile(t, ts, "Sara", models.StatusApproved)
	a := helpers.CreatePhoto(t, ts, profile, models.StatusApproved)
	b := helpers.CreatePhoto(t, ts, profile, models.StatusApproved)

	res, _ := ts.SendRequest(t, http.MethodPatch, "/api/v1/admin/models/"+profile.ID+"/gallery", token, map[string][]string{
		"photo_ids": {b.ID, a.ID},
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var got models.Photo
	require.NoError(t, ts.DB.First(&got, "id = ?", b.ID).Error)
	assert.Equal(t, 0, got.Order)
	require.NoError(t, ts.DB.First(&got, "id = ?", a.ID).Error)
	assert.Equal(t, 1, got.Order)
}

// countUploadedFiles walks the upload directory counting regular files.
func countUploadedFiles(t *testing.T, root string) int {
	t.Helper()

	var count int
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	require.NoError(t, err)
	return count
}

func TestDeleteProfileRemovesFilesAndThumbnails(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, profile := helpers.CreateModelProfile(t, ts, "Ursula", models.StatusApproved)

	res, _ := uploadPhoto(t, ts, token, profile.ID)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	uploadDir := ts.Cfg.Storage.BasePath
	require.Equal(t, 2, countUploadedFiles(t, uploadDir), "upload writes the original and its thumbnail")

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/admin/models/"+profile.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	assert.Zero(t, countUploadedFiles(t, uploadDir), "no files survive the profile")
}

func TestDeletePhoto(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, profile := helpers.CreateModelProfile(t, ts, "Tina", models.StatusApproved)
	photo := helpers.CreatePhoto(t, ts, profile, models.StatusApproved)

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/admin/photos/"+photo.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var count int64
	ts.DB.Model(&models.Photo{}).Where("id = ?", photo.ID).Count(&count)
	assert.Zero(t, count)
}
