package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"agencia_backend/internal/auth"
	"agencia_backend/internal/models"
	"agencia_backend/internal/slug"

	"github.com/stretchr/testify/require"
)

// CreateUser inserts a user, hashing the raw password on the way in.
func CreateUser(t *testing.T, ts *TestServer, name, email, password string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
	}
	require.NoError(t, ts.DB.Create(user).Error)
	return user
}

// Login authenticates through the API and returns the session token.
func Login(t *testing.T, ts *TestServer, email, password string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login failed: %s", body)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// CreateAndLoginAdmin seeds an admin straight into the database and logs in.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer) (string, *models.User) {
	t.Helper()

	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	user := CreateUser(t, ts, "Admin", email, "password123", models.UserRoleAdmin)
	return Login(t, ts, email, "password123"), user
}

// CreateModelProfile inserts a model user with a profile in the given status.
func CreateModelProfile(t *testing.T, ts *TestServer, artisticName string, status models.ModerationStatus) (*models.User, *models.Profile) {
	t.Helper()

	email := fmt.Sprintf("model_%d@test.com", time.Now().UnixNano())
	user := CreateUser(t, ts, artisticName, email, "password123", models.UserRoleModel)

	profile := &models.Profile{
		UserID:       user.ID,
		ArtisticName: artisticName,
		Slug:         fmt.Sprintf("%s-%d", slug.Make(artisticName), time.Now().UnixNano()),
		Status:       status,
	}
	require.NoError(t, ts.DB.Create(profile).Error)
	return user, profile
}

// CreatePhoto inserts a photo row directly, skipping the upload pipeline.
func CreatePhoto(t *testing.T, ts *TestServer, profile *models.Profile, status models.ModerationStatus) *models.Photo {
	t.Helper()

	photo := &models.Photo{
		ProfileID:   profile.ID,
		UploaderID:  profile.UserID,
		URL:         fmt.Sprintf("/uploads/photos/%d.jpg", time.Now().UnixNano()),
		Filename:    fmt.Sprintf("photos/%d.jpg", time.Now().UnixNano()),
		Status:      status,
		SliderOrder: models.SliderOrderNone,
	}
	require.NoError(t, ts.DB.Create(photo).Error)
	return photo
}
