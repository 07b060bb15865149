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

func TestAdminUpdateSettings(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/admin/settings", token, map[string]interface{}{
		"hero_tagline":  "Nueva portada",
		"contact_email": "hola@agencia.com",
		"stats":         []map[string]string{{"label": "Modelos", "value": "120"}},
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var settings models.SiteSettings
	require.NoError(t, ts.DB.First(&settings).Error)
	assert.Equal(t, "Nueva portada", settings.HeroTagline)
	assert.Equal(t, "hola@agencia.com", settings.ContactEmail)
	assert.Contains(t, string(settings.Stats), "Modelos")
}

func TestUpdateSettingsPartial(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/admin/settings", token, map[string]string{
		"hero_tagline": "Primera",
		"about_text":   "Texto original",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	// omitted fields stay untouched
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/settings", token, map[string]string{
		"hero_tagline": "Segunda",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var settings models.SiteSettings
	require.NoError(t, ts.DB.First(&settings).Error)
	assert.Equal(t, "Segunda", settings.HeroTagline)
	assert.Equal(t, "Texto original", settings.AboutText)
}

func TestUpdateSettingsValidatesEmail(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginAdmin(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPut, "/api/v1/admin/settings", token, map[string]string{
		"contact_email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestSettingsUpdateRequiresAdmin(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	helpers.CreateUser(t, ts, "Vera", "vera@test.com", "password123", models.UserRoleVisitor)
	token := helpers.Login(t, ts, "vera@test.com", "password123")

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/admin/settings", token, map[string]string{
		"hero_tagline": "Hackeada",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	var resp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "No autorizado", resp.Error.Message)
}
