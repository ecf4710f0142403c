package roster

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"roster-sync/core/remote"
	"roster-sync/core/storage/mocks"
	"roster-sync/feature/roster/faction"
	"roster-sync/feature/roster/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(provider *fakeProvider, publisher Publisher) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	svc := newTestService(mockClient, provider, nil, publisher, defaultConfig())
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, mockClient
}

func TestHandleListFactions(t *testing.T) {
	app, _ := setupTestApp(&fakeProvider{name: "database"}, nil)

	req := httptest.NewRequest("GET", "/roster/factions", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body []map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, len(faction.All()))
	assert.Equal(t, faction.NorthernTribes, body[0]["id"])
	assert.Equal(t, "Northern Tribes", body[0]["name"])
}

func TestHandleValidate_UnknownFaction(t *testing.T) {
	app, _ := setupTestApp(&fakeProvider{name: "database"}, nil)

	req := httptest.NewRequest("GET", "/roster/validate/atlantis", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleValidate_OK(t *testing.T) {
	provider := &fakeProvider{
		name:  "database",
		units: map[string][]models.UnitRecord{faction.NorthernTribes: battleScarredReference()},
	}
	app, mockClient := setupTestApp(provider, nil)
	expectCSV(mockClient, faction.NorthernTribes, battleScarredCSV)

	req := httptest.NewRequest("GET", "/roster/validate/northern-tribes", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report models.ReconciliationReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, faction.NorthernTribes, report.FactionID)
	assert.Len(t, report.Matched, 1)
	mockClient.AssertExpectations(t)
}

func TestHandleValidate_MalformedCSVIs422(t *testing.T) {
	app, mockClient := setupTestApp(&fakeProvider{name: "database"}, nil)
	expectCSV(mockClient, faction.Syenann, "name,faction\nGrove Guard,syenann,extra\n")

	req := httptest.NewRequest("GET", "/roster/validate/syenann", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 422, resp.StatusCode)
}

func TestHandlePublish_UnauthorizedIs403(t *testing.T) {
	publisher := &fakePublisher{err: remote.ErrUnauthorized}
	app, mockClient := setupTestApp(&fakeProvider{name: "database"}, publisher)
	expectCSV(mockClient, faction.NorthernTribes, battleScarredCSV)

	req := httptest.NewRequest("POST", "/roster/publish/northern-tribes", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestHandleGenerate_OK(t *testing.T) {
	app, mockClient := setupTestApp(&fakeProvider{name: "database"}, nil)
	expectCSV(mockClient, faction.NorthernTribes, battleScarredCSV)

	req := httptest.NewRequest("GET", "/roster/generate/northern-tribes", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var files map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&files))
	assert.Contains(t, files["troops"], "Battle-Scarred")
}
