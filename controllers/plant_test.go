package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/EGJhon/BackendEsp32/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterPlant(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter()

	w := performRequest(r, http.MethodPost, "/api/plantas",
		`{"nombre": "Albahaca", "ubicacion": "Balcón", "tipo_id": "hierba", "correo": "ana@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.Plant `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Albahaca", resp.Data.Name)
	assert.Equal(t, "Balcón", resp.Data.Location)
	assert.NotZero(t, resp.Data.ID)
	assert.False(t, resp.Data.RegisteredAt.IsZero())

	assert.EqualValues(t, 1, countRows(t, db, &models.Plant{}))
}

func TestRegisterPlantLocationDefaultsToEmpty(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter()

	w := performRequest(r, http.MethodPost, "/api/plantas",
		`{"nombre": "Menta", "tipo_id": "hierba", "correo": "ana@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var plant models.Plant
	require.NoError(t, db.First(&plant).Error)
	assert.Equal(t, "", plant.Location)
}

func TestRegisterPlantMissingFields(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter()

	bodies := []string{
		`{"ubicacion": "Balcón", "tipo_id": "hierba", "correo": "ana@example.com"}`,
		`{"nombre": "Menta", "correo": "ana@example.com"}`,
		`{"nombre": "Menta", "tipo_id": "hierba"}`,
	}
	for _, body := range bodies {
		w := performRequest(r, http.MethodPost, "/api/plantas", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}

	assert.EqualValues(t, 0, countRows(t, db, &models.Plant{}))
}

func TestRegisterPlantDatastoreFault(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter()

	require.NoError(t, db.Migrator().DropTable(&models.Plant{}))

	w := performRequest(r, http.MethodPost, "/api/plantas",
		`{"nombre": "Menta", "tipo_id": "hierba", "correo": "ana@example.com"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "Error en el servidor"}`, w.Body.String())
}

func TestGetPlantsByOwner(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter()

	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Plant{
		Name: "Menta", TypeID: "hierba", OwnerEmail: "ana@example.com", RegisteredAt: base,
	}).Error)
	require.NoError(t, db.Create(&models.Plant{
		Name: "Tomate", TypeID: "hortaliza", OwnerEmail: "ana@example.com", RegisteredAt: base.Add(time.Hour),
	}).Error)
	require.NoError(t, db.Create(&models.Plant{
		Name: "Ficus", TypeID: "interior", OwnerEmail: "otro@example.com", RegisteredAt: base,
	}).Error)

	w := performRequest(r, http.MethodGet, "/api/plantas/ana@example.com", "")
	require.Equal(t, http.StatusOK, w.Code)

	var plants []models.Plant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plants))
	require.Len(t, plants, 2)
	assert.Equal(t, "Tomate", plants[0].Name)
	assert.Equal(t, "Menta", plants[1].Name)
}

func TestGetPlantsByOwnerEmpty(t *testing.T) {
	setupTestDB(t)
	r := setupRouter()

	w := performRequest(r, http.MethodGet, "/api/plantas/nadie@example.com", "")
	require.Equal(t, http.StatusOK, w.Code)

	var plants []models.Plant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plants))
	assert.Empty(t, plants)
}
