package controllers

import (
	"bytes"
	"fmt"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/EGJhon/BackendEsp32/config"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	log.SetLevel(log.ErrorLevel)
	os.Exit(m.Run())
}

// setupTestDB opens a per-test in-memory database and points the global
// connection at it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	MigrateModels(db)
	config.ResetLatestWaterLevel()
	return db
}

func setupRouter() *gin.Engine {
	r := gin.New()
	r.POST("/api/sensores", ReceiveData)
	r.GET("/api/sensores", GetHistory)
	r.GET("/api/sensores/ultimo", GetLatestReading)
	r.GET("/api/sensores/planta/:id", GetPlantHistory)
	r.GET("/api/sensores/nivel-agua", GetWaterLevel)
	r.GET("/api/sensores/csv", DownloadCSV)
	r.GET("/api/plantas/:correo", GetPlantsByOwner)
	r.POST("/api/plantas", RegisterPlant)
	return r
}

func performRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
