package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sociocap/capgen_go_server/internal/testutil"
)

func TestHealthHandler_CheckDB_Success(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	testutil.TestUser(t, db)

	h := NewHealthHandler(db)
	router := gin.New()
	router.GET("/health/db", h.CheckDB)

	req := httptest.NewRequest("GET", "/health/db", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool                     `json:"success"`
		Message string                   `json:"message"`
		Data    []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Database connection successful", body.Message)
	assert.Len(t, body.Data, 1)
}

func TestHealthHandler_CheckDB_Failure(t *testing.T) {
	db := testutil.SetupTestDB(t)

	// 关掉底层连接制造存储故障
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	h := NewHealthHandler(db)
	router := gin.New()
	router.GET("/health/db", h.CheckDB)

	req := httptest.NewRequest("GET", "/health/db", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.Error)
}
