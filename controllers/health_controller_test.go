package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/orderman/orderman-api/store"
	"github.com/orderman/orderman-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInspector struct {
	pingErr   error
	tablesErr error
}

func (f fakeInspector) Ping(ctx context.Context) error { return f.pingErr }

func (f fakeInspector) Tables(ctx context.Context) ([]string, error) {
	return []string{"customers"}, f.tablesErr
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	NewHealthController(fakeInspector{}).HealthCheck(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 2, "Response should have exactly 2 fields")
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Order Management API is running", response["message"])
}

func TestDatabaseStatus(t *testing.T) {
	ctx := context.Background()
	s := store.New(testutil.NewTestDB(t))
	require.NoError(t, s.Migrate(ctx))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/database/status", NewHealthController(s).DatabaseStatus)

	req, _ := http.NewRequest("GET", "/api/v1/database/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool     `json:"success"`
		Tables  []string `json:"tables"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Subset(t, response.Tables, []string{"customers", "orders", "invoices", "payments", "products"})
}

func TestDatabaseStatusFailures(t *testing.T) {
	tests := []struct {
		name         string
		inspector    fakeInspector
		expectedCode string
	}{
		{"ping fails", fakeInspector{pingErr: errors.New("down")}, "DATABASE_CONNECTION_ERROR"},
		{"table listing fails", fakeInspector{tablesErr: errors.New("denied")}, "DATABASE_QUERY_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest("GET", "/api/v1/database/status", nil)

			NewHealthController(tt.inspector).DatabaseStatus(c)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, false, response["success"])
			assert.Equal(t, tt.expectedCode, response["error"].(map[string]interface{})["code"])
		})
	}
}
