package handlers_test

import (
	"net/http"
	"testing"

	"community-portal-backend/internal/api/handlers"
	"community-portal-backend/internal/cache"
	"community-portal-backend/internal/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func healthRouter(t *testing.T) (*testutils.HTTPTestSuite, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	h := handlers.NewHealthHandler(db, cache.NewMemoryCache(0), "test")
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/health", h.Health)
	httpSuite.Router.GET("/health/ready", h.Ready)
	httpSuite.Router.GET("/health/live", h.Live)
	return httpSuite, mock
}

func TestHealthHealthy(t *testing.T) {
	httpSuite, mock := healthRouter(t)
	mock.ExpectPing()

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)

	var response handlers.HealthResponse
	testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "healthy", response.Services["database"])
	assert.Equal(t, "healthy", response.Services["cache"])
	assert.Equal(t, "test", response.Version)
}

func TestHealthDatabaseDown(t *testing.T) {
	httpSuite, mock := healthRouter(t)
	mock.ExpectPing().WillReturnError(assert.AnError)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "not ready")
}

func TestHealthLive(t *testing.T) {
	httpSuite, _ := healthRouter(t)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
