//go:build integration
// +build integration

package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dustin/config-service/config"
	"github.com/dustin/config-service/internal/health"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// BootstrapTestSuite exercises the startup path from a raw environment to a
// serving router: load and validate configuration, build the read-only
// config service, and mount the health endpoints.
type BootstrapTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func (suite *BootstrapTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	cfg, err := config.Load(config.Environment{
		"SERVER_ENV":  "development",
		"SERVER_PORT": "3000",
		"DB_HOST":     "localhost",
		"DB_PORT":     "5432",
		"DB_USER":     "postgres",
		"DB_PASSWORD": "postgres",
		"DB_NAME":     "postgres",
	})
	suite.Require().NoError(err)

	router := gin.New()
	handler := health.NewHandler(config.NewService(cfg), func() error { return nil })
	handler.RegisterRoutes(router)

	suite.server = httptest.NewServer(router)
}

func (suite *BootstrapTestSuite) TearDownSuite() {
	if suite.server != nil {
		suite.server.Close()
	}
}

func (suite *BootstrapTestSuite) TestHealthEndpoint() {
	resp, err := http.Get(suite.server.URL + "/health")
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Equal(http.StatusOK, resp.StatusCode)
}

func (suite *BootstrapTestSuite) TestDetailedHealthReportsEnvironment() {
	resp, err := http.Get(suite.server.URL + "/health/detailed")
	suite.Require().NoError(err)
	defer resp.Body.Close()

	suite.Equal(http.StatusOK, resp.StatusCode)

	var body map[string]any
	suite.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	suite.Equal("development", body["environment"])
	suite.Equal("connected", body["database"])
}

func (suite *BootstrapTestSuite) TestInvalidEnvironmentRefusesToBoot() {
	_, err := config.Load(config.Environment{
		"SERVER_ENV": "staging",
	})
	suite.Error(err)
}

func TestBootstrapSuite(t *testing.T) {
	suite.Run(t, new(BootstrapTestSuite))
}
