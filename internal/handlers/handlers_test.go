package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/user_profile_aggregator/internal/adapters/upstream"
	"github.com/SscSPs/user_profile_aggregator/internal/apperrors"
	"github.com/SscSPs/user_profile_aggregator/internal/core/domain"
	portssvc "github.com/SscSPs/user_profile_aggregator/internal/core/ports/services"
	"github.com/SscSPs/user_profile_aggregator/internal/core/ports/upstreams"
	"github.com/SscSPs/user_profile_aggregator/internal/core/services"
	"github.com/SscSPs/user_profile_aggregator/internal/handlers"
	"github.com/SscSPs/user_profile_aggregator/internal/middleware"
	"github.com/SscSPs/user_profile_aggregator/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProfileService ---
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) BuildProfile(ctx context.Context) (*domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ProfileSvcFacade = (*MockProfileService)(nil)

// --- Test Suite ---
type UserHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	profileService *MockProfileService
	cfg            *config.Config
}

func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.profileService = new(MockProfileService)
	suite.cfg = &config.Config{Port: 3000, IsProduction: true, PublicDir: suite.T().TempDir()}

	suite.router = gin.New()
	suite.router.Use(middleware.JSONRecovery())
	handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{Profile: suite.profileService}, nil)
}

func (suite *UserHandlerTestSuite) get(path string) (*httptest.ResponseRecorder, map[string]any) {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]any
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &body)
	}
	return w, body
}

func (suite *UserHandlerTestSuite) TestGetUserProfile_Success() {
	profile := &domain.Profile{
		Person: domain.Person{
			FirstName: "Emil",
			LastName:  "Nielsen",
			DOB:       time.Date(1995, time.December, 9, 0, 0, 0, 0, time.Local),
			Age:       29,
			Country:   "Denmark",
		},
		Country:  domain.CountryInfo{Name: "Denmark", Capital: "Copenhagen", CurrencyCode: "DKK"},
		Exchange: domain.ExchangeQuote{BaseCurrency: "DKK", ToUSD: "0.1450", ToKZT: "69.50"},
		News:     []domain.NewsItem{{Title: "Copenhagen marathon"}},
	}
	suite.profileService.On("BuildProfile", mock.Anything).Return(profile, nil).Once()

	w, body := suite.get("/api/user")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(true, body["success"])
	user := body["user"].(map[string]any)
	suite.Equal("Emil", user["firstName"])
	suite.Equal("12/09/1995", user["dob"])
	suite.Equal(float64(29), user["age"])
	suite.Equal("DKK", body["country"].(map[string]any)["currencyCode"])
	suite.Equal("0.1450", body["exchange"].(map[string]any)["toUSD"])
	suite.Len(body["news"], 1)
	suite.profileService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestGetUserProfile_PersonUnavailable() {
	err := fmt.Errorf("%w: %w", apperrors.ErrPersonUnavailable, apperrors.ErrUpstreamUnavailable)
	suite.profileService.On("BuildProfile", mock.Anything).Return(nil, err).Once()

	w, body := suite.get("/api/user")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal(false, body["success"])
	suite.NotEmpty(body["error"])
	suite.Contains(body["error"], "failed to fetch random user")
}

func (suite *UserHandlerTestSuite) TestGetUserProfile_PanicIsRecovered() {
	suite.profileService.On("BuildProfile", mock.Anything).Panic("nil map in aggregation").Once()

	w, body := suite.get("/api/user")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal(false, body["success"])
	suite.Equal("nil map in aggregation", body["error"])
}

func (suite *UserHandlerTestSuite) TestHealth_IsStable() {
	first, firstBody := suite.get("/api/health")
	second, _ := suite.get("/api/health")

	suite.Equal(http.StatusOK, first.Code)
	suite.Equal("OK", firstBody["status"])
	suite.Equal(float64(3000), firstBody["port"])
	suite.Equal(first.Body.String(), second.Body.String())
}

func (suite *UserHandlerTestSuite) TestSwaggerDisabledInProduction() {
	w, _ := suite.get("/swagger/doc.json")
	suite.Equal(http.StatusNotFound, w.Code)

	for _, route := range suite.router.Routes() {
		suite.NotEqual("/swagger/*any", route.Path)
	}
}

func TestSwaggerEnabledOutsideProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cfg := &config.Config{Port: 3000, IsProduction: false, PublicDir: t.TempDir()}
	handlers.RegisterRoutes(router, cfg, &portssvc.ServiceContainer{Profile: new(MockProfileService)}, nil)

	paths := make([]string, 0)
	for _, route := range router.Routes() {
		paths = append(paths, route.Path)
	}
	assert.Contains(t, paths, "/swagger/*any")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/user")
}

func (suite *UserHandlerTestSuite) TestStaticFilesServedForUnknownRoutes() {
	indexPath := filepath.Join(suite.cfg.PublicDir, "index.html")
	suite.Require().NoError(os.WriteFile(indexPath, []byte("<h1>profiles</h1>"), 0o600))

	w, _ := suite.get("/")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "<h1>profiles</h1>")

	w, _ = suite.get("/missing.js")
	suite.Equal(http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/anything", nil))
	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"success":false,"error":"route not found"}`, w.Body.String())
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

// --- End to end with real upstream adapters ---

const franceUser = `{"results":[{"gender":"male","name":{"first":"Hugo","last":"Lefebvre"},
"location":{"street":{"number":12,"name":"Rue Pasteur"},"city":"Nantes","country":"France"},
"email":"hugo.lefebvre@example.com","dob":{"date":"1984-02-29T08:00:00.000Z"},
"phone":"02-40-00-00-00","picture":{"large":"https://randomuser.me/api/portraits/men/3.jpg"},"nat":"FR"}]}`

func newAggregatorRouter(t *testing.T, randomUserURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	httpClient := upstream.NewHTTPClient(2 * time.Second)
	cfg := &config.Config{Port: 3000, IsProduction: true, PublicDir: t.TempDir(), NewsSource: config.NewsSourceLive}
	sources := upstreams.UpstreamProvider{
		Person:   upstream.NewRandomUserClient(httpClient, randomUserURL),
		Country:  upstream.NewCountryLayerClient(httpClient, "http://127.0.0.1:1", ""),
		Exchange: upstream.NewExchangeRateClient(httpClient, "http://127.0.0.1:1", "your_api_key_here"),
		News:     upstream.NewNewsAPIClient(httpClient, "http://127.0.0.1:1", ""),
	}

	router := gin.New()
	router.Use(middleware.JSONRecovery())
	handlers.RegisterRoutes(router, cfg, services.NewServiceContainer(cfg, sources), nil)
	return router
}

func TestAggregator_NoKeysFallsBackToStaticData(t *testing.T) {
	randomUser := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, franceUser)
	}))
	defer randomUser.Close()

	router := newAggregatorRouter(t, randomUser.URL)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/user", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success bool `json:"success"`
		User    struct {
			DOB     string `json:"dob"`
			Country string `json:"country"`
			Address string `json:"address"`
		} `json:"user"`
		Country  domain.CountryInfo   `json:"country"`
		Exchange domain.ExchangeQuote `json:"exchange"`
		News     []domain.NewsItem    `json:"news"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, "02/29/1984", body.User.DOB)
	assert.Equal(t, "Rue Pasteur, 12", body.User.Address)
	assert.Equal(t, "EUR", body.Country.CurrencyCode)
	assert.Equal(t, "Paris", body.Country.Capital)
	assert.Equal(t, "EUR", body.Exchange.BaseCurrency)
	assert.Equal(t, "1.08", body.Exchange.ToUSD)
	assert.NotNil(t, body.News)
	assert.Empty(t, body.News)
}

func TestAggregator_RandomUserDown(t *testing.T) {
	randomUser := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer randomUser.Close()

	router := newAggregatorRouter(t, randomUser.URL)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/user", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	msg, _ := body["error"].(string)
	assert.NotEmpty(t, msg)
	assert.Contains(t, msg, apperrors.ErrPersonUnavailable.Error())
}

func TestRateLimitedUserRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rateLimiter, err := middleware.NewRateLimiter("1-M")
	require.NoError(t, err)

	profileService := new(MockProfileService)
	profileService.On("BuildProfile", mock.Anything).Return(&domain.Profile{}, nil).Once()

	router := gin.New()
	handlers.RegisterRoutes(router, &config.Config{Port: 3000, IsProduction: true}, &portssvc.ServiceContainer{Profile: profileService}, rateLimiter)

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
		req.RemoteAddr = "192.0.2.10:5555"
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests}, codes)
	profileService.AssertExpectations(t)
}
