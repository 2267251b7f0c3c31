package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/user_profile_aggregator/internal/apperrors"
	portssvc "github.com/SscSPs/user_profile_aggregator/internal/core/ports/services"
	"github.com/SscSPs/user_profile_aggregator/internal/dto"
	"github.com/SscSPs/user_profile_aggregator/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// userHandler handles HTTP requests for aggregated user profiles.
type userHandler struct {
	profileService portssvc.ProfileSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(ps portssvc.ProfileSvcFacade) *userHandler {
	return &userHandler{
		profileService: ps,
	}
}

// registerUserRoutes registers the profile route, throttled when a limiter is given.
func registerUserRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade, rateLimiter *limiter.Limiter) {
	h := newUserHandler(profileService)

	handlers := []gin.HandlerFunc{}
	if rateLimiter != nil {
		handlers = append(handlers, middleware.RateLimit(rateLimiter))
	}
	handlers = append(handlers, h.getUserProfile)

	rg.GET("/user", handlers...)
}

// getUserProfile godoc
// @Summary Get a random user profile
// @Description Generates a random person and enriches it with country metadata, exchange rates against USD and KZT, and recent news about the person's country. Missing API keys or failing upstreams degrade to static data.
// @Tags user
// @Produce json
// @Success 200 {object} dto.UserProfileResponse
// @Failure 429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} dto.ErrorResponse "Random user could not be fetched"
// @Router /user [get]
func (h *userHandler) getUserProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profile, err := h.profileService.BuildProfile(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrPersonUnavailable) {
			logger.Warn("Random user unavailable", slog.String("error", err.Error()))
		} else {
			logger.Error("Failed to build user profile", slog.String("error", err.Error()))
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
		return
	}

	middleware.SetEventProperty(c, "country", profile.Country.Name)
	middleware.SetEventProperty(c, "currency_code", profile.Country.CurrencyCode)

	logger.Info("User profile served",
		slog.String("country", profile.Country.Name),
		slog.Int("news_items", len(profile.News)))
	c.JSON(http.StatusOK, dto.ToUserProfileResponse(profile))
}
