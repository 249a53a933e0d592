package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker_api/internal/dto"
	"github.com/SscSPs/expense_tracker_api/internal/middleware"
	portssvc "github.com/SscSPs/expense_tracker_api/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_api/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// accessTokenCookieMaxAge caps the cookie lifetime at one day (seconds).
const accessTokenCookieMaxAge = 24 * 60 * 60

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cookieName   string
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService:  us,
		tokenService: ts,
		cookieName:   cfg.AccessTokenCookieName,
		secureCookie: cfg.IsProduction,
	}
}

// registerAuthRoutes sets up the public authentication routes. Login is
// rate limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, loginLimiter *limiter.Limiter) {
	h := NewAuthHandler(services.User, services.Token, cfg)

	r.POST("/register", h.Register)
	if loginLimiter != nil {
		r.POST("/login", middleware.RateLimit(loginLimiter), h.Login)
	} else {
		r.POST("/login", h.Login)
	}
}

// Login godoc
// @Summary User login
// @Description Authenticates a user by email and password. The access token is returned in the body and set as an httpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse "Missing email"
// @Failure 401 {object} dto.ErrorResponse "Wrong password"
// @Failure 404 {object} dto.ErrorResponse "Unknown user"
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Email is required"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, logger, err, "Login")
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, logger, err, "Token generation")
		return
	}

	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge <= 0 || maxAge > accessTokenCookieMaxAge {
		maxAge = accessTokenCookieMaxAge
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cookieName, token, maxAge, "/", "", h.secureCookie, true)

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		User:        dto.ToUserResponse(user),
		AccessToken: token,
		Message:     "Login successful",
	})
}

// Register godoc
// @Summary Register new user
// @Description Creates a new user account. Username is trimmed and email lower-cased.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Username or email already registered"
// @Failure 500 {object} dto.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	newUser, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Register")
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		User:    dto.ToUserResponse(newUser),
		Message: "User registered successfully",
	})
}
