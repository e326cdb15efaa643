package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"go-talent-backend/config"
	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/logger"
	"go-talent-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	profileUC domain.ProfileUsecase
	config    *config.Config
	client    *http.Client
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, profileUC domain.ProfileUsecase, cfg *config.Config) {
	handler := &AuthHandler{
		profileUC: profileUC,
		config:    cfg,
		client:    &http.Client{Timeout: 10 * time.Second},
	}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", handler.Register)
		publicAuth.POST("/login", handler.Login)
		publicAuth.POST("/forgot-password", handler.ForgotPassword)
		publicAuth.POST("/reset-password", handler.ResetPassword)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
	}
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// gotrue posts a JSON body to a Supabase auth endpoint, forwarding the
// caller's IP and user agent, and decodes the reply into out.
func (h *AuthHandler) gotrue(c *gin.Context, method, path, bearer string, body interface{}, out interface{}) (int, error) {
	jsonBody, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(c.Request.Context(), method,
		h.config.SupabaseUrl+"/auth/v1"+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", h.config.SupabaseKey)
	req.Header.Set("X-Forwarded-For", c.ClientIP())
	req.Header.Set("User-Agent", c.Request.UserAgent())
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && resp.StatusCode < 400 {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

// gotrueUser returns the user object of a GoTrue reply. With
// autoconfirm enabled the endpoints return a session with the user
// nested under "user"; otherwise the user object is the reply itself.
func gotrueUser(raw map[string]interface{}) map[string]interface{} {
	if nested, ok := raw["user"].(map[string]interface{}); ok {
		return nested
	}
	return raw
}

// gotrueErrorMessage extracts a human-readable message from a GoTrue
// error payload.
func gotrueErrorMessage(payload map[string]interface{}, fallback string) string {
	if m, ok := payload["msg"].(string); ok && m != "" {
		return m
	}
	if m, ok := payload["error_description"].(string); ok && m != "" {
		return m
	}
	return fallback
}

// Register godoc
// @Summary      Create an account
// @Description  Validates the signup form, registers the user with Supabase and creates the talent profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Signup form"
// @Success      201       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	// All form constraints are checked before anything is written
	if !validation.ValidateName(req.FirstName) {
		c.Error(apperror.BadRequest("First name must be between 2 and 50 characters"))
		return
	}
	if !validation.ValidateName(req.LastName) {
		c.Error(apperror.BadRequest("Last name must be between 2 and 50 characters"))
		return
	}
	if !validation.ValidateEmail(req.Email) {
		c.Error(apperror.BadRequest("Email address is not valid"))
		return
	}
	if pw := validation.ValidatePassword(req.Password); !pw.Valid {
		response.Error(c, http.StatusBadRequest, "Password does not meet the requirements", pw.Errors)
		return
	}

	signupBody := map[string]interface{}{
		"email":    req.Email,
		"password": req.Password,
		"data": map[string]interface{}{
			"first_name": req.FirstName,
			"last_name":  req.LastName,
		},
		"options": map[string]interface{}{
			"emailRedirectTo": h.config.FrontendURL + "/auth/callback",
		},
	}

	var raw map[string]interface{}
	status, err := h.gotrue(c, http.MethodPost, "/signup", "", signupBody, &raw)
	if err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Registration service unavailable", err))
		return
	}
	if status >= 400 {
		c.Error(apperror.BadRequest(gotrueErrorMessage(raw, "Registration failed")))
		return
	}

	userID, _ := gotrueUser(raw)["id"].(string)
	if userID != "" {
		profile := &domain.Profile{
			UserID:    userID,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Role:      domain.RoleUser,
		}
		if err := h.profileUC.EnsureProfile(c.Request.Context(), profile); err != nil {
			logger.Log.Error("Profile creation after signup failed", "user_id", userID, "error", err)
			c.Error(err)
			return
		}
	}

	response.Success(c, http.StatusCreated, "Registration successful. Please check your email to confirm.", nil)
}

// Login godoc
// @Summary      Sign in
// @Description  Exchanges email and password for a Supabase access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	var raw map[string]interface{}
	status, err := h.gotrue(c, http.MethodPost, "/token?grant_type=password", "",
		map[string]interface{}{"email": req.Email, "password": req.Password}, &raw)
	if err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Login service unavailable", err))
		return
	}
	if status >= 400 {
		msg := "Invalid email or password"
		if m := gotrueErrorMessage(raw, ""); m == "Email not confirmed" {
			msg = m
		}
		c.Error(apperror.Unauthorized(msg))
		return
	}

	// Heals accounts whose profile row was never written, e.g. signups
	// confirmed outside this API.
	user := gotrueUser(raw)
	if userID, _ := user["id"].(string); userID != "" {
		profile := &domain.Profile{
			UserID: userID,
			Email:  req.Email,
			Role:   domain.RoleUser,
		}
		if meta, ok := user["user_metadata"].(map[string]interface{}); ok {
			profile.FirstName, _ = meta["first_name"].(string)
			profile.LastName, _ = meta["last_name"].(string)
		}
		if err := h.profileUC.EnsureProfile(c.Request.Context(), profile); err != nil {
			logger.Log.Warn("Profile sync at login failed", "user_id", userID, "error", err)
		}
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"access_token":  raw["access_token"],
		"refresh_token": raw["refresh_token"],
		"expires_in":    raw["expires_in"],
	})
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword godoc
// @Summary      Request a password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        forgot  body      ForgotPasswordRequest  true  "Account email"
// @Success      200     {object}  response.Response
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	body := map[string]interface{}{
		"email": req.Email,
		"options": map[string]interface{}{
			"emailRedirectTo": h.config.FrontendURL + "/auth/reset-password",
		},
	}
	if _, err := h.gotrue(c, http.MethodPost, "/recover", "", body, nil); err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Password reset service unavailable", err))
		return
	}

	// Always the same reply, whether or not the account exists
	response.Success(c, http.StatusOK, "If the account exists, a reset email has been sent.", nil)
}

type ResetPasswordRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
	Password    string `json:"password" binding:"required"`
}

// ResetPassword godoc
// @Summary      Set a new password
// @Description  Consumes the recovery token from the reset email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        reset  body      ResetPasswordRequest  true  "Recovery token and new password"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if pw := validation.ValidatePassword(req.Password); !pw.Valid {
		response.Error(c, http.StatusBadRequest, "Password does not meet the requirements", pw.Errors)
		return
	}

	var raw map[string]interface{}
	status, err := h.gotrue(c, http.MethodPut, "/user", req.AccessToken,
		map[string]interface{}{"password": req.Password}, &raw)
	if err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Password reset service unavailable", err))
		return
	}
	if status >= 400 {
		c.Error(apperror.BadRequest(gotrueErrorMessage(raw, "Password reset failed")))
		return
	}

	response.Success(c, http.StatusOK, "Password updated successfully", nil)
}

// Me godoc
// @Summary      Current profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=domain.ProfileDetails}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	profile, err := h.profileUC.Me(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Current profile", profile)
}
