package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"

	"github.com/lockin-app/lockin/config"
	"github.com/lockin-app/lockin/middleware"
	"github.com/lockin-app/lockin/models"
	"github.com/lockin-app/lockin/store"
	"github.com/lockin-app/lockin/utils"
)

const tokenLifetime = 72 * time.Hour

// AuthController handles account creation, login, and third-party providers.
type AuthController struct {
	users *store.UserStore
}

// NewAuthController creates an AuthController.
func NewAuthController(users *store.UserStore) *AuthController {
	return &AuthController{users: users}
}

// Register creates a local account keyed by email.
func (a *AuthController) Register(ctx *gin.Context) {
	type request struct {
		Name     string `json:"name" binding:"required,min=1,max=64"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6,max=72"`
		Phone    string `json:"phone"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	email := models.NormalizeEmail(req.Email)
	if _, err := a.users.GetByEmail(email); err == nil {
		utils.Fail(ctx, http.StatusConflict, "an account with this email already exists")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to look up account")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{
		Name:          utils.Sanitize(strings.TrimSpace(req.Name)),
		Email:         email,
		Phone:         strings.TrimSpace(req.Phone),
		PasswordHash:  hash,
		SchemaVersion: models.SchemaV2,
	}
	if err := a.users.Create(&user); err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to create account")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenLifetime)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to generate token")
		return
	}

	utils.OK(ctx, gin.H{"token": token, "user": publicUser(user)})
}

// Login authenticates a local account.
func (a *AuthController) Login(ctx *gin.Context) {
	type request struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := a.users.GetByEmail(req.Email)
	if err != nil {
		utils.Fail(ctx, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		utils.Fail(ctx, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenLifetime)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to generate token")
		return
	}

	utils.OK(ctx, gin.H{"token": token, "user": publicUser(*user)})
}

// Me returns the authenticated user's record.
func (a *AuthController) Me(ctx *gin.Context) {
	user, ok := a.currentUser(ctx)
	if !ok {
		return
	}
	utils.OK(ctx, publicUser(*user))
}

// UpdateProfile patches mutable profile fields.
func (a *AuthController) UpdateProfile(ctx *gin.Context) {
	user, ok := a.currentUser(ctx)
	if !ok {
		return
	}

	type request struct {
		Name  *string `json:"name"`
		Phone *string `json:"phone"`
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	if req.Name != nil {
		name := utils.Sanitize(strings.TrimSpace(*req.Name))
		if name == "" {
			utils.Fail(ctx, http.StatusBadRequest, "name cannot be empty")
			return
		}
		user.Name = name
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}

	if err := a.users.Save(user); err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to update profile")
		return
	}
	utils.OK(ctx, publicUser(*user))
}

// OAuthRedirect hands the client the provider authorization URL.
func (a *AuthController) OAuthRedirect(ctx *gin.Context) {
	provider := ctx.Param("provider")
	cfg, err := oauthConfig(provider)
	if err != nil {
		utils.Fail(ctx, http.StatusBadRequest, err.Error())
		return
	}

	state := uuid.NewString()
	utils.SaveState(state, 10*time.Minute)

	url := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
	utils.OK(ctx, gin.H{"authorization_url": url, "state": state})
}

// OAuthCallback exchanges the provider code and signs the user in.
func (a *AuthController) OAuthCallback(ctx *gin.Context) {
	provider := ctx.Param("provider")
	code := ctx.Query("code")
	state := ctx.Query("state")

	if code == "" || state == "" {
		utils.Fail(ctx, http.StatusBadRequest, "missing code or state")
		return
	}
	if !utils.ConsumeState(state) {
		utils.Fail(ctx, http.StatusBadRequest, "invalid or expired state")
		return
	}

	cfg, err := oauthConfig(provider)
	if err != nil {
		utils.Fail(ctx, http.StatusBadRequest, err.Error())
		return
	}

	token, err := cfg.Exchange(context.Background(), code)
	if err != nil {
		utils.Fail(ctx, http.StatusBadRequest, "failed to exchange code")
		return
	}

	info, err := fetchOAuthUser(provider, token)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, err.Error())
		return
	}
	if strings.TrimSpace(info.Email) == "" {
		utils.Fail(ctx, http.StatusBadRequest, "provider account has no visible email")
		return
	}

	user, err := a.findOrCreateOAuthUser(provider, info)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to persist user")
		return
	}

	jwtToken, err := utils.GenerateToken(user.ID, user.Email, tokenLifetime)
	if err != nil {
		utils.Fail(ctx, http.StatusInternalServerError, "failed to generate token")
		return
	}

	utils.OK(ctx, gin.H{"token": jwtToken, "user": publicUser(*user)})
}

func (a *AuthController) findOrCreateOAuthUser(provider string, info *oauthUser) (*models.User, error) {
	db := a.users.DB()

	var user models.User
	err := db.Where("provider = ? AND provider_id = ?", provider, info.ID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// An existing local account with the same email adopts the provider link.
	existing, err := a.users.GetByEmail(info.Email)
	if err == nil {
		existing.Provider = provider
		existing.ProviderID = info.ID
		if err := a.users.Save(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	user = models.User{
		Name:          fallback(info.DisplayName, info.Email),
		Email:         models.NormalizeEmail(info.Email),
		Provider:      provider,
		ProviderID:    info.ID,
		SchemaVersion: models.SchemaV2,
	}
	if err := a.users.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *AuthController) currentUser(ctx *gin.Context) (*models.User, bool) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Fail(ctx, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}
	user, err := a.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Fail(ctx, http.StatusNotFound, "user not found")
		} else {
			utils.Fail(ctx, http.StatusInternalServerError, "failed to load user")
		}
		return nil, false
	}
	return user, true
}

// publicUser strips credentials and internal columns from a user record.
func publicUser(u models.User) gin.H {
	return gin.H{
		"id":              u.ID,
		"email":           u.Email,
		"name":            u.Name,
		"phone":           u.Phone,
		"points":          u.Points,
		"current_streak":  u.CurrentStreak,
		"longest_streak":  u.LongestStreak,
		"last_checkin_at": u.LastCheckinAt,
		"active_plan_id":  u.ActivePlanID,
		"created_at":      u.CreatedAt,
	}
}

func getUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return 0, false
	}
	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		return uint(v), true
	case int64:
		return uint(v), true
	default:
		return 0, false
	}
}

type oauthUser struct {
	ID          string
	DisplayName string
	Email       string
}

func oauthConfig(provider string) (*oauth2.Config, error) {
	cfg := config.Get()
	switch strings.ToLower(provider) {
	case "github":
		if cfg.GitHubClientID == "" || cfg.GitHubClientSecret == "" {
			return nil, fmt.Errorf("github oauth not configured")
		}
		return &oauth2.Config{
			ClientID:     cfg.GitHubClientID,
			ClientSecret: cfg.GitHubClientSecret,
			RedirectURL:  fmt.Sprintf("%s/api/v1/auth/oauth/github/callback", cfg.OAuthRedirectBase),
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     github.Endpoint,
		}, nil
	case "google":
		if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
			return nil, fmt.Errorf("google oauth not configured")
		}
		return &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  fmt.Sprintf("%s/api/v1/auth/oauth/google/callback", cfg.OAuthRedirectBase),
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

func fetchOAuthUser(provider string, token *oauth2.Token) (*oauthUser, error) {
	switch strings.ToLower(provider) {
	case "github":
		return fetchGitHubUser(token)
	case "google":
		return fetchGoogleUser(token)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

func fetchGitHubUser(token *oauth2.Token) (*oauthUser, error) {
	req, _ := http.NewRequest("GET", "https://api.github.com/user", nil)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token.AccessToken))
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github user info request failed: %s", resp.Status)
	}

	var payload struct {
		ID    int64  `json:"id"`
		Login string `json:"login"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return &oauthUser{
		ID:          fmt.Sprintf("%d", payload.ID),
		DisplayName: fallback(payload.Name, payload.Login),
		Email:       payload.Email,
	}, nil
}

func fetchGoogleUser(token *oauth2.Token) (*oauthUser, error) {
	req, _ := http.NewRequest("GET", "https://www.googleapis.com/oauth2/v2/userinfo", nil)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token.AccessToken))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google user info request failed: %s", resp.Status)
	}

	var payload struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return &oauthUser{
		ID:          payload.ID,
		DisplayName: payload.Name,
		Email:       payload.Email,
	}, nil
}

func fallback(value, alt string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return alt
}
