package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MaximZagorsk/polls-drf-api/config"
	"github.com/MaximZagorsk/polls-drf-api/internal/auth"
	models "github.com/MaximZagorsk/polls-drf-api/pkg/db"
	"github.com/MaximZagorsk/polls-drf-api/pkg/logger"
)

// TokenHandler issues both credential kinds: admin sessions and anonymous
// responder tokens.
type TokenHandler struct {
	config *config.Config
	db     *gorm.DB
	auth   *auth.Manager
}

// NewTokenHandler creates a new TokenHandler
func NewTokenHandler(cfg *config.Config, gdb *gorm.DB, manager *auth.Manager) *TokenHandler {
	return &TokenHandler{
		config: cfg,
		db:     gdb,
		auth:   manager,
	}
}

type PostTokenBody struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type TokenData struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiJ9..."`
}

// PostToken
//
// @Summary		Obtain an admin session token
// @Description	Exchange the configured admin credentials for a signed session token
// @Tags			auth
// @Accept			json
// @Produce		json
// @Param			body	body		PostTokenBody	true	"Admin credentials"
// @Success		200	{object}	apiResponses.BaseResponse{data=TokenData}
// @Failure		401	{object}	apiResponses.UnauthorizedError
// @Router			/token [post]
func (h *TokenHandler) PostToken(w http.ResponseWriter, r *http.Request) {
	var body PostTokenBody
	if !decodeJSONBody(w, r, &body) {
		return
	}
	if !requireField(w, "email", body.Email) || !requireField(w, "password", body.Password) {
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(*body.Email), []byte(h.config.Auth.AdminEmail)) == 1
	passwordOK := h.config.Auth.AdminPassword != "" &&
		subtle.ConstantTimeCompare([]byte(*body.Password), []byte(h.config.Auth.AdminPassword)) == 1
	if h.config.IsDevelopment() && h.config.Auth.AdminPassword == "" {
		// local setups may run without a password configured
		passwordOK = true
	}
	if !emailOK || !passwordOK {
		gecho.Unauthorized(w).WithMessage("Unable to log in with provided credentials.").Send()
		return
	}

	token, err := h.auth.Issue(*body.Email)
	if err != nil {
		logger.Err(err.Error())
		gecho.InternalServerError(w).Send()
		return
	}

	gecho.Success(w).WithData(TokenData{Token: token}).Send()
}

// PostAnonimToken
//
// @Summary		Obtain an anonymous credential
// @Description	Create a fresh anonymous identity and return its opaque bearer token
// @Tags			auth
// @Produce		json
// @Success		201	{object}	apiResponses.BaseResponse{data=TokenData}
// @Router			/anonim-token [post]
func (h *TokenHandler) PostAnonimToken(w http.ResponseWriter, r *http.Request) {
	// the credential is provisioned right where the identity is created
	user := models.User{Token: uuid.NewString()}
	if err := h.db.WithContext(r.Context()).Create(&user).Error; err != nil {
		logger.Err(err.Error())
		gecho.InternalServerError(w).Send()
		return
	}

	gecho.Created(w).WithData(TokenData{Token: user.Token}).Send()
}
