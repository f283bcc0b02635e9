package handlers

import (
	request "mototrackr/internal/adapter/http/dto/request"
	response "mototrackr/internal/adapter/http/dto/response"
	"mototrackr/internal/infrastructure/auth"
	"mototrackr/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTokenPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errBadCredentials      = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
)

// AuthHandler issues bearer tokens for the mechanic dashboard.

type AuthHandler struct {
	creds *auth.CredentialStore
	jwt   *auth.JWT
}

func NewAuthHandler(creds *auth.CredentialStore, jwt *auth.JWT) *AuthHandler {
	return &AuthHandler{creds: creds, jwt: jwt}
}

func (h *AuthHandler) Token(c *gin.Context) {
	var payload request.TokenRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTokenPayload.HTTPStatus, errInvalidTokenPayload.ToHTTPError())
		return
	}

	if err := h.creds.Check(payload.Username, payload.Password); err != nil {
		c.JSON(errBadCredentials.HTTPStatus, errBadCredentials.ToHTTPError())
		return
	}

	token, err := h.jwt.Sign(payload.Username)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NewTokenResponse(token))
}
