package api

import (
	"net/http"
	"time"

	"github.com/Mohib75/study-syncer-server/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const sessionCookie = "token"

// IssueToken signs whatever identity object the client posts and returns it
// as an HTTP-only cookie. The identity is not checked against a user store.
func (h *Handler) IssueToken(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil || payload == nil {
		badRequest(c, "identity payload must be a JSON object", "INVALID_REQUEST")
		return
	}

	token, err := h.tokens.Issue(payload)
	if err != nil {
		internalError(c, err)
		return
	}

	log.Debug().Int("claims", len(payload)).Msg("Session token issued")

	http.SetCookie(c.Writer, h.newSessionCookie(token, 0))
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

func (h *Handler) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, h.newSessionCookie("", -1))
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// newSessionCookie applies the deployment's cookie policy: cross-site and
// secure in production, same-site strict everywhere else. A negative maxAge
// expires the cookie.
func (h *Handler) newSessionCookie(value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     sessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	}
	if h.cfg.IsProduction() {
		cookie.SameSite = http.SameSiteNoneMode
	}
	if maxAge < 0 {
		cookie.Expires = time.Unix(0, 0)
	}
	return cookie
}
