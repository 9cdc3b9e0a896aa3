package server

import (
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	authdomain "github.com/smallbiznis/reviewqr/internal/auth/domain"
	obscontext "github.com/smallbiznis/reviewqr/internal/observability/context"
	"gorm.io/gorm"
)

// SessionCookieName is the browser session cookie the dashboard sets.
const SessionCookieName = "reviewqr_session"

// SessionAuth resolves the session cookie to a user id. Login and session
// issuance live in the dashboard auth layer; this middleware only validates.
func (s *Server) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || strings.TrimSpace(token) == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		var session authdomain.Session
		err = s.db.WithContext(c.Request.Context()).
			First(&session, "id = ?", strings.TrimSpace(token)).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		if err != nil {
			AbortWithError(c, err)
			return
		}
		if !session.Live(time.Now().UTC()) {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		c.Set(contextUserIDKey, session.UserID.String())
		c.Request = c.Request.WithContext(
			obscontext.WithActorID(c.Request.Context(), session.UserID.String()))
		c.Next()
	}
}

func (s *Server) userIDFromSession(c *gin.Context) (snowflake.ID, bool) {
	value, ok := c.Get(contextUserIDKey)
	if !ok {
		return 0, false
	}
	raw, ok := value.(string)
	if !ok {
		return 0, false
	}
	userID, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return userID, true
}
