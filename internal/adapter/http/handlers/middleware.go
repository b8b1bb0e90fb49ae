package handlers

import (
	"errors"
	"log"
	"net/http"

	"bengal_portal/internal/domain/entities"
	"bengal_portal/internal/usecase"
	"bengal_portal/pkg"

	"github.com/gin-gonic/gin"
)

const sessionUserKey = "portal.session_user"

var (
	errNotSignedIn = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Sign in to continue", http.StatusUnauthorized)
	errStaffOnly   = pkg.NewDomainErrorSimple("FORBIDDEN", "This action is reserved for staff", http.StatusForbidden)
)

// RequireSession loads the active user and stores it in the request
// context. Requests without a session are rejected with 401.
func RequireSession(identity usecase.IIdentityUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := identity.Current(c.Request.Context())
		if err != nil {
			if errors.Is(err, usecase.ErrUnauthenticated) {
				c.AbortWithStatusJSON(errNotSignedIn.HTTPStatus, errNotSignedIn.ToHTTPError())
				return
			}
			log.Printf("[session][middleware] session lookup failed err=%v", err)
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(sessionUserKey, user)
		c.Next()
	}
}

// RequireAdmin must run after RequireSession.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := sessionUser(c)
		if !ok {
			c.AbortWithStatusJSON(errNotSignedIn.HTTPStatus, errNotSignedIn.ToHTTPError())
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(errStaffOnly.HTTPStatus, errStaffOnly.ToHTTPError())
			return
		}
		c.Next()
	}
}

func sessionUser(c *gin.Context) (entities.User, bool) {
	v, ok := c.Get(sessionUserKey)
	if !ok {
		return entities.User{}, false
	}
	user, ok := v.(entities.User)
	return user, ok
}

// currentUser writes a 401 and returns false when no user is attached.
func currentUser(c *gin.Context) (entities.User, bool) {
	user, ok := sessionUser(c)
	if !ok {
		c.JSON(errNotSignedIn.HTTPStatus, errNotSignedIn.ToHTTPError())
	}
	return user, ok
}

// WithSessionUser attaches a user directly. Used by tests and by routes
// mounted behind a different authentication step.
func WithSessionUser(user entities.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionUserKey, user)
		c.Next()
	}
}
