package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// login verifies credentials and opens an admin session. A failed login
// leaves the requester unauthenticated and changes no state.
func (s *Server) login(c *gin.Context) {
	var params struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	ok, err := s.mongoStore.VerifyAccount(params.Username, params.Password)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	if !ok {
		abortWithEncoding(c, http.StatusUnauthorized, localized(c, errorInvalidCredentials, "auth.invalid_credentials"))
		return
	}

	session := s.sessions.Create(true)
	c.SetCookie(sessionCookieName, session.Token, 0, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// logout always ends the current session, even when there is none.
func (s *Server) logout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookieName); err == nil {
		s.sessions.Delete(token)
	}
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
