package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/servtech/authd/internal/common"
	"github.com/servtech/authd/internal/server/users"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, fmt.Errorf("%w: request body must be JSON", common.ErrValidation))
		return
	}

	res, err := s.users.Register(c.Request.Context(), req.Username, req.Password, users.Role(req.Role))
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusCreated, "user registered successfully", gin.H{
		"user":  res.User,
		"token": res.Token,
	})
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, fmt.Errorf("%w: request body must be JSON", common.ErrValidation))
		return
	}

	res, err := s.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, "login successful", gin.H{
		"user":  res.User,
		"token": res.Token,
	})
}

// profile re-reads the directory rather than trusting the claim: the token
// snapshot may be stale, and the account may be gone entirely.
func (s *Server) profile(c *gin.Context) {
	id, authed := identityFrom(c)
	if !authed {
		fail(c, common.ErrMissingToken)
		return
	}

	account, err := s.users.Profile(c.Request.Context(), id.ID)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, "", gin.H{"user": account})
}

func (s *Server) getAllUsers(c *gin.Context) {
	list, err := s.users.ListUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, "", gin.H{"users": list})
}

// protected is a smoke-test route: it echoes the verified claim back.
func (s *Server) protected(c *gin.Context) {
	id, authed := identityFrom(c)
	if !authed {
		fail(c, common.ErrMissingToken)
		return
	}

	ok(c, http.StatusOK, "protected route accessed successfully", gin.H{
		"user":      id,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// logout is advisory: tokens are stateless, so the server has nothing to
// revoke and the client simply discards its copy.
func (s *Server) logout(c *gin.Context) {
	ok(c, http.StatusOK, "logout successful, discard the token on the client", nil)
}

// root is the service banner. It uses optional authentication: with a valid
// token the banner greets the caller, without one it stays anonymous.
func (s *Server) root(c *gin.Context) {
	data := gin.H{
		"version": "1.0.0",
		"status":  "running",
	}
	message := "authd API"
	if id, authed := identityFrom(c); authed {
		message = "authd API, welcome back " + id.Username
	}

	ok(c, http.StatusOK, message, data)
}

func (s *Server) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, response{Success: false, Message: "route not found"})
}
