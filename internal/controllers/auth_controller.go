package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"fleet_console/internal/api"
	"fleet_console/internal/console"
	"fleet_console/internal/middleware"
	"fleet_console/internal/session"
)

// AuthController serves the login page and handles login/logout against the
// fleet backend. The backend owns credentials; the console only persists the
// resulting user and token in its session store.
type AuthController struct {
	api      *api.Client
	store    session.Store
	registry *console.Registry
}

func NewAuthController(client *api.Client, store session.Store, registry *console.Registry) *AuthController {
	return &AuthController{api: client, store: store, registry: registry}
}

func (a *AuthController) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (a *AuthController) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, token, err := a.api.Login(c.Request.Context(), email, password)
	if err != nil {
		logrus.WithError(err).Warn("login failed")
		msg := "Invalid email or password"
		if api.IsNetwork(err) {
			msg = "Unable to connect to server. Please check if the backend is running."
		} else if m := api.Message(err); m != "" {
			msg = m
		}
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Error": msg, "Email": email})
		return
	}

	id := session.NewSessionID()
	if err := a.store.Login(id, user, token); err != nil {
		logrus.WithError(err).Error("persisting session")
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Error": "Could not start a session. Please try again.", "Email": email})
		return
	}
	c.SetCookie(middleware.SessionCookie, id, int((72 * time.Hour).Seconds()), "/", "", false, true)

	switch user.Role {
	case "admin":
		c.Redirect(http.StatusFound, "/admin")
	case "driver":
		c.Redirect(http.StatusFound, "/driver")
	default:
		c.Redirect(http.StatusFound, "/")
	}
}

func (a *AuthController) Logout(c *gin.Context) {
	if id, err := c.Cookie(middleware.SessionCookie); err == nil && id != "" {
		if err := a.store.Logout(id); err != nil {
			logrus.WithError(err).Error("clearing session")
		}
		a.registry.Drop(id)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
