package controllers

import (
	"errors"
	"net/http"

	"fastfood-ui/middleware"
	"fastfood-ui/models"
	"fastfood-ui/repositories"
	"fastfood-ui/services"
	"fastfood-ui/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	usernameTip = "Username can only contain letters. Each name (firstname/lastname)" +
		" must contain atleast three letters, names are separated by single spaces."
	telephoneTip = "Use the format: +xxx-xxx-xxxxxx e.g. +23-234-918719, +256-751-682390"
)

type AuthController struct {
	auth     *services.AuthService
	sessions *repositories.SessionRepository
	logger   zerolog.Logger
}

func NewAuthController(auth *services.AuthService, sessions *repositories.SessionRepository, logger zerolog.Logger) *AuthController {
	return &AuthController{
		auth:     auth,
		sessions: sessions,
		logger:   logger.With().Str("controller", "auth").Logger(),
	}
}

func (ctrl *AuthController) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", models.LoginPage{})
}

// Login exchanges the form credentials for a token and opens a session. The
// admin submit control decides which landing page follows.
func (ctrl *AuthController) Login(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", models.LoginPage{
			UsernameError: "Username and password are required",
		})
		return
	}

	token, err := ctrl.auth.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		page := models.LoginPage{Username: form.Username}
		var apiErr *services.APIError
		if errors.As(err, &apiErr) {
			if utils.LoginErrorField(apiErr.Message) == "password" {
				page.PasswordError = apiErr.Message
			} else {
				page.UsernameError = apiErr.Message
			}
		} else {
			ctrl.logger.Error().Err(err).Msg("login request failed")
			page.UsernameError = serverUnreachable
		}
		c.HTML(http.StatusOK, "login.html", page)
		return
	}

	asAdmin := form.AsAdmin != ""
	session := ctrl.sessions.Create(token, asAdmin)
	c.SetCookie(middleware.SessionCookie, session.ID, 0, "/", "", false, true)

	ctrl.logger.Info().Bool("admin", asAdmin).Msg("login successful")
	if asAdmin {
		c.Redirect(http.StatusSeeOther, "/admin/menu")
		return
	}
	c.Redirect(http.StatusSeeOther, "/menu")
}

func (ctrl *AuthController) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", models.RegisterPage{
		UsernameTip:  usernameTip,
		TelephoneTip: telephoneTip,
	})
}

// Register creates a new account. The two password fields must match before
// any network call is made.
func (ctrl *AuthController) Register(c *gin.Context) {
	var form models.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "register.html", models.RegisterPage{
			UsernameError: "All fields are required",
			UsernameTip:   usernameTip,
			TelephoneTip:  telephoneTip,
		})
		return
	}

	page := models.RegisterPage{
		Username:     form.Username,
		Email:        form.Email,
		Telephone:    form.Telephone,
		UsernameTip:  usernameTip,
		TelephoneTip: telephoneTip,
	}

	if form.Password1 != form.Password2 {
		page.PasswordError = "Passwords don't match!"
		c.HTML(http.StatusOK, "register.html", page)
		return
	}

	err := ctrl.auth.Signup(c.Request.Context(), models.SignupRequest{
		Username:  form.Username,
		Email:     form.Email,
		Telephone: form.Telephone,
		Password:  form.Password2,
	})
	if err != nil {
		var apiErr *services.APIError
		if errors.As(err, &apiErr) {
			if utils.SignupErrorField(apiErr.Message) == "username" {
				page.UsernameError = apiErr.Message
			} else {
				page.PasswordError = apiErr.Message
			}
		} else {
			ctrl.logger.Error().Err(err).Msg("signup request failed")
			page.UsernameError = serverUnreachable
		}
		c.HTML(http.StatusOK, "register.html", page)
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}

// Logout ends the session explicitly.
func (ctrl *AuthController) Logout(c *gin.Context) {
	endSession(c, ctrl.sessions)
}
