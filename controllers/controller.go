package controllers

import (
	"net/http"
	"strconv"

	"fastfood-ui/middleware"
	"fastfood-ui/repositories"

	"github.com/gin-gonic/gin"
)

// serverUnreachable is shown when the remote API cannot be reached or
// answers with a server error, as opposed to a 404 empty-state.
const serverUnreachable = "Could not reach the server, please try again"

// endSession applies the uniform 401 rule: whatever feature saw the
// unauthorized response, the session is dropped and the user lands on the
// login page.
func endSession(c *gin.Context, sessions *repositories.SessionRepository) {
	if session := middleware.GetSession(c); session != nil {
		sessions.Delete(session.ID)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}

// pathID parses the numeric :id path parameter.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
