// Package controller provides the HTTP request handlers of the feedback
// portal: registration, login, feedback submission, password management and
// the staff-only admin pages.
package controller

import (
	"net/http"

	"github.com/Suneetha610/student/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides the authentication checks shared by controllers.
type BaseController struct{}

// checkLogin redirects anonymous requests to the login page. Ajax callers
// get a 401 instead.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		if isAjax(c) {
			pureJsonMsg(c, http.StatusUnauthorized, false, "please log in again")
		} else {
			c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"login/")
		}
		c.Abort()
	} else {
		c.Next()
	}
}

// checkStaff rejects logged-in students without the staff flag.
func (a *BaseController) checkStaff(c *gin.Context) {
	if !session.IsStaff(c) {
		if isAjax(c) {
			pureJsonMsg(c, http.StatusForbidden, false, "staff access required")
		} else {
			c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"dashboard/")
		}
		c.Abort()
	} else {
		c.Next()
	}
}
