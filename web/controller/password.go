package controller

import (
	"net/http"
	"strings"

	"github.com/Suneetha610/student/config"
	"github.com/Suneetha610/student/database/model"
	"github.com/Suneetha610/student/logger"
	"github.com/Suneetha610/student/util/crypto"
	"github.com/Suneetha610/student/util/token"
	"github.com/Suneetha610/student/web/forms"
	"github.com/Suneetha610/student/web/service"
	"github.com/Suneetha610/student/web/session"

	"github.com/gin-gonic/gin"
)

// PasswordController handles the forgot/reset/change password flows.
type PasswordController struct {
	BaseController

	settingService service.SettingService
	studentService service.StudentService
	mailService    *service.MailService

	externalURL string
}

func NewPasswordController(g *gin.RouterGroup, settings *config.Settings) *PasswordController {
	a := &PasswordController{
		mailService: service.NewMailService(settings),
		externalURL: strings.TrimRight(settings.Web.ExternalURL, "/"),
	}
	a.initRouter(g)
	return a
}

func (a *PasswordController) initRouter(g *gin.RouterGroup) {
	g.GET("/forgot-password/", a.forgotPage)
	g.POST("/forgot-password/", a.forgot)
	g.GET("/reset-success/", a.resetSuccess)
	g.GET("/reset/:uid/:token/", a.resetPage)
	g.POST("/reset/:uid/:token/", a.reset)
	g.GET("/change-password/", a.checkLogin, a.changePage)
	g.POST("/change-password/", a.checkLogin, a.change)
	g.GET("/change-success/", a.changeSuccess)
}

// tokenGenerator builds the reset token generator from the stored secret
// and timeout.
func (a *PasswordController) tokenGenerator() (*token.Generator, error) {
	secret, err := a.settingService.GetSecret()
	if err != nil {
		return nil, err
	}
	timeout, err := a.settingService.GetResetTimeout()
	if err != nil {
		return nil, err
	}
	return token.NewGenerator(secret, timeout), nil
}

func (a *PasswordController) forgotPage(c *gin.Context) {
	html(c, "forgot_password.html", "Forgot Password", gin.H{
		"form":   &forms.ForgotPasswordForm{},
		"errors": forms.Errors{},
	})
}

// forgot issues a reset link for a registered email. A send failure is
// logged but still ends on the link-sent page, so the response does not
// leak whether the mail went out.
func (a *PasswordController) forgot(c *gin.Context) {
	var form forms.ForgotPasswordForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warning("bind forgot password form err:", err)
	}

	errs := form.Validate()
	if !errs.Ok() {
		html(c, "forgot_password.html", "Forgot Password", gin.H{
			"form":   &form,
			"errors": errs,
		})
		return
	}

	student, err := a.studentService.GetByEmail(form.Email)
	if err != nil {
		logger.Warning("lookup by email err:", err)
	}
	if student == nil {
		html(c, "forgot_password.html", "Forgot Password", gin.H{
			"form":   &form,
			"errors": errs,
			"error":  "No account found with this Email",
		})
		return
	}

	generator, err := a.tokenGenerator()
	if err != nil {
		logger.Error("reset token generator err:", err)
		html(c, "forgot_password.html", "Forgot Password", gin.H{
			"form":   &form,
			"errors": errs,
			"error":  "Could not issue a reset link, please try again",
		})
		return
	}

	uid := token.EncodeUID(student.Id)
	tok := generator.Make(student)
	link := a.externalURL + c.GetString("base_path") + "reset/" + uid + "/" + tok + "/"

	if err := a.mailService.SendPasswordReset(form.Email, student.Name, link); err != nil {
		logger.Warningf("reset mail to %s failed: %v", form.Email, err)
	}
	c.Redirect(http.StatusSeeOther, c.GetString("base_path")+"reset-success/")
}

func (a *PasswordController) resetSuccess(c *gin.Context) {
	html(c, "reset_success.html", "Reset Link Sent", nil)
}

// checkResetLink resolves the uid/token pair to a student, or nil when the
// link is malformed, unknown, tampered with or stale.
func (a *PasswordController) checkResetLink(c *gin.Context) *model.Student {
	uid, err := token.DecodeUID(c.Param("uid"))
	if err != nil {
		return nil
	}
	student, err := a.studentService.GetById(uid)
	if err != nil || student == nil {
		return nil
	}
	generator, err := a.tokenGenerator()
	if err != nil {
		logger.Error("reset token generator err:", err)
		return nil
	}
	if !generator.Check(student, c.Param("token")) {
		return nil
	}
	return student
}

func (a *PasswordController) resetPage(c *gin.Context) {
	student := a.checkResetLink(c)
	html(c, "reset_form.html", "Reset Password", gin.H{
		"validlink": student != nil,
		"form":      &forms.ResetPasswordForm{},
		"errors":    forms.Errors{},
	})
}

func (a *PasswordController) reset(c *gin.Context) {
	student := a.checkResetLink(c)
	if student == nil {
		html(c, "reset_form.html", "Reset Password", gin.H{"validlink": false})
		return
	}

	var form forms.ResetPasswordForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warning("bind reset form err:", err)
	}

	errs := form.Validate()
	if !errs.Ok() {
		html(c, "reset_form.html", "Reset Password", gin.H{
			"validlink": true,
			"form":      &forms.ResetPasswordForm{},
			"errors":    errs,
		})
		return
	}

	if err := a.studentService.UpdatePassword(student.Id, form.NewPassword); err != nil {
		logger.Warning("reset password err:", err)
		html(c, "reset_form.html", "Reset Password", gin.H{
			"validlink": true,
			"form":      &forms.ResetPasswordForm{},
			"errors":    errs,
			"error":     "Could not update the password, please try again",
		})
		return
	}

	logger.Infof("%s reset their password via emailed link", student.RollNo)
	c.Redirect(http.StatusSeeOther, c.GetString("base_path")+"login/?reset=1")
}

func (a *PasswordController) changePage(c *gin.Context) {
	html(c, "change_password.html", "Change Password", gin.H{
		"form":   &forms.ChangePasswordForm{},
		"errors": forms.Errors{},
	})
}

// change verifies the old password, replaces the hash and terminates the
// session, forcing a fresh login with the new password.
func (a *PasswordController) change(c *gin.Context) {
	// verify against the stored hash, not the session copy
	student, err := a.studentService.GetById(session.GetLoginStudent(c).Id)
	if err != nil || student == nil {
		logger.Warning("load student for password change err:", err)
		session.ClearSession(c)
		c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"login/")
		return
	}

	var form forms.ChangePasswordForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warning("bind change password form err:", err)
	}

	errs := form.Validate()
	if errs.Ok() && !crypto.CheckPasswordHash(student.Password, form.OldPassword) {
		errs["old_password"] = "Old password incorrect"
	}
	if !errs.Ok() {
		html(c, "change_password.html", "Change Password", gin.H{
			"form":   &forms.ChangePasswordForm{},
			"errors": errs,
		})
		return
	}

	if err := a.studentService.UpdatePassword(student.Id, form.NewPassword); err != nil {
		logger.Warning("change password err:", err)
		html(c, "change_password.html", "Change Password", gin.H{
			"form":   &forms.ChangePasswordForm{},
			"errors": errs,
			"error":  "Could not update the password, please try again",
		})
		return
	}

	logger.Infof("%s changed their password", student.RollNo)
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusSeeOther, c.GetString("base_path")+"change-success/")
}

func (a *PasswordController) changeSuccess(c *gin.Context) {
	html(c, "change_success.html", "Password Updated", nil)
}
