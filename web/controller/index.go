package controller

import (
	"net/http"

	"github.com/Suneetha610/student/database"
	"github.com/Suneetha610/student/database/model"
	"github.com/Suneetha610/student/logger"
	"github.com/Suneetha610/student/web/forms"
	"github.com/Suneetha610/student/web/service"
	"github.com/Suneetha610/student/web/session"

	"github.com/gin-gonic/gin"
)

// IndexController handles registration, login, logout and the dashboard.
type IndexController struct {
	BaseController

	settingService service.SettingService
	studentService service.StudentService
}

func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.registerPage)
	g.POST("/", a.register)
	g.GET("/login/", a.loginPage)
	g.POST("/login/", a.login)
	g.GET("/logout/", a.logout)
	g.GET("/dashboard/", a.checkLogin, a.dashboard)
}

// registerPage shows the registration form. Logged-in students are sent to
// the dashboard without re-prompting.
func (a *IndexController) registerPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"dashboard/")
		return
	}
	html(c, "register.html", "Student Registration", gin.H{
		"form":   &forms.RegistrationForm{},
		"errors": forms.Errors{},
	})
}

func (a *IndexController) register(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"dashboard/")
		return
	}

	var form forms.RegistrationForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warning("bind registration form err:", err)
		c.Redirect(http.StatusSeeOther, c.GetString("base_path"))
		return
	}

	errs := form.Validate()
	if errs.Ok() {
		// friendly duplicate checks before the insert; a concurrent
		// duplicate still fails on the unique index below
		if existing, err := a.studentService.GetByRollNo(form.RollNo); err == nil && existing != nil {
			errs["rollno"] = "A student with this roll number already exists"
		}
		if existing, err := a.studentService.GetByEmail(form.Email); err == nil && existing != nil {
			errs["email"] = "A student with this email already exists"
		}
	}

	if errs.Ok() {
		email := form.Email
		student := &model.Student{
			RollNo: form.RollNo,
			Name:   form.Name,
			Branch: form.Branch,
			Year:   form.Year,
			Course: form.Course,
			Email:  &email,
		}
		err := a.studentService.CreateStudent(student, form.Password1)
		if database.IsDuplicate(err) {
			errs["rollno"] = "A student with this roll number or email already exists"
		} else if err != nil {
			logger.Warning("create student err:", err)
			errs["rollno"] = "Registration failed, please try again"
		}
		if errs.Ok() {
			logger.Infof("student %s registered, IP: %s", student.RollNo, getRemoteIp(c))
			c.Redirect(http.StatusSeeOther, c.GetString("base_path")+"login/?registered=1")
			return
		}
	}

	// re-render with field errors, preserving the non-secret values
	form.Password1 = ""
	form.Password2 = ""
	html(c, "register.html", "Student Registration", gin.H{
		"form":   &form,
		"errors": errs,
	})
}

func (a *IndexController) loginPage(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"dashboard/")
		return
	}
	data := gin.H{"form": &forms.LoginForm{}, "errors": forms.Errors{}}
	if c.Query("registered") != "" {
		data["message"] = "Registration successful! Please login."
	}
	if c.Query("reset") != "" {
		data["message"] = "Password reset successful. Please login."
	}
	html(c, "login.html", "Student Login", data)
}

// login validates credentials and establishes the session. The failure
// message never reveals which field was wrong.
func (a *IndexController) login(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"dashboard/")
		return
	}

	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warning("bind login form err:", err)
	}

	errs := form.Validate()
	var student *model.Student
	if errs.Ok() {
		student = a.studentService.CheckStudent(form.RollNo, form.Password)
	}
	if student == nil {
		logger.Warningf("failed login for %q, IP: %s", form.RollNo, getRemoteIp(c))
		html(c, "login.html", "Student Login", gin.H{
			"form":   &forms.LoginForm{RollNo: form.RollNo},
			"errors": errs,
			"error":  "Invalid Roll Number or Password",
		})
		return
	}

	// drop any pre-login session before writing the new one
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}

	sessionMaxAge, err := a.settingService.GetSessionMaxAge()
	if err != nil {
		logger.Warning("unable to get session max age:", err)
	}
	if err := session.SetMaxAge(c, sessionMaxAge*60); err != nil {
		logger.Warning("unable to set session max age:", err)
	}

	if err := a.studentService.MarkLogin(student); err != nil {
		logger.Warning("mark login err:", err)
	}
	if err := session.SetLoginStudent(c, student); err != nil {
		logger.Warning("unable to save session:", err)
		html(c, "login.html", "Student Login", gin.H{
			"form":   &forms.LoginForm{RollNo: form.RollNo},
			"errors": forms.Errors{},
			"error":  "Login failed, please try again",
		})
		return
	}

	logger.Infof("%s logged in successfully, IP: %s", student.RollNo, getRemoteIp(c))
	c.Redirect(http.StatusSeeOther, c.GetString("base_path")+"dashboard/")
}

func (a *IndexController) logout(c *gin.Context) {
	if student := session.GetLoginStudent(c); student != nil {
		logger.Infof("%s logged out", student.RollNo)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path")+"login/")
}

func (a *IndexController) dashboard(c *gin.Context) {
	html(c, "dashboard.html", "Dashboard", nil)
}
