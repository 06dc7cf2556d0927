package controller

import (
	"net/http"

	"github.com/Suneetha610/student/database/model"
	"github.com/Suneetha610/student/logger"
	"github.com/Suneetha610/student/web/forms"
	"github.com/Suneetha610/student/web/service"
	"github.com/Suneetha610/student/web/session"

	"github.com/gin-gonic/gin"
)

// FeedbackController handles feedback submission and the confirmation page.
type FeedbackController struct {
	BaseController

	feedbackService service.FeedbackService
}

func NewFeedbackController(g *gin.RouterGroup) *FeedbackController {
	a := &FeedbackController{}
	a.initRouter(g)
	return a
}

func (a *FeedbackController) initRouter(g *gin.RouterGroup) {
	g.GET("/feedback/", a.checkLogin, a.feedbackPage)
	g.POST("/feedback/", a.checkLogin, a.submit)
	g.GET("/thankyou/", a.thankyou)
}

func (a *FeedbackController) feedbackPage(c *gin.Context) {
	html(c, "feedback.html", "Submit Feedback", gin.H{
		"form":    &forms.FeedbackForm{},
		"errors":  forms.Errors{},
		"ratings": model.RatingChoices,
	})
}

func (a *FeedbackController) submit(c *gin.Context) {
	student := session.GetLoginStudent(c)

	var form forms.FeedbackForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warning("bind feedback form err:", err)
	}

	errs := form.Validate()
	if errs.Ok() {
		feedback, err := a.feedbackService.CreateFeedback(
			student, form.Lecturer, form.Course, form.FeedbackText, model.Rating(form.Rating))
		if err != nil {
			logger.Warning("create feedback err:", err)
			errs["feedback_text"] = "Could not save your feedback, please try again"
		} else {
			logger.Infof("%s submitted feedback %s", student.RollNo, feedback.RefId)
			c.Redirect(http.StatusSeeOther, c.GetString("base_path")+"thankyou/?ref="+feedback.RefId)
			return
		}
	}

	html(c, "feedback.html", "Submit Feedback", gin.H{
		"form":    &form,
		"errors":  errs,
		"ratings": model.RatingChoices,
	})
}

func (a *FeedbackController) thankyou(c *gin.Context) {
	html(c, "thankyou.html", "Thank You", gin.H{
		"ref": c.Query("ref"),
	})
}
