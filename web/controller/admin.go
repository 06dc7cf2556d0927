package controller

import (
	"net/http"
	"time"

	"github.com/Suneetha610/student/logger"
	"github.com/Suneetha610/student/web/entity"
	"github.com/Suneetha610/student/web/service"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
)

// listConfig is a static read-only descriptor for an admin list page:
// which columns to show, which columns a search query runs against, and
// the default ordering. It mirrors the portal's declarative admin setup
// and carries no behavior of its own.
type listConfig struct {
	Title        string
	ListDisplay  []string
	SearchFields []string
	Ordering     string
}

var studentListConfig = listConfig{
	Title:        "Students",
	ListDisplay:  []string{"Roll No", "Name", "Branch", "Year", "Course", "Active", "Staff"},
	SearchFields: []string{"roll_no", "name", "branch", "year", "course"},
	Ordering:     "roll_no",
}

var feedbackListConfig = listConfig{
	Title:        "Feedbacks",
	ListDisplay:  []string{"Roll No", "Lecturer", "Course", "Rating", "Submitted"},
	SearchFields: []string{"lecturer", "course", "rating"},
	Ordering:     "submitted_at desc",
}

// AdminController serves the staff-only list, export and log pages.
type AdminController struct {
	BaseController

	studentService  service.StudentService
	feedbackService service.FeedbackService
}

func NewAdminController(g *gin.RouterGroup) *AdminController {
	a := &AdminController{}
	a.initRouter(g)
	return a
}

func (a *AdminController) initRouter(g *gin.RouterGroup) {
	admin := g.Group("/admin")
	admin.Use(a.checkLogin, a.checkStaff)

	admin.GET("/students/", a.students)
	admin.GET("/feedbacks/", a.feedbacks)
	admin.GET("/export/", a.export)
	admin.GET("/logs/", a.logs)
}

func (a *AdminController) students(c *gin.Context) {
	q := c.Query("q")
	students, err := a.studentService.Search(q, studentListConfig.SearchFields, studentListConfig.Ordering)
	if err != nil {
		logger.Warning("admin student search err:", err)
	}

	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{
			s.RollNo, s.Name, s.Branch, s.Year, s.Course,
			boolLabel(s.IsActive), boolLabel(s.IsStaff),
		})
	}
	a.renderList(c, studentListConfig, q, rows)
}

func (a *AdminController) feedbacks(c *gin.Context) {
	q := c.Query("q")
	feedbacks, err := a.feedbackService.Search(q, feedbackListConfig.SearchFields, feedbackListConfig.Ordering)
	if err != nil {
		logger.Warning("admin feedback search err:", err)
	}

	rows := make([][]string, 0, len(feedbacks))
	for _, f := range feedbacks {
		rows = append(rows, []string{
			f.Student.RollNo, f.Lecturer, f.Course, string(f.Rating),
			f.SubmittedAt.Format(time.DateTime),
		})
	}
	a.renderList(c, feedbackListConfig, q, rows)
}

func (a *AdminController) renderList(c *gin.Context, cfg listConfig, q string, rows [][]string) {
	html(c, "admin_list.html", cfg.Title, gin.H{
		"listTitle": cfg.Title,
		"columns":   cfg.ListDisplay,
		"rows":      rows,
		"q":         q,
	})
}

// export returns the full dataset as JSON for offline analysis.
func (a *AdminController) export(c *gin.Context) {
	students, err := a.studentService.Search("", nil, studentListConfig.Ordering)
	if err != nil {
		jsonMsg(c, "export students", err)
		return
	}
	feedbacks, err := a.feedbackService.Search("", nil, feedbackListConfig.Ordering)
	if err != nil {
		jsonMsg(c, "export feedbacks", err)
		return
	}

	data, err := json.Marshal(entity.Export{
		Students:  students,
		Feedbacks: feedbacks,
	})
	if err != nil {
		jsonMsg(c, "export marshal", err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (a *AdminController) logs(c *gin.Context) {
	html(c, "admin_logs.html", "Logs", gin.H{
		"logs": logger.GetLogs(100, "DEBUG"),
	})
}

func boolLabel(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
