// Package session wraps gin-contrib/sessions with helpers for the
// logged-in student.
package session

import (
	"encoding/gob"

	"github.com/Suneetha610/student/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginStudent = "LOGIN_STUDENT"

// CookieName is the session cookie written by the store.
const CookieName = "student"

func init() {
	gob.Register(model.Student{})
}

func SetLoginStudent(c *gin.Context, student *model.Student) error {
	s := sessions.Default(c)
	s.Set(loginStudent, *student)
	return s.Save()
}

func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	return s.Save()
}

func GetLoginStudent(c *gin.Context) *model.Student {
	s := sessions.Default(c)
	if obj := s.Get(loginStudent); obj != nil {
		if student, ok := obj.(model.Student); ok {
			return &student
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginStudent(c) != nil
}

func IsStaff(c *gin.Context) bool {
	student := GetLoginStudent(c)
	return student != nil && student.IsStaff
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	if err := s.Save(); err != nil {
		return err
	}
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
	return nil
}
