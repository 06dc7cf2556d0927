// Package model defines the persisted entities of the feedback portal.
package model

import "time"

// Rating is the fixed set of feedback grades.
type Rating string

const (
	RatingPoor      Rating = "poor"
	RatingAverage   Rating = "average"
	RatingGood      Rating = "good"
	RatingExcellent Rating = "excellent"
)

// RatingChoices lists the valid ratings in the order the feedback form
// presents them.
var RatingChoices = []Rating{RatingExcellent, RatingGood, RatingAverage, RatingPoor}

// Valid reports whether r is one of the enumerated ratings.
func (r Rating) Valid() bool {
	switch r {
	case RatingPoor, RatingAverage, RatingGood, RatingExcellent:
		return true
	}
	return false
}

// Student is a registered account. The roll number is the login key; the
// email is unique when present but nullable so that legacy rows without one
// keep working. Password always holds a bcrypt hash, never plaintext.
type Student struct {
	Id     int     `json:"id" gorm:"primaryKey;autoIncrement"`
	RollNo string  `json:"rollNo" gorm:"uniqueIndex;not null"`
	Name   string  `json:"name"`
	Branch string  `json:"branch"`
	Year   string  `json:"year"`
	Course string  `json:"course"`
	Email  *string `json:"email" gorm:"uniqueIndex"`

	Password string `json:"-"`

	IsActive    bool `json:"isActive" gorm:"default:true"`
	IsStaff     bool `json:"isStaff" gorm:"default:false"`
	IsSuperuser bool `json:"-" gorm:"default:false"`

	// LastLogin feeds the reset token hash, so issued links expire on login.
	LastLogin int64 `json:"-"`
}

// EmailString returns the email or "" when the row has none.
func (s *Student) EmailString() string {
	if s.Email == nil {
		return ""
	}
	return *s.Email
}

// Feedback is one append-only submission. Rows are never updated or deleted;
// SubmittedAt is assigned once at creation.
type Feedback struct {
	Id        int     `json:"id" gorm:"primaryKey;autoIncrement"`
	StudentId int     `json:"-" gorm:"index;not null"`
	Student   Student `json:"-" gorm:"foreignKey:StudentId"`

	RefId        string    `json:"refId" gorm:"uniqueIndex"`
	Lecturer     string    `json:"lecturer"`
	Course       string    `json:"course"`
	FeedbackText string    `json:"feedbackText" gorm:"not null"`
	Rating       Rating    `json:"rating" gorm:"not null"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

// Setting is a key/value row backing the runtime-tunable settings.
type Setting struct {
	Id    int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Key   string `json:"key" form:"key" gorm:"unique"`
	Value string `json:"value" form:"value"`
}
