// Package forms holds the per-operation validators. Each form binds the
// posted fields and returns structured field errors, decoupled from
// rendering so handlers decide how to show them.
package forms

import (
	"net/mail"
	"strings"

	"github.com/Suneetha610/student/database/model"
)

const minPasswordLength = 8

// Errors maps a field name to its validation message. An empty map means
// the form is valid.
type Errors map[string]string

func (e Errors) Ok() bool { return len(e) == 0 }

// RegistrationForm carries the registration fields. Password fields are
// never echoed back; the rest is preserved on re-render.
type RegistrationForm struct {
	RollNo    string `form:"rollno"`
	Name      string `form:"name"`
	Branch    string `form:"branch"`
	Year      string `form:"year"`
	Course    string `form:"course"`
	Email     string `form:"email"`
	Password1 string `form:"password1"`
	Password2 string `form:"password2"`
}

func (f *RegistrationForm) Validate() Errors {
	errs := Errors{}
	f.RollNo = strings.TrimSpace(f.RollNo)
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)

	if f.RollNo == "" {
		errs["rollno"] = "Roll number is required"
	}
	if f.Name == "" {
		errs["name"] = "Name is required"
	}
	if f.Email == "" {
		errs["email"] = "Email is required"
	} else if !validEmail(f.Email) {
		errs["email"] = "Enter a valid email address"
	}
	validatePassword(errs, "password1", f.Password1)
	if f.Password1 != f.Password2 {
		errs["password2"] = "Passwords do not match"
	}
	return errs
}

type LoginForm struct {
	RollNo   string `form:"rollno"`
	Password string `form:"password"`
}

func (f *LoginForm) Validate() Errors {
	errs := Errors{}
	f.RollNo = strings.TrimSpace(f.RollNo)
	if f.RollNo == "" {
		errs["rollno"] = "Roll number is required"
	}
	if f.Password == "" {
		errs["password"] = "Password is required"
	}
	return errs
}

type FeedbackForm struct {
	Lecturer     string `form:"lecturer"`
	Course       string `form:"course"`
	FeedbackText string `form:"feedback_text"`
	Rating       string `form:"rating"`
}

func (f *FeedbackForm) Validate() Errors {
	errs := Errors{}
	if strings.TrimSpace(f.FeedbackText) == "" {
		errs["feedback_text"] = "Feedback is required"
	}
	if !model.Rating(f.Rating).Valid() {
		errs["rating"] = "Select one of the listed ratings"
	}
	return errs
}

type ForgotPasswordForm struct {
	Email string `form:"email"`
}

func (f *ForgotPasswordForm) Validate() Errors {
	errs := Errors{}
	f.Email = strings.TrimSpace(f.Email)
	if f.Email == "" {
		errs["email"] = "Email is required"
	} else if !validEmail(f.Email) {
		errs["email"] = "Enter a valid email address"
	}
	return errs
}

type ResetPasswordForm struct {
	NewPassword     string `form:"new_password"`
	ConfirmPassword string `form:"confirm_password"`
}

func (f *ResetPasswordForm) Validate() Errors {
	errs := Errors{}
	validatePassword(errs, "new_password", f.NewPassword)
	if f.NewPassword != f.ConfirmPassword {
		errs["confirm_password"] = "Passwords do not match"
	}
	return errs
}

type ChangePasswordForm struct {
	OldPassword     string `form:"old_password"`
	NewPassword     string `form:"new_password"`
	ConfirmPassword string `form:"confirm_password"`
}

func (f *ChangePasswordForm) Validate() Errors {
	errs := Errors{}
	if f.OldPassword == "" {
		errs["old_password"] = "Old password is required"
	}
	validatePassword(errs, "new_password", f.NewPassword)
	if f.NewPassword != f.ConfirmPassword {
		errs["confirm_password"] = "Passwords do not match"
	}
	return errs
}

func validatePassword(errs Errors, field, password string) {
	if password == "" {
		errs[field] = "Password is required"
		return
	}
	if len(password) < minPasswordLength {
		errs[field] = "Password must be at least 8 characters"
		return
	}
	if isNumeric(password) {
		errs[field] = "Password cannot be entirely numeric"
	}
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
