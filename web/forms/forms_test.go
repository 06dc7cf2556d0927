package forms

import "testing"

func TestRegistrationFormValidate(t *testing.T) {
	valid := RegistrationForm{
		RollNo:    "21A01",
		Name:      "Asha",
		Email:     "a@x.com",
		Password1: "Secret123!",
		Password2: "Secret123!",
	}

	tests := []struct {
		name     string
		mutate   func(f *RegistrationForm)
		badField string
	}{
		{"valid", func(f *RegistrationForm) {}, ""},
		{"missing rollno", func(f *RegistrationForm) { f.RollNo = "  " }, "rollno"},
		{"missing name", func(f *RegistrationForm) { f.Name = "" }, "name"},
		{"missing email", func(f *RegistrationForm) { f.Email = "" }, "email"},
		{"bad email", func(f *RegistrationForm) { f.Email = "not-an-email" }, "email"},
		{"short password", func(f *RegistrationForm) { f.Password1, f.Password2 = "abc", "abc" }, "password1"},
		{"numeric password", func(f *RegistrationForm) { f.Password1, f.Password2 = "12345678", "12345678" }, "password1"},
		{"mismatched passwords", func(f *RegistrationForm) { f.Password2 = "Other123!" }, "password2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			errs := form.Validate()
			if tt.badField == "" {
				if !errs.Ok() {
					t.Errorf("expected valid form, got %v", errs)
				}
				return
			}
			if errs.Ok() {
				t.Fatal("expected validation errors, got none")
			}
			if _, found := errs[tt.badField]; !found {
				t.Errorf("expected error on %q, got %v", tt.badField, errs)
			}
		})
	}
}

func TestFeedbackFormValidate(t *testing.T) {
	tests := []struct {
		name     string
		form     FeedbackForm
		badField string
	}{
		{"valid", FeedbackForm{FeedbackText: "great lectures", Rating: "good"}, ""},
		{"empty body", FeedbackForm{FeedbackText: "   ", Rating: "good"}, "feedback_text"},
		{"unknown rating", FeedbackForm{FeedbackText: "ok", Rating: "amazing"}, "rating"},
		{"missing rating", FeedbackForm{FeedbackText: "ok"}, "rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()
			if tt.badField == "" {
				if !errs.Ok() {
					t.Errorf("expected valid form, got %v", errs)
				}
				return
			}
			if _, found := errs[tt.badField]; !found {
				t.Errorf("expected error on %q, got %v", tt.badField, errs)
			}
		})
	}
}

func TestForgotPasswordFormValidate(t *testing.T) {
	if errs := (&ForgotPasswordForm{Email: "a@x.com"}).Validate(); !errs.Ok() {
		t.Errorf("expected valid form, got %v", errs)
	}
	if errs := (&ForgotPasswordForm{Email: "nope"}).Validate(); errs.Ok() {
		t.Error("malformed email should fail")
	}
	if errs := (&ForgotPasswordForm{}).Validate(); errs.Ok() {
		t.Error("missing email should fail")
	}
}

func TestChangePasswordFormValidate(t *testing.T) {
	form := ChangePasswordForm{
		OldPassword:     "Old12345!",
		NewPassword:     "New12345!",
		ConfirmPassword: "New12345!",
	}
	if errs := form.Validate(); !errs.Ok() {
		t.Errorf("expected valid form, got %v", errs)
	}

	form.ConfirmPassword = "Different1!"
	if errs := form.Validate(); errs.Ok() {
		t.Error("mismatched confirmation should fail")
	}

	form = ChangePasswordForm{NewPassword: "New12345!", ConfirmPassword: "New12345!"}
	errs := form.Validate()
	if _, found := errs["old_password"]; !found {
		t.Errorf("expected error on old_password, got %v", errs)
	}
}
