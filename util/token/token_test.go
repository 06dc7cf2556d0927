package token

import (
	"testing"
	"time"

	"github.com/Suneetha610/student/database/model"
)

func testStudent() *model.Student {
	email := "a@x.com"
	return &model.Student{
		Id:        7,
		RollNo:    "21A01",
		Password:  "$2a$10$abcdefghijklmnopqrstuv",
		Email:     &email,
		LastLogin: 1700000000,
	}
}

func fixedGenerator(at time.Time) *Generator {
	g := NewGenerator("test-secret", 72*time.Hour)
	g.now = func() time.Time { return at }
	return g
}

func TestTokenRoundTrip(t *testing.T) {
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	g := fixedGenerator(issued)
	student := testStudent()

	tok := g.Make(student)
	if !g.Check(student, tok) {
		t.Fatal("freshly issued token should validate")
	}
}

func TestTokenInvalidatedByStateChange(t *testing.T) {
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	g := fixedGenerator(issued)

	tests := []struct {
		name   string
		mutate func(s *model.Student)
	}{
		{
			name:   "password change",
			mutate: func(s *model.Student) { s.Password = "$2a$10$differenthash" },
		},
		{
			name:   "login after issuance",
			mutate: func(s *model.Student) { s.LastLogin = 1700009999 },
		},
		{
			name: "email change",
			mutate: func(s *model.Student) {
				email := "b@x.com"
				s.Email = &email
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student := testStudent()
			tok := g.Make(student)
			tt.mutate(student)
			if g.Check(student, tok) {
				t.Error("token should be rejected after account state changed")
			}
		})
	}
}

func TestTokenExpiry(t *testing.T) {
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	g := fixedGenerator(issued)
	student := testStudent()
	tok := g.Make(student)

	g.now = func() time.Time { return issued.Add(71 * time.Hour) }
	if !g.Check(student, tok) {
		t.Error("token inside the timeout window should validate")
	}

	g.now = func() time.Time { return issued.Add(73 * time.Hour) }
	if g.Check(student, tok) {
		t.Error("token past the timeout window should be rejected")
	}

	// a token claiming to come from the future is rejected too
	g.now = func() time.Time { return issued.Add(-time.Hour) }
	if g.Check(student, tok) {
		t.Error("token issued in the future should be rejected")
	}
}

func TestTokenMalformed(t *testing.T) {
	g := fixedGenerator(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	student := testStudent()

	for _, tok := range []string{"", "noseparator", "zzz-", "!!-abcdef", g.Make(student) + "x"} {
		if g.Check(student, tok) {
			t.Errorf("malformed token %q should be rejected", tok)
		}
	}
	if g.Check(nil, g.Make(student)) {
		t.Error("nil student should never validate")
	}
}

func TestUIDRoundTrip(t *testing.T) {
	encoded := EncodeUID(42)
	id, err := DecodeUID(encoded)
	if err != nil {
		t.Fatalf("DecodeUID(%q) err: %v", encoded, err)
	}
	if id != 42 {
		t.Fatalf("DecodeUID(%q) = %d, expected 42", encoded, id)
	}
}

func TestDecodeUIDMalformed(t *testing.T) {
	for _, encoded := range []string{"", "!!!!", "bm90YW51bWJlcg", EncodeUID(-3), EncodeUID(0)} {
		if _, err := DecodeUID(encoded); err == nil {
			t.Errorf("DecodeUID(%q) should fail", encoded)
		}
	}
}
