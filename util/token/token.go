// Package token implements the password-reset token scheme. Tokens are
// derived from account state rather than persisted: the HMAC covers the
// student id, password hash, last-login marker and email, so a token stops
// validating as soon as the password changes, the account logs in, or the
// timeout passes.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Suneetha610/student/database/model"
	"github.com/Suneetha610/student/util/common"
)

const sigLength = 32

// Generator issues and checks state-derived reset tokens.
type Generator struct {
	secret  []byte
	timeout time.Duration
	now     func() time.Time
}

// NewGenerator creates a Generator keyed with secret. Tokens older than
// timeout are rejected.
func NewGenerator(secret string, timeout time.Duration) *Generator {
	return &Generator{
		secret:  []byte(secret),
		timeout: timeout,
		now:     time.Now,
	}
}

// Make issues a token for the student's current state.
func (g *Generator) Make(student *model.Student) string {
	ts := g.now().Unix()
	return fmt.Sprintf("%s-%s", strconv.FormatInt(ts, 36), g.sign(student, ts))
}

// Check reports whether tok was issued for the student's current state and
// is still inside the timeout window. It fails on tampering as well as on
// staleness after a password change or login.
func (g *Generator) Check(student *model.Student, tok string) bool {
	if student == nil || tok == "" {
		return false
	}

	tsPart, sigPart, found := strings.Cut(tok, "-")
	if !found {
		return false
	}
	ts, err := strconv.ParseInt(tsPart, 36, 64)
	if err != nil {
		return false
	}

	if !hmac.Equal([]byte(g.sign(student, ts)), []byte(sigPart)) {
		return false
	}

	age := g.now().Unix() - ts
	return age >= 0 && age <= int64(g.timeout.Seconds())
}

func (g *Generator) sign(student *model.Student, ts int64) string {
	state := fmt.Sprintf("%d%s%d%s%d",
		student.Id, student.Password, student.LastLogin, student.EmailString(), ts)
	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(state))
	return hex.EncodeToString(mac.Sum(nil))[:sigLength]
}

// EncodeUID encodes a student id for embedding in a reset link.
func EncodeUID(id int) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.Itoa(id)))
}

// DecodeUID reverses EncodeUID. Malformed input yields an error, never a
// panic, so handlers can treat it as an invalid link.
func DecodeUID(encoded string) (int, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, common.NewErrorf("invalid uid %d", id)
	}
	return id, nil
}
