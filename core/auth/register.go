package auth

import (
	"context"
	"strings"

	"github.com/goware/emailx"

	"github.com/aspirantsclub/core/core/user"
)

// RegisterForm carries the signup fields. Mobile is the OTP target, so
// registration only completes after a verify round.
type RegisterForm struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Mobile   string `json:"mobile"`
	EmailId  string `json:"emailId"`
}

// Validate the form client side before bothering the backend.
func (f RegisterForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if strings.TrimSpace(f.Username) == "" {
		return &ValidationError{Field: "username", Reason: "is required"}
	}
	if !validMobile(f.Mobile) {
		return &ValidationError{Field: "mobile", Reason: "must be a valid 10-digit number"}
	}
	if err := emailx.Validate(f.EmailId); err != nil {
		return &ValidationError{Field: "emailId", Reason: "must be a valid email address"}
	}
	return nil
}

// Register submits a validated signup.
func Register(ctx context.Context, deps Deps, f RegisterForm) (u user.User, err error) {
	if err = f.Validate(); err != nil {
		return
	}

	f.EmailId = emailx.Normalize(f.EmailId)
	err = deps.Backend().Post(ctx, "/public/register", f, &u)
	return
}

func validMobile(mobile string) bool {
	mobile = strings.TrimSpace(mobile)
	if len(mobile) != 10 {
		return false
	}
	for _, r := range mobile {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
