package user

import (
	"strings"
)

// User is read-only reference data fetched from the backend; the client
// never mutates it.
type User struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	UserName string `json:"username"`
	Role     string `json:"role"`
	UserType string `json:"userType"`
	Mobile   string `json:"mobile,omitempty"`
	EmailId  string `json:"emailId,omitempty"`
}

type Users []User

// Anonymous is the placeholder shown when a profile cannot be resolved.
var Anonymous = User{Name: "Anonymous User"}

// Placeholder keeps the requested id so vote checks still work against it.
func Placeholder(id string) User {
	u := Anonymous
	u.Id = id
	return u
}

// VerifiedMentor decides whether the mentor indicator is shown.
func (u User) VerifiedMentor() bool {
	return strings.EqualFold(u.UserType, "mentor") || strings.EqualFold(u.Role, "mentor")
}

func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.UserName != "" {
		return u.UserName
	}
	return Anonymous.Name
}

// Initials for avatar placeholders. Safe on empty names.
func (u User) Initials() string {
	fields := strings.Fields(u.Name)
	initials := ""
	for _, f := range fields {
		r := []rune(f)
		initials += strings.ToUpper(string(r[0]))
		if len([]rune(initials)) == 2 {
			break
		}
	}
	return initials
}
