package identity

import (
	"errors"
	"strings"

	"github.com/meridianhq/meridian/lib/set"
)

// Role describes what a caller may do with the register.
type Role string

const (
	// RoleViewer may read assets, quality reports and exports.
	RoleViewer Role = "viewer"
	// RoleEditor may additionally create, replace and delete assets.
	RoleEditor Role = "editor"
)

// String cast Role to string.
func (r Role) String() string {
	return string(r)
}

var (
	ErrEmptyEmail = errors.New("identity email is empty")
)

// Identity is the resolved caller of a request.
type Identity struct {
	Email string
	Role  Role
}

// CanEdit reports whether the identity may mutate the register.
func (i Identity) CanEdit() bool {
	return i.Role == RoleEditor
}

// Authorizer resolves the role a caller email holds.
type Authorizer interface {
	Authorize(email string) (Role, error)
}

// Config represents the identity configuration.
type Config struct {
	// HeaderKey is the header carrying the email of the caller.
	HeaderKey string `yaml:"headerkey" mapstructure:"headerkey" default:"Meridian-User-Email"`

	// Editors lists the emails that hold the editor role. Everyone
	// else is a viewer.
	Editors []string `yaml:"editors" mapstructure:"editors"`
}

// StaticAuthorizer grants the editor role to a fixed set of emails.
type StaticAuthorizer struct {
	editors set.StringSet
}

// NewStaticAuthorizer builds a StaticAuthorizer over the given editor emails.
// Matching is case-insensitive.
func NewStaticAuthorizer(editors ...string) *StaticAuthorizer {
	allowed := set.NewStringSet()
	for _, email := range editors {
		allowed.Add(strings.ToLower(strings.TrimSpace(email)))
	}
	return &StaticAuthorizer{editors: allowed}
}

// Authorize resolves the role held by email.
func (a *StaticAuthorizer) Authorize(email string) (Role, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmptyEmail
	}
	if a.editors.Has(strings.ToLower(email)) {
		return RoleEditor, nil
	}
	return RoleViewer, nil
}
