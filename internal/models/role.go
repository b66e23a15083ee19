package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRole is returned when a role name is not recognized
var ErrUnknownRole = errors.New("unknown role")

// Role selects which question set a catalog holds. The zero value is unset.
type Role int

const (
	RoleUnset Role = iota
	RoleSWE
	RoleCloud
	RoleML
)

// AllRoles returns every supported role
func AllRoles() []Role {
	return []Role{RoleSWE, RoleCloud, RoleML}
}

// String returns the enum name (SWE, CLOUD, ML)
func (r Role) String() string {
	switch r {
	case RoleSWE:
		return "SWE"
	case RoleCloud:
		return "CLOUD"
	case RoleML:
		return "ML"
	case RoleUnset:
		return ""
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// IsValid reports whether r is a supported role
func (r Role) IsValid() bool {
	return r >= RoleSWE && r <= RoleML
}

// ParseRole parses a role name, ignoring case and surrounding space
func ParseRole(s string) (Role, error) {
	for _, r := range AllRoles() {
		if strings.EqualFold(strings.TrimSpace(s), r.String()) {
			return r, nil
		}
	}
	return RoleUnset, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// ParseRoleOrDefault parses s and falls back to def when s is empty or unknown
func ParseRoleOrDefault(s string, def Role) Role {
	r, err := ParseRole(s)
	if err != nil {
		return def
	}
	return r
}

// MarshalText encodes the role as its enum name
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes an enum name; an empty string leaves the role unset
func (r *Role) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*r = RoleUnset
		return nil
	}
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
