// Package party models the kinds of actors that take part in threads:
// marketplace users, companies and support admins.
package party

import "fmt"

type Type string

const (
	TypeUser    Type = "user"
	TypeCompany Type = "company"
	TypeAdmin   Type = "admin"
)

var validTypes = map[Type]bool{
	TypeUser:    true,
	TypeCompany: true,
	TypeAdmin:   true,
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	return validTypes[t]
}

// IsParticipant reports whether t can own a conversation side or a ticket.
func (t Type) IsParticipant() bool {
	return t == TypeUser || t == TypeCompany
}

func (t Type) IsAdmin() bool {
	return t == TypeAdmin
}

// Counterpart returns the other side of a user/company conversation.
// It returns "" for admins.
func (t Type) Counterpart() Type {
	switch t {
	case TypeUser:
		return TypeCompany
	case TypeCompany:
		return TypeUser
	default:
		return ""
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid party type: %s", s)
	}
	return t, nil
}

// Viewer is the authenticated party issuing a request.
type Viewer struct {
	Type Type
	ID   uint
}

func NewViewer(t Type, id uint) (Viewer, error) {
	if !t.IsValid() {
		return Viewer{}, fmt.Errorf("invalid party type: %s", t)
	}
	if !t.IsAdmin() && id == 0 {
		return Viewer{}, fmt.Errorf("party ID is required")
	}
	return Viewer{Type: t, ID: id}, nil
}

// Is reports whether the viewer is exactly the given party.
func (v Viewer) Is(t Type, id uint) bool {
	return v.Type == t && v.ID == id
}
