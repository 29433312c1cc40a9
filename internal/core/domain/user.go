package domain

import "time"

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleUser    UserRole = "user"
)

func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleUser
}

type Capability string

const (
	CapabilityAdd    Capability = "add"
	CapabilityEdit   Capability = "edit"
	CapabilityDelete Capability = "delete"
	CapabilityExport Capability = "export"
)

// Can is the role to capability table.
func (r UserRole) Can(c Capability) bool {
	switch c {
	case CapabilityAdd, CapabilityExport:
		return r == RoleAdmin || r == RoleManager
	case CapabilityEdit, CapabilityDelete:
		return r == RoleAdmin
	}
	return false
}

type Capabilities struct {
	CanAdd    bool `json:"can_add"`
	CanEdit   bool `json:"can_edit"`
	CanDelete bool `json:"can_delete"`
	CanExport bool `json:"can_export"`
}

func (r UserRole) Capabilities() Capabilities {
	return Capabilities{
		CanAdd:    r.Can(CapabilityAdd),
		CanEdit:   r.Can(CapabilityEdit),
		CanDelete: r.Can(CapabilityDelete),
		CanExport: r.Can(CapabilityExport),
	}
}

// swagger:model domain.User
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash,omitempty"`
	Role         UserRole  `json:"role"`
	Name         string    `json:"name"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	Company      string    `json:"company,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// SessionUser is the "current user" pointer kept per device.
type SessionUser struct {
	ID      string    `json:"id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Role    UserRole  `json:"role"`
	LoginAt time.Time `json:"login_at"`
}

type SignupRequest struct {
	FirstName       string `json:"first_name" validate:"notblank"`
	LastName        string `json:"last_name" validate:"notblank"`
	Email           string `json:"email" validate:"notblank"`
	Company         string `json:"company"`
	Password        string `json:"password" validate:"notblank"`
	ConfirmPassword string `json:"confirm_password" validate:"notblank"`
	AgreeTerms      bool   `json:"agree_terms"`
}

type RememberedLogin struct {
	RememberMe bool   `json:"remember_me"`
	Email      string `json:"email,omitempty"`
}
