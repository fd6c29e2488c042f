package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role partitions the user collection.
type Role string

const (
	RoleCEO      Role = "ceo"
	RoleEmployee Role = "employee"
	RoleClient   Role = "client"
)

// Valid reports whether r is one of the three fixed roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCEO, RoleEmployee, RoleClient:
		return true
	}
	return false
}

// Access gates login independently of role.
type Access string

const (
	AccessActive   Access = "active"
	AccessInactive Access = "inactive"
)

func (a Access) Valid() bool {
	return a == AccessActive || a == AccessInactive
}

// Profile is the role-specific payload carried by a User. Only
// EmployeeProfile and ClientProfile implement it; a CEO has no profile.
type Profile interface {
	profileRole() Role
}

// EmployeeProfile holds the attributes that only employees carry.
type EmployeeProfile struct {
	Department string
	Position   string
	Skills     []string
}

func (EmployeeProfile) profileRole() Role { return RoleEmployee }

// CompanyDetails describes the organisation a client represents.
type CompanyDetails struct {
	Name    string
	Address string
	Phone   string
}

// Validate requires every company field, mirroring the client form.
func (c CompanyDetails) Validate() error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("%w: companyDetails.name is required", ErrValidation)
	case strings.TrimSpace(c.Address) == "":
		return fmt.Errorf("%w: companyDetails.address is required", ErrValidation)
	case strings.TrimSpace(c.Phone) == "":
		return fmt.Errorf("%w: companyDetails.phone is required", ErrValidation)
	}
	return nil
}

// ClientProfile holds the attributes that only clients carry.
type ClientProfile struct {
	CompanyDetails CompanyDetails
}

func (ClientProfile) profileRole() Role { return RoleClient }

// User models an authenticated actor. Profile is nil for the CEO and
// otherwise matches Role.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Contact      string
	Role         Role
	Access       Access
	Profile      Profile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Employee returns the employee payload when the user is an employee.
func (u *User) Employee() (EmployeeProfile, bool) {
	p, ok := u.Profile.(EmployeeProfile)
	return p, ok && u.Role == RoleEmployee
}

// Client returns the client payload when the user is a client.
func (u *User) Client() (ClientProfile, bool) {
	p, ok := u.Profile.(ClientProfile)
	return p, ok && u.Role == RoleClient
}

// IsActive reports whether the user may log in.
func (u *User) IsActive() bool {
	return u.Access != AccessInactive
}

// ProfileMatchesRole reports whether the attached profile variant agrees with
// the role discriminant.
func (u *User) ProfileMatchesRole() bool {
	if u.Profile == nil {
		return u.Role == RoleCEO
	}
	return u.Profile.profileRole() == u.Role
}

// Identity is what a verified credential proves about its bearer.
type Identity struct {
	ID    string
	Role  Role
	Email string
}

// NormalizeEmail is the canonical form used for storage and lookup; email
// uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeSkills trims entries and drops empty ones, keeping order.
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// UserSummary is the reduced view embedded in project and timesheet reads.
type UserSummary struct {
	ID             string
	Name           string
	Email          string
	Position       string
	Department     string
	CompanyDetails *CompanyDetails
}

// Summary projects u onto the fields other records expose about it.
func (u *User) Summary() UserSummary {
	s := UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
	if p, ok := u.Employee(); ok {
		s.Position = p.Position
		s.Department = p.Department
	}
	if p, ok := u.Client(); ok {
		cd := p.CompanyDetails
		s.CompanyDetails = &cd
	}
	return s
}
