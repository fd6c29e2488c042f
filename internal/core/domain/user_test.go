package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_ProfileMatchesRole(t *testing.T) {
	tests := []struct {
		name string
		user User
		want bool
	}{
		{"ceo without profile", User{Role: RoleCEO}, true},
		{"employee with employee profile", User{Role: RoleEmployee, Profile: EmployeeProfile{}}, true},
		{"client with client profile", User{Role: RoleClient, Profile: ClientProfile{}}, true},
		{"employee without profile", User{Role: RoleEmployee}, false},
		{"client with employee profile", User{Role: RoleClient, Profile: EmployeeProfile{}}, false},
		{"ceo with client profile", User{Role: RoleCEO, Profile: ClientProfile{}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.ProfileMatchesRole())
		})
	}
}

func TestUser_RoleAccessors(t *testing.T) {
	emp := &User{Role: RoleEmployee, Profile: EmployeeProfile{Position: "dev"}}
	p, ok := emp.Employee()
	assert.True(t, ok)
	assert.Equal(t, "dev", p.Position)
	_, ok = emp.Client()
	assert.False(t, ok)

	mismatched := &User{Role: RoleClient, Profile: EmployeeProfile{}}
	_, ok = mismatched.Employee()
	assert.False(t, ok)
}

func TestUser_IsActive(t *testing.T) {
	assert.True(t, (&User{Access: AccessActive}).IsActive())
	assert.False(t, (&User{Access: AccessInactive}).IsActive())
}

func TestUser_Summary(t *testing.T) {
	client := &User{ID: "c1", Name: "Rep", Email: "rep@acme.io", Role: RoleClient,
		Profile: ClientProfile{CompanyDetails: CompanyDetails{Name: "Acme"}}}
	s := client.Summary()
	assert.Equal(t, "c1", s.ID)
	if assert.NotNil(t, s.CompanyDetails) {
		assert.Equal(t, "Acme", s.CompanyDetails.Name)
	}
	assert.Empty(t, s.Position)

	emp := &User{ID: "e1", Role: RoleEmployee, Profile: EmployeeProfile{Position: "dev", Department: "eng"}}
	s = emp.Summary()
	assert.Equal(t, "dev", s.Position)
	assert.Nil(t, s.CompanyDetails)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", NormalizeEmail("  Alice@Example.COM "))
}

func TestNormalizeSkills(t *testing.T) {
	assert.Equal(t, []string{"go", "sql"}, NormalizeSkills([]string{" go", "", "  ", "sql "}))
	assert.Empty(t, NormalizeSkills(nil))
}

func TestCompanyDetails_Validate(t *testing.T) {
	assert.NoError(t, CompanyDetails{Name: "Acme", Address: "Main 1", Phone: "555"}.Validate())
	assert.ErrorIs(t, CompanyDetails{Name: "Acme", Address: "Main 1"}.Validate(), ErrValidation)
	assert.ErrorIs(t, CompanyDetails{}.Validate(), ErrValidation)
}
