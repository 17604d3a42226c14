package domain_test

import (
	"testing"

	"go-empdir/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, domain.RoleDirector.IsValid())
	assert.True(t, domain.RoleLeader.IsValid())
	assert.True(t, domain.RoleEmployee.IsValid())

	assert.False(t, domain.Role(0).IsValid())
	assert.False(t, domain.Role(4).IsValid())
	assert.False(t, domain.Role(-1).IsValid())
}

func TestRole_Ordering(t *testing.T) {
	// A lower ordinal means more authority.
	assert.True(t, domain.RoleDirector.Outranks(domain.RoleLeader))
	assert.True(t, domain.RoleLeader.Outranks(domain.RoleEmployee))
	assert.False(t, domain.RoleLeader.Outranks(domain.RoleLeader))
	assert.False(t, domain.RoleEmployee.Outranks(domain.RoleLeader))

	assert.True(t, domain.RoleLeader.OutranksOrEquals(domain.RoleLeader))
	assert.True(t, domain.RoleDirector.OutranksOrEquals(domain.RoleEmployee))
	assert.False(t, domain.RoleEmployee.OutranksOrEquals(domain.RoleDirector))
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "Director", domain.RoleDirector.String())
	assert.Equal(t, "Leader", domain.RoleLeader.String())
	assert.Equal(t, "Employee", domain.RoleEmployee.String())
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, domain.RoleDirector, domain.ParseRole("Director"))
	assert.Equal(t, domain.RoleLeader, domain.ParseRole("Leader"))
	assert.Equal(t, domain.RoleEmployee, domain.ParseRole("Employee"))
	assert.Equal(t, domain.RoleEmployee, domain.ParseRole("something-else"))
}

func TestAnonymous(t *testing.T) {
	anon := domain.Anonymous()

	assert.False(t, anon.IsAuthenticated)
	assert.Equal(t, domain.RoleEmployee, anon.Role)
}
