package rbac_test

import (
	"testing"

	"github.com/david-vardanov/teambie/internal/rbac"
	"github.com/david-vardanov/teambie/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

func TestEnforce(t *testing.T) {
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	svc, err := rbac.NewService(enforcer)
	assert.NoError(t, err)

	tests := []struct {
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{rbac.RoleAdmin, "settings", "update", true},
		{rbac.RoleAdmin, "event", "moderate", true},
		{rbac.RoleEmployee, "event", "create", true},
		{rbac.RoleEmployee, "settings", "update", false},
		{rbac.RoleEmployee, "event", "moderate", false},
		{"UNKNOWN", "event", "read", false},
	}

	for _, tt := range tests {
		got, err := svc.Enforce(tt.role, tt.resource, tt.action)
		assert.NoError(t, err)
		assert.Equal(t, tt.allowed, got, tt.role+" "+tt.resource+":"+tt.action)
	}
}
