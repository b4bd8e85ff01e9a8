package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
)

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

func NewService(enforcer *casbin.Enforcer) (Service, error) {
	s := &service{enforcer: enforcer}
	if err := s.loadPolicies(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) loadPolicies() error {
	policies := [][]string{
		{RoleAdmin, "*", "*"},
		{RoleEmployee, "attendance", "read"},
		{RoleEmployee, "event", "read"},
		{RoleEmployee, "event", "create"},
		{RoleEmployee, "leave", "read"},
	}
	for _, p := range policies {
		if _, err := s.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enforcer.Enforce(role, resource, action)
}
