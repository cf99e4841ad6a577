package rbac

import (
	"strings"
	"sync"

	"go-academy/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleTeacher    = "teacher"

	ResourceAttendance = "attendance"
	ResourceBoard      = "attendance_board"

	ActionRead   = "read"
	ActionCreate = "create"
	ActionReload = "reload"
)

type Policy struct {
	Role     string
	TenantID string
	Resource string
	Action   string
}

type Inheritance struct {
	Role   string
	Parent string
}

// DefaultPolicies apply to every tenant.
var DefaultPolicies = []Policy{
	{Role: RoleTeacher, TenantID: "*", Resource: ResourceAttendance, Action: ActionRead},
	{Role: RoleTeacher, TenantID: "*", Resource: ResourceAttendance, Action: ActionCreate},
	{Role: RoleTeacher, TenantID: "*", Resource: ResourceBoard, Action: ActionRead},
	{Role: RoleAdmin, TenantID: "*", Resource: ResourceBoard, Action: ActionReload},
}

var DefaultInheritance = []Inheritance{
	{Role: RoleAdmin, Parent: RoleTeacher},
	{Role: RoleSuperAdmin, Parent: RoleAdmin},
}

type Service interface {
	LoadPolicy(policies []Policy, inheritance []Inheritance) error
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		enforcer: enforcer,
		logger:   l,
	}
}

// LoadPolicy replaces the whole policy set.
func (s *service) LoadPolicy(policies []Policy, inheritance []Inheritance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	for _, in := range inheritance {
		if _, err := s.enforcer.AddGroupingPolicy(in.Role, in.Parent); err != nil {
			return err
		}
	}
	for _, p := range policies {
		if _, err := s.enforcer.AddPolicy(p.Role, p.TenantID, p.Resource, p.Action); err != nil {
			return err
		}
	}

	s.logger.Info("rbac policy loaded",
		zap.Int("policies", len(policies)),
		zap.Int("inheritance", len(inheritance)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role == "" {
		return false, nil
	}

	allowed, err := s.enforcer.Enforce(role, req.TenantID, req.Resource, req.Action)
	if err != nil {
		return false, err
	}
	if !allowed {
		s.logger.Debug("rbac denied",
			zap.String("role", role),
			zap.String("tenant_id", req.TenantID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
		)
	}
	return allowed, nil
}
