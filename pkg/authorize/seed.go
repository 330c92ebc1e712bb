package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// SysAdmin: god mode
		{RoleSysAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Application policies (domain: app), shared by every signed-in user of the
	// given role.
	appPolicies := []PermissionPolicy{
		// Students: browse the directory, open and manage their own requests.
		{RoleAppStudent, DomainApp, ResourceDirectory, ActionRead, EffectAllow},
		{RoleAppStudent, DomainApp, ResourceDirectory, ActionList, EffectAllow},
		{RoleAppStudent, DomainApp, ResourceAppointment, ActionCreate, EffectAllow},
		{RoleAppStudent, DomainApp, ResourceAppointment, ActionRead, EffectAllow},
		{RoleAppStudent, DomainApp, ResourceAppointment, ActionList, EffectAllow},
		{RoleAppStudent, DomainApp, ResourceAppointment, ActionCancel, EffectAllow},
		{RoleAppStudent, DomainApp, ResourceAppointment, ActionAnnotate, EffectAllow},

		// Faculty: decide on incoming requests and keep a public profile.
		{RoleAppFaculty, DomainApp, ResourceDirectory, ActionRead, EffectAllow},
		{RoleAppFaculty, DomainApp, ResourceDirectory, ActionList, EffectAllow},
		{RoleAppFaculty, DomainApp, ResourceAppointment, ActionRead, EffectAllow},
		{RoleAppFaculty, DomainApp, ResourceAppointment, ActionList, EffectAllow},
		{RoleAppFaculty, DomainApp, ResourceAppointment, ActionDecide, EffectAllow},
		{RoleAppFaculty, DomainApp, ResourceAppointment, ActionReschedule, EffectAllow},
		{RoleAppFaculty, DomainApp, ResourceAppointment, ActionAnnotate, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own resources
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceStudentProfile, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceFacultyProfile, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceNotification, ActionManage, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, appPolicies...), userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignAppRole grants the app-domain role matching the user's registered role.
// Valid roles: RoleAppStudent, RoleAppFaculty.
func AssignAppRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	switch role {
	case RoleAppStudent, RoleAppFaculty:
		// valid application roles
	default:
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainApp)
	return err
}

// RemoveAppRole revokes an app-domain role from a user.
func RemoveAppRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainApp)
	return err
}

// GetAppRoles returns the app-domain roles a user holds.
func GetAppRoles(ctx context.Context, auth IAuthorization, userID string) ([]Role, error) {
	subject := GroupSubject(userID)
	return auth.GetRolesForUserInDomain(ctx, subject, DomainApp)
}

// AssignSystemRole assigns a system-level role to a user.
// Note: RoleSysAdmin should be assigned manually/carefully.
func AssignSystemRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	switch role {
	case RoleSysAdmin:
		// valid system role
	default:
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// RemoveSystemRole removes a system-level role from a user.
func RemoveSystemRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}
