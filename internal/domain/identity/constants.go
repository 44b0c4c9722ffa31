package identity

const (
	RoleAdmin      = "admin"
	RoleUnitLeader = "unit_leader"
	RoleSupervisor = "supervisor"

	// Role applied when a provider event carries no role metadata at all.
	DefaultProvisionRole = RoleUnitLeader

	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleUnitLeader, RoleSupervisor:
		return true
	}
	return false
}
