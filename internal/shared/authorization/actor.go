package authorization

// Actor is the already-authenticated caller of an operation.
type Actor struct {
	UserID uint
	Role   UserRole
}

func NewActor(userID uint, role UserRole) Actor {
	return Actor{UserID: userID, Role: role}
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

// CanAccessOwnedBy reports whether the actor may touch a resource owned by ownerID.
// Admins may touch everything; users only their own resources.
func (a Actor) CanAccessOwnedBy(ownerID uint) bool {
	if a.Role.IsAdmin() {
		return true
	}
	return a.Role == RoleUser && a.UserID != 0 && a.UserID == ownerID
}
