package auth

// Principal is the authenticated identity the API layer hands to every core
// operation: the user id plus the role flags carried in the token.
type Principal struct {
	UserID         int
	IsOwner        bool
	IsProfessional bool
	IsSecretary    bool
}

// IsStaff reports whether the principal may read, edit and delete records
// owned by other users (owners and secretaries).
func (p Principal) IsStaff() bool {
	return p.IsOwner || p.IsSecretary
}

// IsClientOnly reports whether the principal carries no role flag at all.
func (p Principal) IsClientOnly() bool {
	return !p.IsOwner && !p.IsProfessional && !p.IsSecretary
}
