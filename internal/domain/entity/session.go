package entity

import (
	"errors"
	"strings"
	"time"
)

var ErrIncompleteIdentity = errors.New("identity requires role, id and display name")

// Identity is the outcome of a successful resolution. Role, UserID and
// DisplayName are always populated together.
type Identity struct {
	UserID      RecordID `json:"user_id"`
	Role        Role     `json:"role"`
	DisplayName string   `json:"display_name"`
	// IDColumn is the column that matched; it scopes patient queries
	IDColumn string `json:"id_column"`
}

// NewIdentity builds an identity, refusing partial values
func NewIdentity(userID RecordID, role Role, displayName, idColumn string) (*Identity, error) {
	if !role.IsValid() || strings.TrimSpace(displayName) == "" || idColumn == "" {
		return nil, ErrIncompleteIdentity
	}
	return &Identity{
		UserID:      userID,
		Role:        role,
		DisplayName: displayName,
		IDColumn:    idColumn,
	}, nil
}

// Session is the server side state of a signed in user.
// It is created by a successful resolve and removed by logout.
type Session struct {
	TokenID   string    `json:"token_id"`
	Identity  Identity  `json:"identity"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewSession starts a session for a resolved identity
func NewSession(tokenID string, identity Identity, now time.Time, ttl time.Duration) *Session {
	return &Session{
		TokenID:   tokenID,
		Identity:  identity,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// OwnerColumn is the appointment column that scopes rows owned by this session.
// Nurses own no appointments.
func (s *Session) OwnerColumn() (string, bool) {
	switch s.Identity.Role {
	case RoleDoctor:
		return ColumnDoctorID, true
	case RolePatient:
		if s.Identity.IDColumn != "" {
			return s.Identity.IDColumn, true
		}
		return ColumnPatientID, true
	default:
		return "", false
	}
}

// HasRole checks the session role against the allowed roles
func (s *Session) HasRole(roles ...Role) bool {
	for _, role := range roles {
		if s.Identity.Role == role {
			return true
		}
	}
	return false
}
