package entity

import (
	"fmt"
	"strings"
)

// Role is the position a user claims when signing in
type Role string

const (
	RoleDoctor  Role = "Doctor"
	RoleNurse   Role = "Nurse"
	RolePatient Role = "Patient"
)

// RoleSchema describes where a role's records live in the remote store.
// Identity resolution reads these descriptors instead of probing columns.
type RoleSchema struct {
	// Table holds one row per member of the role
	Table string
	// IDColumn is the column of Table matched against the identifier
	IDColumn string
	// NameTable holds the display name
	NameTable string
	// NameKeyColumn is the column of NameTable keyed by the same identifier
	NameKeyColumn string
}

var roleSchemas = map[Role]RoleSchema{
	RoleDoctor: {
		Table:         TableDoctor,
		IDColumn:      ColumnDoctorID,
		NameTable:     TableStaff,
		NameKeyColumn: ColumnStaffID,
	},
	RoleNurse: {
		Table:         TableNurse,
		IDColumn:      ColumnNurseID,
		NameTable:     TableStaff,
		NameKeyColumn: ColumnStaffID,
	},
	RolePatient: {
		Table:         TablePatient,
		IDColumn:      ColumnPatientID,
		NameTable:     TablePatient,
		NameKeyColumn: ColumnPatientID,
	},
}

// ParseRole accepts a role name in any letter case
func ParseRole(s string) (Role, error) {
	for role := range roleSchemas {
		if strings.EqualFold(strings.TrimSpace(s), string(role)) {
			return role, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Schema returns the static schema descriptor of the role
func (r Role) Schema() (RoleSchema, bool) {
	schema, ok := roleSchemas[r]
	return schema, ok
}

// IsValid checks the role is one of Doctor, Nurse or Patient
func (r Role) IsValid() bool {
	_, ok := roleSchemas[r]
	return ok
}

func (r Role) String() string {
	return string(r)
}
