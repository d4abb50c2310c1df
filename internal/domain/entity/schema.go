package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// Remote store tables
const (
	TableStaff        = "staff"
	TableDoctor       = "doctor"
	TableNurse        = "nurse"
	TablePatient      = "patient"
	TableAppointment  = "appointment"
	TablePrescription = "prescription"
	TablePayment      = "payment"
)

// Remote store columns referenced by filters
const (
	ColumnStaffID       = "staff_id"
	ColumnStaffType     = "staff_type"
	ColumnDoctorID      = "doctor_id"
	ColumnNurseID       = "nurse_id"
	ColumnPatientID     = "patient_id"
	ColumnAppointmentID = "appointment_id"
	ColumnName          = "name"
	ColumnStatus        = "status"
)

// RecordID is a numeric primary key of the remote store.
// Identifiers arrive as text and are parsed once at the boundary.
type RecordID int64

// ParseRecordID parses a decimal identifier. Surrounding whitespace is ignored.
func ParseRecordID(s string) (RecordID, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("identifier %q is not a number", s)
	}
	return RecordID(id), nil
}

func (id RecordID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Row is an untyped record for tables whose columns this service does not own
type Row = map[string]interface{}
