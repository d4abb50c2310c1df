package entity

// Prescription is read-only for this service
type Prescription struct {
	PrescriptionID RecordID `gorm:"column:prescription_id;primaryKey" json:"prescription_id"`
	AppointmentID  RecordID `gorm:"column:appointment_id;index" json:"appointment_id"`
	Medication     string   `gorm:"column:medication" json:"medication,omitempty"`
	Dosage         string   `gorm:"column:dosage" json:"dosage,omitempty"`
	Instructions   string   `gorm:"column:instructions" json:"instructions,omitempty"`
}

func (Prescription) TableName() string {
	return TablePrescription
}
