package entity

import "fmt"

// AppointmentStatus represents the status of an appointment.
// Other values may be written by processes outside this service.
type AppointmentStatus string

const (
	AppointmentStatusBooked    AppointmentStatus = "Booked"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// AppointmentPriority is the triage tag of an appointment
type AppointmentPriority string

const (
	AppointmentPriorityLow    AppointmentPriority = "Low"
	AppointmentPriorityMedium AppointmentPriority = "Medium"
	AppointmentPriorityHigh   AppointmentPriority = "High"
)

// AppointmentDateTimeLayout is the layout written to appointment_datetime
const AppointmentDateTimeLayout = "2006-01-02 15:04:05"

// Appointment represents a booked visit of a patient with a doctor
type Appointment struct {
	AppointmentID       RecordID            `gorm:"column:appointment_id;primaryKey;autoIncrement" json:"appointment_id,omitempty"`
	PatientID           RecordID            `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID            RecordID            `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	ClinicID            RecordID            `gorm:"column:clinic_id;not null" json:"clinic_id"`
	AppointmentDateTime string              `gorm:"column:appointment_datetime;not null" json:"appointment_datetime"`
	Status              AppointmentStatus   `gorm:"column:status;not null" json:"status"`
	Reason              string              `gorm:"column:reason" json:"reason"`
	Priority            AppointmentPriority `gorm:"column:priority" json:"priority"`
}

func (Appointment) TableName() string {
	return TableAppointment
}

// IsBooked checks if appointment is still booked
func (a *Appointment) IsBooked() bool {
	return a.Status == AppointmentStatusBooked
}

// IsCancelled checks if appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// DisplayLabel is the label shown when picking an appointment to cancel
func (a *Appointment) DisplayLabel() string {
	return fmt.Sprintf("Appt ID: %d on %s", a.AppointmentID, a.AppointmentDateTime)
}
