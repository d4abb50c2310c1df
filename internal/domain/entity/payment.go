package entity

import "github.com/shopspring/decimal"

// Payment is read-only for this service
type Payment struct {
	PaymentID     RecordID        `gorm:"column:payment_id;primaryKey" json:"payment_id"`
	AppointmentID RecordID        `gorm:"column:appointment_id;index" json:"appointment_id"`
	Amount        decimal.Decimal `gorm:"column:amount;type:decimal(10,2)" json:"amount"`
	Method        string          `gorm:"column:method" json:"method,omitempty"`
	Status        string          `gorm:"column:status" json:"status,omitempty"`
	PaidAt        *string         `gorm:"column:paid_at" json:"paid_at,omitempty"`
}

func (Payment) TableName() string {
	return TablePayment
}
