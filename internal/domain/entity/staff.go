package entity

// Staff is the shared registry of doctors and nurses
type Staff struct {
	StaffID   RecordID `gorm:"column:staff_id;primaryKey" json:"staff_id"`
	Name      string   `gorm:"column:name" json:"name"`
	StaffType Role     `gorm:"column:staff_type" json:"staff_type,omitempty"`
}

func (Staff) TableName() string {
	return TableStaff
}
