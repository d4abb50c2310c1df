package entity

// Patient is a row of the patient registry.
// Optional columns are pointers so that unset values are omitted on insert.
type Patient struct {
	PatientID   RecordID `gorm:"column:patient_id;primaryKey;autoIncrement" json:"patient_id,omitempty"`
	Name        string   `gorm:"column:name;not null" json:"name"`
	Email       *string  `gorm:"column:email" json:"email,omitempty"`
	Phone       *string  `gorm:"column:phone" json:"phone,omitempty"`
	DateOfBirth *string  `gorm:"column:date_of_birth" json:"date_of_birth,omitempty"`
	Gender      *string  `gorm:"column:gender" json:"gender,omitempty"`
	Address     *string  `gorm:"column:address" json:"address,omitempty"`
}

func (Patient) TableName() string {
	return TablePatient
}

// Gender values accepted on registration
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)
