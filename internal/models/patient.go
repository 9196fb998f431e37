package models

import "time"

// DefaultVisitCount is the visit count every patient record starts with.
const DefaultVisitCount = 1

// Patient represents a registered patient.
// ID is the sequential identifier used in lookup URLs, not the storage key.
type Patient struct {
	ID         int64      `gorm:"primaryKey;autoIncrement:false" bson:"id" json:"id"`
	FirstName  string     `gorm:"size:255" bson:"firstName" json:"firstName"`
	LastName   string     `gorm:"size:255" bson:"lastName" json:"lastName"`
	DOB        *time.Time `gorm:"type:date" bson:"dob,omitempty" json:"dob,omitempty"`
	Disease    string     `gorm:"size:255;index" bson:"disease" json:"disease"`
	Gender     string     `gorm:"size:50" bson:"gender" json:"gender"`
	Email      string     `gorm:"size:255" bson:"email" json:"email"`
	Phone      string     `gorm:"size:50" bson:"phone" json:"phone"`
	Address    string     `gorm:"type:text" bson:"address" json:"address"`
	VisitCount int        `gorm:"column:no_of_visits;default:1" bson:"noofvisits" json:"noOfVisits"`
	DoctorID   *string    `gorm:"size:50" bson:"doctorId,omitempty" json:"doctorId,omitempty"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
