package models

import "time"

// Doctor represents a registered doctor.
type Doctor struct {
	ID             int64      `gorm:"primaryKey;autoIncrement:false" bson:"id" json:"id"`
	FirstName      string     `gorm:"size:255" bson:"firstName" json:"firstName"`
	LastName       string     `gorm:"size:255" bson:"lastName" json:"lastName"`
	DOB            *time.Time `gorm:"type:date" bson:"dob,omitempty" json:"dob,omitempty"`
	Gender         string     `gorm:"size:50" bson:"gender" json:"gender"`
	Email          string     `gorm:"size:255" bson:"email" json:"email"`
	Phone          *int64     `bson:"phone,omitempty" json:"phone,omitempty"`
	Address        string     `gorm:"type:text" bson:"address" json:"address"`
	Specialization string     `gorm:"size:255" bson:"specialization" json:"specialization"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
