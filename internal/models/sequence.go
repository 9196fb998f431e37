package models

// RecordSequence is the name of the sequence shared by patients and doctors.
const RecordSequence = "records"

// Sequence stores the next unreserved value of a named identifier sequence.
// In MongoDB the name is the document _id.
type Sequence struct {
	Name  string `gorm:"primaryKey;size:100" bson:"_id" json:"name"`
	Value int64  `gorm:"not null;default:0" bson:"value" json:"value"`
}

// TableName specifies the table name for Sequence model
func (Sequence) TableName() string {
	return "sequences"
}
