package service

import (
	"strconv"
	"strings"
	"time"

	"hospital-records-service/internal/models"
)

// DateLayout is the calendar date format sent by HTML date inputs.
const DateLayout = "2006-01-02"

// PatientForm is the patient intake form as submitted.
type PatientForm struct {
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
	DOB       string `form:"dob"`
	Gender    string `form:"gender"`
	Email     string `form:"email"`
	Phone     string `form:"phone"`
	Address   string `form:"address"`
	Disease   string `form:"disease"`
}

// DoctorForm is the doctor intake form as submitted.
type DoctorForm struct {
	FirstName      string `form:"firstName"`
	LastName       string `form:"lastName"`
	DOB            string `form:"dob"`
	Gender         string `form:"gender"`
	Email          string `form:"email"`
	Phone          string `form:"phone" binding:"omitempty,numeric"`
	Address        string `form:"address"`
	Specialization string `form:"specialization"`
}

// ParsePatient converts the form into a patient record without an identifier.
// Visit count always starts at the default.
func ParsePatient(form PatientForm) (*models.Patient, error) {
	dob, err := parseDate(form.DOB)
	if err != nil {
		return nil, err
	}

	return &models.Patient{
		FirstName:  form.FirstName,
		LastName:   form.LastName,
		DOB:        dob,
		Disease:    form.Disease,
		Gender:     form.Gender,
		Email:      form.Email,
		Phone:      form.Phone,
		Address:    form.Address,
		VisitCount: models.DefaultVisitCount,
	}, nil
}

// ParseDoctor converts the form into a doctor record without an identifier.
func ParseDoctor(form DoctorForm) (*models.Doctor, error) {
	dob, err := parseDate(form.DOB)
	if err != nil {
		return nil, err
	}

	var phone *int64
	if p := strings.TrimSpace(form.Phone); p != "" {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, &ValidationError{Field: "phone", Reason: "must be a number"}
		}
		phone = &n
	}

	return &models.Doctor{
		FirstName:      form.FirstName,
		LastName:       form.LastName,
		DOB:            dob,
		Gender:         form.Gender,
		Email:          form.Email,
		Phone:          phone,
		Address:        form.Address,
		Specialization: form.Specialization,
	}, nil
}

// parseDate returns nil for an omitted date. Only a value that is present
// but not a calendar date is rejected.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, &ValidationError{Field: "dob", Reason: "must be a date in YYYY-MM-DD format"}
	}
	return &t, nil
}
