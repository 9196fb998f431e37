// Package web holds the HTML views rendered by the handlers.
package web

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// View names, as registered with gin's HTML renderer.
const (
	ViewHome              = "home.tmpl"
	ViewPatientForm       = "patientForm.tmpl"
	ViewDoctorForm        = "doctorForm.tmpl"
	ViewPatientDetails    = "patientDetails.tmpl"
	ViewDoctorDetails     = "doctorDetails.tmpl"
	ViewPatientsByDisease = "patientsByDisease.tmpl"
	ViewPatients          = "patients.tmpl"
	ViewDoctors           = "doctors.tmpl"
	ViewDisease           = "disease.tmpl"
	ViewSuccess           = "success.tmpl"
)

// Templates parses every embedded view into one set.
func Templates() *template.Template {
	return template.Must(template.New("").
		Funcs(template.FuncMap{
			"formatDate": formatDate,
		}).
		ParseFS(templateFS, "templates/*.tmpl"))
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
