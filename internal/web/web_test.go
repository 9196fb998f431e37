package web

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"hospital-records-service/internal/models"
)

func TestTemplates_AllViewsDefined(t *testing.T) {
	tmpl := Templates()

	views := []string{
		ViewHome, ViewPatientForm, ViewDoctorForm, ViewPatientDetails, ViewDoctorDetails,
		ViewPatientsByDisease, ViewPatients, ViewDoctors, ViewDisease, ViewSuccess,
	}
	for _, name := range views {
		if tmpl.Lookup(name) == nil {
			t.Errorf("view %q is not defined", name)
		}
	}
}

func TestTemplates_SuccessEscapesMessage(t *testing.T) {
	var buf bytes.Buffer
	err := Templates().ExecuteTemplate(&buf, ViewSuccess, map[string]interface{}{
		"message": "<b>Ann</b> Lee details registered successfully.",
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.Contains(buf.String(), "<b>Ann</b>") {
		t.Error("expected message to be HTML escaped")
	}
}

func TestFormatDate(t *testing.T) {
	if got := formatDate(nil); got != "" {
		t.Errorf("expected empty string for missing date, got %q", got)
	}
	if got := formatDate(&time.Time{}); got != "" {
		t.Errorf("expected empty string for zero date, got %q", got)
	}
	d := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := formatDate(&d); got != "1990-01-01" {
		t.Errorf("expected 1990-01-01, got %q", got)
	}
}

func TestDoctorsView_OptionalFieldsRenderBlank(t *testing.T) {
	var buf bytes.Buffer
	err := Templates().ExecuteTemplate(&buf, ViewDoctors, map[string]interface{}{
		"doctors": []models.Doctor{{ID: 7, FirstName: "Ann", LastName: "Lee"}},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.Contains(buf.String(), "&lt;nil&gt;") || strings.Contains(buf.String(), "<nil>") {
		t.Errorf("expected missing phone and dob to render blank, got %s", buf.String())
	}
}
