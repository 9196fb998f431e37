package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"hospital-records-service/internal/models"
)

func TestMemoryStore_PatientRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	in := &models.Patient{ID: 3, FirstName: "Ann", Disease: "fever", VisitCount: 1}
	if err := store.CreatePatient(ctx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Mutating the caller's copy must not leak into the store.
	in.FirstName = "Changed"

	got, err := store.GetPatientByID(ctx, 3)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.FirstName != "Ann" {
		t.Errorf("expected stored first name Ann, got %q", got.FirstName)
	}
}

func TestMemoryStore_OptionalFieldsAreDetached(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	dob := time.Date(1970, 6, 11, 0, 0, 0, 0, time.UTC)
	phone := int64(5551234)
	if err := store.CreateDoctor(ctx, &models.Doctor{ID: 1, DOB: &dob, Phone: &phone}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.CreateDoctor(ctx, &models.Doctor{ID: 2}); err != nil {
		t.Fatalf("create: %v", err)
	}

	dob = dob.AddDate(1, 0, 0)
	phone = 0

	got, err := store.GetDoctorByID(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Phone == nil || *got.Phone != 5551234 {
		t.Errorf("expected stored phone 5551234, got %v", got.Phone)
	}
	if got.DOB == nil || got.DOB.Year() != 1970 {
		t.Errorf("expected stored dob in 1970, got %v", got.DOB)
	}

	bare, err := store.GetDoctorByID(ctx, 2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if bare.Phone != nil || bare.DOB != nil {
		t.Errorf("expected omitted phone and dob to stay nil, got %v %v", bare.Phone, bare.DOB)
	}
}

func TestMemoryStore_DuplicateID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.CreateDoctor(ctx, &models.Doctor{ID: 1}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.CreateDoctor(ctx, &models.Doctor{ID: 1}); err == nil {
		t.Error("expected duplicate id error")
	}
}

func TestMemoryStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.GetPatientByID(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for patient, got %v", err)
	}
	if _, err := store.GetDoctorByID(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for doctor, got %v", err)
	}
}

func TestMemoryStore_FindPatientsByDisease(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for i, disease := range []string{"fever", "cold", "fever"} {
		if err := store.CreatePatient(ctx, &models.Patient{ID: int64(i), Disease: disease}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := store.FindPatientsByDisease(ctx, "fever")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got) != 2 || got[0].ID != 0 || got[1].ID != 2 {
		t.Errorf("unexpected result: %+v", got)
	}

	none, err := store.FindPatientsByDisease(ctx, "plague")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", none)
	}
}

func TestMemoryStore_Reserve(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first, err := store.Reserve(ctx, models.RecordSequence, 5)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	second, err := store.Reserve(ctx, models.RecordSequence, 1)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if first != 0 || second != 5 {
		t.Errorf("expected blocks at 0 and 5, got %d and %d", first, second)
	}

	if _, err := store.Reserve(ctx, models.RecordSequence, 0); err == nil {
		t.Error("expected error for empty block")
	}
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewMemoryStore()
	if err := store.CreatePatient(ctx, &models.Patient{}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
