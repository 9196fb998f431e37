package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"hospital-records-service/internal/models"
)

// MemoryStore keeps records in process memory. Data is lost on restart,
// so it is only meant for tests and local runs.
type MemoryStore struct {
	mu        sync.RWMutex
	patients  map[int64]models.Patient
	doctors   map[int64]models.Doctor
	sequences map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		patients:  make(map[int64]models.Patient),
		doctors:   make(map[int64]models.Doctor),
		sequences: make(map[string]int64),
	}
}

// Store exposes the memory repositories through the common Store shape.
func (m *MemoryStore) Store() *Store {
	return &Store{
		Patients:  m,
		Doctors:   m,
		Sequences: m,
		Ping:      func(context.Context) error { return nil },
		Close:     func(context.Context) error { return nil },
	}
}

func (m *MemoryStore) CreatePatient(ctx context.Context, patient *models.Patient) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.patients[patient.ID]; exists {
		return fmt.Errorf("insert patient %d: duplicate id", patient.ID)
	}
	m.patients[patient.ID] = copyPatient(*patient)
	return nil
}

func (m *MemoryStore) GetPatientByID(ctx context.Context, id int64) (*models.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	p = copyPatient(p)
	return &p, nil
}

func (m *MemoryStore) FindPatientsByDisease(ctx context.Context, disease string) ([]models.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	patients := []models.Patient{}
	for _, p := range m.patients {
		if p.Disease == disease {
			patients = append(patients, copyPatient(p))
		}
	}
	sort.Slice(patients, func(i, j int) bool { return patients[i].ID < patients[j].ID })
	return patients, nil
}

func (m *MemoryStore) CreateDoctor(ctx context.Context, doctor *models.Doctor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.doctors[doctor.ID]; exists {
		return fmt.Errorf("insert doctor %d: duplicate id", doctor.ID)
	}
	m.doctors[doctor.ID] = copyDoctor(*doctor)
	return nil
}

func (m *MemoryStore) GetDoctorByID(ctx context.Context, id int64) (*models.Doctor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.doctors[id]
	if !ok {
		return nil, ErrNotFound
	}
	d = copyDoctor(d)
	return &d, nil
}

func (m *MemoryStore) Reserve(ctx context.Context, name string, n int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("reserve %d values from sequence %q: block must be positive", n, name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	start := m.sequences[name]
	m.sequences[name] = start + n
	return start, nil
}

// copyPatient detaches the optional fields so stored records never alias the caller's.
func copyPatient(p models.Patient) models.Patient {
	if p.DOB != nil {
		dob := *p.DOB
		p.DOB = &dob
	}
	if p.DoctorID != nil {
		doctorID := *p.DoctorID
		p.DoctorID = &doctorID
	}
	return p
}

func copyDoctor(d models.Doctor) models.Doctor {
	if d.DOB != nil {
		dob := *d.DOB
		d.DOB = &dob
	}
	if d.Phone != nil {
		phone := *d.Phone
		d.Phone = &phone
	}
	return d
}
