package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"hospital-records-service/internal/models"
	"hospital-records-service/internal/service"
	"hospital-records-service/internal/web"
	"hospital-records-service/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const noPatientsMessage = "No patients found with the specified disease."

type PatientHandler struct {
	recordService *service.RecordService
}

func NewPatientHandler(recordService *service.RecordService) *PatientHandler {
	return &PatientHandler{
		recordService: recordService,
	}
}

// AddPatientForm renders the patient intake form
func (h *PatientHandler) AddPatientForm(c *gin.Context) {
	c.HTML(http.StatusOK, web.ViewPatientForm, nil)
}

// AddPatient stores the submitted patient and redirects to the confirmation page
func (h *PatientHandler) AddPatient(c *gin.Context) {
	var form service.PatientForm
	if !bindForm(c, &form) {
		return
	}

	patient, err := h.recordService.CreatePatient(c.Request.Context(), form)
	if err != nil {
		respondCreateError(c, err, "Error adding patient details")
		return
	}

	zerolog.Ctx(c.Request.Context()).Info().Int64("patient_id", patient.ID).Msg("patient registered")

	query := url.Values{}
	query.Set("firstName", patient.FirstName)
	query.Set("lastName", patient.LastName)
	c.Redirect(http.StatusFound, "/patientsdetails/success?"+query.Encode())
}

// AddPatientSuccess renders the confirmation message for a registered patient
func (h *PatientHandler) AddPatientSuccess(c *gin.Context) {
	message := fmt.Sprintf("%s %s details registered successfully.", c.Query("firstName"), c.Query("lastName"))
	c.HTML(http.StatusOK, web.ViewSuccess, gin.H{"message": message})
}

// SearchForm renders the patient lookup form
func (h *PatientHandler) SearchForm(c *gin.Context) {
	c.HTML(http.StatusOK, web.ViewPatientDetails, nil)
}

// SearchPatient looks a patient up by identifier
func (h *PatientHandler) SearchPatient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		utils.TextResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	patient, err := h.recordService.FindPatientByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.TextResponse(c, http.StatusOK, "Patient not found.")
			return
		}
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Int64("patient_id", id).Msg("Error searching patient by ID")
		utils.InternalError(c, err)
		return
	}

	c.HTML(http.StatusOK, web.ViewPatients, gin.H{"patients": []models.Patient{*patient}})
}

// DiseaseForm renders the disease search form
func (h *PatientHandler) DiseaseForm(c *gin.Context) {
	c.HTML(http.StatusOK, web.ViewPatientsByDisease, nil)
}

// PatientsByDisease lists every patient diagnosed with the requested disease
func (h *PatientHandler) PatientsByDisease(c *gin.Context) {
	disease := c.Query("disease")

	patients, err := h.recordService.FindPatientsByDisease(c.Request.Context(), disease)
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("disease", disease).Msg("Error searching patients by disease")
		utils.InternalError(c, err)
		return
	}

	if len(patients) == 0 {
		c.HTML(http.StatusOK, web.ViewDisease, gin.H{"message": noPatientsMessage})
		return
	}
	c.HTML(http.StatusOK, web.ViewDisease, gin.H{"patients": patients})
}
