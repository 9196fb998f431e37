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

type DoctorHandler struct {
	recordService *service.RecordService
}

func NewDoctorHandler(recordService *service.RecordService) *DoctorHandler {
	return &DoctorHandler{
		recordService: recordService,
	}
}

func (h *DoctorHandler) AddDoctorForm(c *gin.Context) {
	c.HTML(http.StatusOK, web.ViewDoctorForm, nil)
}

// AddDoctor stores the submitted doctor and redirects to the confirmation page
func (h *DoctorHandler) AddDoctor(c *gin.Context) {
	var form service.DoctorForm
	if !bindForm(c, &form) {
		return
	}

	doctor, err := h.recordService.CreateDoctor(c.Request.Context(), form)
	if err != nil {
		respondCreateError(c, err, "Error adding doctor details")
		return
	}

	zerolog.Ctx(c.Request.Context()).Info().Int64("doctor_id", doctor.ID).Msg("doctor registered")

	query := url.Values{}
	query.Set("firstName", doctor.FirstName)
	query.Set("lastName", doctor.LastName)
	c.Redirect(http.StatusFound, "/doctorsdetails/success?"+query.Encode())
}

func (h *DoctorHandler) AddDoctorSuccess(c *gin.Context) {
	message := fmt.Sprintf("%s %s details added successfully.", c.Query("firstName"), c.Query("lastName"))
	c.HTML(http.StatusOK, web.ViewSuccess, gin.H{"message": message})
}

func (h *DoctorHandler) SearchForm(c *gin.Context) {
	c.HTML(http.StatusOK, web.ViewDoctorDetails, nil)
}

// SearchDoctor looks a doctor up by identifier
func (h *DoctorHandler) SearchDoctor(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		utils.TextResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	doctor, err := h.recordService.FindDoctorByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			utils.TextResponse(c, http.StatusOK, "Doctor not found.")
			return
		}
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Int64("doctor_id", id).Msg("Error searching doctor by ID")
		utils.InternalError(c, err)
		return
	}

	c.HTML(http.StatusOK, web.ViewDoctors, gin.H{"doctors": []models.Doctor{*doctor}})
}
