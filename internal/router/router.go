package router

import (
	"hospital-records-service/internal/config"
	"hospital-records-service/internal/handler"
	"hospital-records-service/internal/middleware"
	"hospital-records-service/internal/service"
	"hospital-records-service/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// New builds the gin engine with every page and form route registered.
func New(cfg *config.Config, logger zerolog.Logger, recordService *service.RecordService, ping handler.Pinger) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg),
	)
	r.SetHTMLTemplate(web.Templates())

	pageHandler := handler.NewPageHandler(ping)
	patientHandler := handler.NewPatientHandler(recordService)
	doctorHandler := handler.NewDoctorHandler(recordService)

	r.GET("/", pageHandler.Home)
	r.GET("/health", pageHandler.Health)

	// Patients
	r.GET("/add-patients", patientHandler.AddPatientForm)
	r.POST("/add-patient", patientHandler.AddPatient)
	r.GET("/patientsdetails/success", patientHandler.AddPatientSuccess)
	r.GET("/patientsdetails", patientHandler.SearchForm)
	r.GET("/search-patient", patientHandler.SearchPatient)
	r.GET("/patientsdisease", patientHandler.DiseaseForm)
	r.GET("/patients-disease", patientHandler.PatientsByDisease)

	// Doctors
	r.GET("/add-doctors", doctorHandler.AddDoctorForm)
	r.POST("/add-doctor", doctorHandler.AddDoctor)
	r.GET("/doctorsdetails/success", doctorHandler.AddDoctorSuccess)
	r.GET("/doctorsdetails", doctorHandler.SearchForm)
	r.GET("/search-doctor", doctorHandler.SearchDoctor)

	return r
}
