package handler

import (
	"errors"
	"net/http"
	"strings"

	"hospital-records-service/internal/service"
	"hospital-records-service/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// bindForm decodes the urlencoded form into dst and reports a 400 when the
// binding tags reject it. Returns false when a response was already written.
func bindForm(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBind(dst); err != nil {
		respondValidation(c, toValidationError(err))
		return false
	}
	return true
}

func toValidationError(err error) *service.ValidationError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		reason := "is invalid"
		if fe.Tag() == "numeric" {
			reason = "must be a number"
		}
		return &service.ValidationError{Field: strings.ToLower(fe.Field()), Reason: reason}
	}
	return &service.ValidationError{Field: "form", Reason: err.Error()}
}

func respondValidation(c *gin.Context, err *service.ValidationError) {
	utils.TextResponse(c, http.StatusBadRequest, "Invalid form: "+err.Error())
}

// respondCreateError maps a create failure onto the response: 400 for a
// rejected form, the generic 500 for anything else.
func respondCreateError(c *gin.Context, err error, msg string) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		respondValidation(c, ve)
		return
	}
	zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg(msg)
	utils.InternalError(c, err)
}
