package handler

import (
	"errors"
	"net/http"
	"reflect"

	"shopops/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps a service-layer error onto an HTTP status and the
// standard {"detail": ...} envelope. Unclassified errors become opaque
// 500s; the underlying cause is logged, never echoed to the client.
func respondError(c *gin.Context, err error) {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		if apiErr.Status == http.StatusInternalServerError {
			log.Error().
				Str("path", c.FullPath()).
				Err(apiErr.Err).
				Msg("internal error")
			c.JSON(http.StatusInternalServerError, apierror.New("Internal server error"))
			return
		}
		c.JSON(apiErr.Status, apierror.New(apiErr.Detail))
		return
	}

	log.Error().
		Str("path", c.FullPath()).
		Err(err).
		Msg("unclassified error")
	c.JSON(http.StatusInternalServerError, apierror.New("Internal server error"))
}
