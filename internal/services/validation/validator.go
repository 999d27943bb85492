package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/jobdeck/internal/models"
)

var instance = newValidator()

// Validator returns the shared validator with the domain enum rules registered
func Validator() *validator.Validate {
	return instance
}

func newValidator() *validator.Validate {
	v := validator.New()

	// Report field names from json tags so validation errors match the wire format
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("jobtype", func(fl validator.FieldLevel) bool {
		return models.JobType(fl.Field().String()).Valid()
	})
	v.RegisterValidation("explevel", func(fl validator.FieldLevel) bool {
		return models.ExperienceLevel(fl.Field().String()).Valid()
	})
	v.RegisterValidation("jobstatus", func(fl validator.FieldLevel) bool {
		return models.JobStatus(fl.Field().String()).Valid()
	})
	v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return models.Currency(fl.Field().String()).Valid()
	})
	v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return models.Role(fl.Field().String()).Valid()
	})

	return v
}
