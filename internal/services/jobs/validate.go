package jobs

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/jobdeck/internal/models"
	"github.com/ternarybob/jobdeck/internal/services/validation"
)

var validate = validation.Validator()

// ValidateInput checks a create payload against all field constraints and
// returns the full set of violations, one entry per failing field.
func ValidateInput(input *models.JobInput) models.ValidationErrors {
	var errs models.ValidationErrors

	input.Title = strings.TrimSpace(input.Title)
	input.Company = strings.TrimSpace(input.Company)
	input.Description = strings.TrimSpace(input.Description)
	input.Requirements = strings.TrimSpace(input.Requirements)
	input.Location = strings.TrimSpace(input.Location)
	for i := range input.Skills {
		input.Skills[i] = strings.TrimSpace(input.Skills[i])
	}
	for i := range input.Benefits {
		input.Benefits[i] = strings.TrimSpace(input.Benefits[i])
	}

	if err := validate.Struct(input); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				errs = append(errs, models.FieldError{
					Field:   fieldPath(fe),
					Message: messageFor(fe),
				})
			}
		} else {
			errs = append(errs, models.FieldError{Field: "", Message: err.Error()})
		}
	}

	errs = append(errs, validateSalary(input.Salary)...)

	if input.ApplicationDeadline != nil && !input.ApplicationDeadline.After(time.Now()) {
		errs = append(errs, models.FieldError{
			Field:   "applicationDeadline",
			Message: "Application deadline must be in the future",
		})
	}

	return errs
}

// validateSalary checks the optional compensation block: non-negative bounds,
// max at or above min when both present, and a supported currency.
func validateSalary(s *models.SalaryInput) models.ValidationErrors {
	if s == nil {
		return nil
	}

	var errs models.ValidationErrors
	if s.Min != nil && *s.Min < 0 {
		errs = append(errs, models.FieldError{Field: "salary.min", Message: "Minimum salary cannot be negative"})
	}
	if s.Max != nil && *s.Max < 0 {
		errs = append(errs, models.FieldError{Field: "salary.max", Message: "Maximum salary cannot be negative"})
	}
	if s.Min != nil && s.Max != nil && *s.Max < *s.Min {
		errs = append(errs, models.FieldError{Field: "salary.max", Message: "Maximum salary must be greater than or equal to minimum salary"})
	}
	if s.Currency != "" && !s.Currency.Valid() {
		errs = append(errs, models.FieldError{Field: "salary.currency", Message: "Currency must be one of: USD, EUR, GBP, INR, CAD, AUD"})
	}
	return errs
}

// fieldPath strips the struct name prefix, leaving the json path (e.g.
// "JobInput.skills[2]" -> "skills[2]")
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s cannot have more than %s entries", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s cannot exceed %s characters", fe.Field(), fe.Param())
	case "jobtype":
		return "Job type must be one of: full-time, part-time, contract, freelance, internship"
	case "explevel":
		return "Experience level must be one of: entry, mid, senior, executive"
	case "jobstatus":
		return "Status must be one of: active, paused, closed, draft"
	case "currency":
		return "Currency must be one of: USD, EUR, GBP, INR, CAD, AUD"
	case "role":
		return "Role must be one of: jobseeker, recruiter"
	case "email":
		return "Email must be a valid email address"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
