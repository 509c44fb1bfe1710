package validator

import (
	"errors"
	"fmt"
	"strings"

	"radar/pkg/logger"
	"radar/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Details flattens the errors into an AppError details map.
func (v ValidationErrors) Details() map[string]any {
	details := make(map[string]any, len(v))
	for _, err := range v {
		details[err.Field] = err.Message
	}
	return details
}

type CriteriaValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewCriteriaValidator(log *logger.Logger) *CriteriaValidator {
	v := validator.New()
	v.RegisterStructValidation(validateNeighborhoodNeedsCity, model.FilterCriteria{})

	log.Debug("Criteria validator initialized successfully")

	return &CriteriaValidator{
		validate: v,
		logger:   log,
	}
}

// A neighborhood only narrows a city; on its own it is meaningless.
func validateNeighborhoodNeedsCity(sl validator.StructLevel) {
	c := sl.Current().Interface().(model.FilterCriteria)
	if c.Neighborhood != "" && c.City == "" {
		sl.ReportError(c.Neighborhood, "Neighborhood", "neighborhood", "requires_city", "")
	}
}

func (cv *CriteriaValidator) Validate(c model.FilterCriteria) error {
	err := cv.validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	var result ValidationErrors
	for _, e := range validationErrs {
		result = append(result, ValidationError{
			Field:   e.Field(),
			Message: formatValidationError(e),
		})
	}
	return result
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "min":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters", e.Param())
		}
		return fmt.Sprintf("must be at most %s", e.Param())
	case "requires_city":
		return "cannot be set without a city"
	default:
		return fmt.Sprintf("failed on '%s' validation", e.Tag())
	}
}
