package console

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"fleet_console/internal/models"
)

var plateRe = regexp.MustCompile(`^[A-Za-z0-9\s-]{3,15}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields under their json names so errors key the form fields.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("platenumber", func(fl validator.FieldLevel) bool {
		return plateRe.MatchString(fl.Field().String())
	})
	v.RegisterValidation("vehicleyear", func(fl validator.FieldLevel) bool {
		year := fl.Field().Int()
		return year >= 1900 && year <= int64(time.Now().Year()+1)
	})

	return v
}

// ValidateVehicleUpdate runs the editor's pre-submit rules and returns errors
// keyed by field. All rules run as one pass; an empty map means the form may
// be submitted.
func ValidateVehicleUpdate(form models.VehicleUpdate) map[string]string {
	errs := make(map[string]string)
	err := validate.Struct(form)
	if err == nil {
		return errs
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "Invalid form submission"
		return errs
	}
	for _, fe := range fieldErrs {
		errs[fe.Field()] = fieldMessage(fe)
	}
	return errs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "plateNumber":
		if fe.Tag() == "required" {
			return "Plate number is required"
		}
		return "Invalid plate number format"
	case "make":
		if fe.Tag() == "required" {
			return "Make is required"
		}
		return "Make must be at least 2 characters"
	case "model":
		if fe.Tag() == "required" {
			return "Model is required"
		}
		return "Model must be at least 2 characters"
	case "year":
		return fmt.Sprintf("Year must be between 1900 and %d", time.Now().Year()+1)
	case "capacity":
		return "Capacity must be between 1 and 100"
	default:
		return "Invalid value"
	}
}
