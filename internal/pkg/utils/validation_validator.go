package utils

import (
	"clinicbook-service/internal/pkg/constvars"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterValidation("date_only", validateDateOnly)
	validate.RegisterValidation("clock", validateClock)
	validate.RegisterValidation("iso_timestamp", validateISOTimestamp)
	validate.RegisterValidation("recurrence", validateRecurrence)
	validate.RegisterValidation("appointment_status", validateAppointmentStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDateOnly(fl validator.FieldLevel) bool {
	return IsDateOnly(fl.Field().String())
}

func validateClock(fl validator.FieldLevel) bool {
	return IsClock(fl.Field().String())
}

func validateISOTimestamp(fl validator.FieldLevel) bool {
	return IsISOTimestamp(fl.Field().String())
}

func validateRecurrence(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.RecurrenceNone, constvars.RecurrenceDaily, constvars.RecurrenceWeekly, constvars.RecurrenceMonthly:
		return true
	}
	return false
}

func validateAppointmentStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.AppointmentStatusPending, constvars.AppointmentStatusConfirmed,
		constvars.AppointmentStatusCancelled, constvars.AppointmentStatusCompleted:
		return true
	}
	return false
}
