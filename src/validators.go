package main

import (
	"errors"
	"studio/src/schedule"

	"github.com/go-playground/validator/v10"
)

const MSG_INVALID_BODY = "Invalid request body"

var isoDateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return schedule.ValidDate(date)
}

var clockValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	clock, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := schedule.ParseClock(clock)
	return err == nil
}

func registerValidators(v *validator.Validate) {
	v.RegisterValidation("isodate", isoDateValidatorFunc)
	v.RegisterValidation("clock", clockValidatorFunc)
}

// bindingErrorMessage reports date and clock failures with the same wording
// as the schedule checks. Anything else keeps fallback.
func bindingErrorMessage(err error, fallback string) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fallback
	}
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "isodate":
			return schedule.ErrInvalidDate.Msg
		case "clock":
			return schedule.ErrInvalidClock.Msg
		}
	}
	return err.Error()
}
