package request

import (
	"field-booking/internal/domain/booking"
	"field-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the booking tags to gin's shared validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("gin binding engine is not go-playground/validator")
	}
	return registerOn(v)
}

func registerOn(v *validator.Validate) error {
	tags := map[string]validator.Func{
		"clock":    validateClock,
		"datestr":  validateDate,
		"daytype":  validateDayType,
		"timeband": validateTimeBand,
		"channel":  validateChannel,
	}
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return errs.Wrapf(err, "register %q validator", tag)
		}
	}
	return nil
}

func validateClock(fl validator.FieldLevel) bool {
	_, err := booking.ParseClock(fl.Field().String())
	return err == nil
}

func validateDate(fl validator.FieldLevel) bool {
	_, err := booking.ParseDate(fl.Field().String())
	return err == nil
}

func validateDayType(fl validator.FieldLevel) bool {
	return booking.DayType(fl.Field().String()).IsValid()
}

func validateTimeBand(fl validator.FieldLevel) bool {
	return booking.TimeBand(fl.Field().String()).IsValid()
}

func validateChannel(fl validator.FieldLevel) bool {
	return booking.Channel(fl.Field().String()).IsValid()
}
