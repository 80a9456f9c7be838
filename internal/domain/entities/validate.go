package entities

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// vinPattern accepts the 17 characters a modern VIN is made of. The letters
// I, O and Q never appear in a VIN.
var vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

var validate = newValidator() //nolint:gochecknoglobals // validator caches struct metadata

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("vin", func(fl validator.FieldLevel) bool {
		return vinPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register vin validation: %v", err))
	}
	return v
}

// fieldErrors maps a struct field name to the sentinel reported when the
// field fails its tag.
var fieldErrors = map[string]error{ //nolint:gochecknoglobals // read-only lookup
	"ID":     ErrInvalidID,
	"VIN":    ErrInvalidVIN,
	"Status": ErrInvalidStatus,
	"Rating": ErrInvalidRating,
}

// validateStruct runs the struct tags on s and converts the first failing
// field into the matching sentinel, so callers can use errors.Is.
//
// Go Learning Note — errors.As:
// validator returns a validator.ValidationErrors slice wrapped in the plain
// error interface. errors.As walks the wrap chain and, if it finds a value of
// the target's type, stores it in the target and returns true.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	fe := verrs[0]
	sentinel, ok := fieldErrors[fe.Field()]
	if !ok {
		sentinel = ErrValidation
	}
	return fmt.Errorf("%w: %s=%v fails %q", sentinel, fe.Field(), fe.Value(), fe.Tag())
}
