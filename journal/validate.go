package journal

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("pair", func(fl validator.FieldLevel) bool {
		_, ok := Pairs[fl.Field().String()]
		return ok
	})
	if err != nil {
		panic(fmt.Sprintf("journal: register pair validation: %v", err))
	}
	return v
}

// Validate checks the fields an input form must supply. Balance and Seq are
// computed by the store and are not checked.
func (t Trade) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTrade, err)
	}
	if !t.Criteria.Valid() {
		return fmt.Errorf("%w: unknown criteria bits %#x", ErrInvalidTrade, uint16(t.Criteria))
	}
	return nil
}
