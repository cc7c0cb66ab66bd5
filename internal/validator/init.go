package validator

import (
	"ctchen222/noughts-and-crosses/internal/game"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// mark accepts "X" or "O" in any case
	if err := validate.RegisterValidation("mark", validMark); err != nil {
		panic(fmt.Sprintf("failed to register mark validation: %v", err))
	}
}

func validMark(fl validator.FieldLevel) bool {
	_, err := game.ParseMark(strings.TrimSpace(fl.Field().String()))
	return err == nil
}

func GetValidator() *validator.Validate {
	return validate
}
