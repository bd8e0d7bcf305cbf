package helper

import "github.com/go-playground/validator/v10"

// Validator global, dipakai semua controller lewat ValidateStruct.
var validate = validator.New()

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
