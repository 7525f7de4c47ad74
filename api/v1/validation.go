package v1

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

// jsonFieldName reports validation failures under the field's json key
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// validationMessage turns the first binding rule violation into the API's error text.
// ok is false when err is not a validation failure.
func validationMessage(err error) (string, bool) {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "", false
	}

	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("el campo %s es obligatorio", fe.Field()), true
	case "gt":
		return fmt.Sprintf("el campo %s debe ser un id válido", fe.Field()), true
	default:
		return fmt.Sprintf("el campo %s no es válido", fe.Field()), true
	}
}
