package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"ashok-storefront/internal/common/enum"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	val      *validator.Validate
	once     sync.Once
	setupErr error
)

var validationMessages = map[string]string{
	"e164":             "must be a e164 formatted phone number",
	"required":         "is required",
	"hostname_rfc1123": "must be a valid host name",
	"number":           "must be a number",
	"oneof":            "must be one of the allowed values: %s",
	"min":              "must be greater than or equal to %s",
	"max":              "must be less than or equal to %s",
	"gt":               "must be greater than %s",
	"gte":              "must be greater than or equal to %s",
	"lt":               "must be less than %s",
	"lte":              "must be less than or equal to %s",
	"unique":           "must not contain duplicate %s values",
	"enum":             "must be one of the allowed enum values: %s",
	"token":            "must not contain whitespace",
}

// Setup builds the shared validator and registers the custom tags on gin's
// binding engine as well. It is safe to call more than once.
func Setup() error {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		if err := registerValidations(v); err != nil {
			setupErr = fmt.Errorf("failed to register custom validations: %w", err)
			return
		}

		v.RegisterTagNameFunc(jsonTagName)

		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			setupErr = fmt.Errorf("failed to get validation engine")
			return
		}
		if err := registerValidations(engine); err != nil {
			setupErr = fmt.Errorf("failed to register custom validations in Gin engine: %w", err)
			return
		}

		val = v
	})

	return setupErr
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func registerValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("enum", enum.ValidateEnum); err != nil {
		return fmt.Errorf("failed to register enum validation: %w", err)
	}
	if err := v.RegisterValidation("token", validateToken); err != nil {
		return fmt.Errorf("failed to register size id validation: %w", err)
	}
	return nil
}

func Validate(payload interface{}) error {
	if err := Setup(); err != nil {
		return err
	}

	if err := val.Struct(payload); err != nil {
		var errorMessages []string

		validationErrors := parsingErrorValidate(err)
		if validationErrors != "" {
			errorMessages = append(errorMessages, validationErrors)
		}
		message := "Validation failed: " + strings.Join(errorMessages, ", ")
		return errors.New(message)
	}

	return nil
}

func parsingErrorValidate(err error) string {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		var sb strings.Builder
		for _, e := range errs {
			name := e.Namespace()
			field := e.Field()
			tag := e.Tag()
			param := e.Param()
			tp := e.Type()

			msg := validationMessages[tag]
			switch tag {
			case "enum":
				msg = fmt.Sprintf(msg, tp)
			default:
				if strings.Contains(msg, "%s") {
					msg = fmt.Sprintf(msg, param)
				}
			}
			sb.WriteString(fmt.Sprintf("%s: %s %s", name, field, msg))
			sb.WriteString(", ")
		}
		return strings.TrimSuffix(sb.String(), ", ")
	}
	return err.Error()
}
