package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var (
	namePattern     = regexp.MustCompile(`^[a-zA-Z]{3,30}$`)
	phonePattern    = regexp.MustCompile(`^\+[0-9]{11,12}$`)
	passwordPattern = regexp.MustCompile(`^[0-9a-zA-Z!@#$%^&*?]{6,20}$`)
	otpPattern      = regexp.MustCompile(`^[0-9]{6}$`)
)

const passwordSpecials = "!@#$%^&*?"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "personname", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "password", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return passwordPattern.MatchString(value) && strings.ContainsAny(value, passwordSpecials)
	})
	mustRegister(v, "otp", func(fl validator.FieldLevel) bool {
		return otpPattern.MatchString(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// parseAndValidate decodes the request body into req and checks its rules.
// Every broken rule is reported in one 400 response.
func parseAndValidate(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request")
	}

	if err := validate.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			messages := make([]string, 0, len(ve))
			for _, fe := range ve {
				messages = append(messages, fieldMessage(fe))
			}
			return fiber.NewError(fiber.StatusBadRequest, strings.Join(messages, ", "))
		}
		return fiber.NewError(fiber.StatusBadRequest, "invalid request")
	}

	return nil
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "personname":
		return fmt.Sprintf("%s must be 3 to 30 letters", field)
	case "phone":
		return fmt.Sprintf("%s must start with + followed by 11 or 12 digits", field)
	case "password":
		return fmt.Sprintf("%s must be 6 to 20 characters and contain one of %s", field, passwordSpecials)
	case "otp":
		return fmt.Sprintf("%s must be a 6-digit number", field)
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// parseID reads a positive integer path parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s must be a positive integer", name))
	}
	return uint(id), nil
}
