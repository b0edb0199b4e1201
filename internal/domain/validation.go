package domain

import (
	"reflect"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrInvalidProduct matches every *ValidationError
var ErrInvalidProduct = errors.New("invalid product")

// FieldError describes one rejected field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed validation
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return "invalid product: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidProduct
}

// Has reports whether field is among the rejected fields
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Decimals are validated by their sign, which is exact at any scale
	validate.RegisterCustomTypeFunc(func(v reflect.Value) interface{} {
		if d, ok := v.Interface().(decimal.Decimal); ok {
			return d.Sign()
		}
		return nil
	}, decimal.Decimal{})

	mustRegister("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister("producttype", func(fl validator.FieldLevel) bool {
		return ProductType(fl.Field().Int()).IsValid()
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

type baseFields struct {
	ID    int             `json:"id" validate:"gte=0"`
	Name  string          `json:"name" validate:"notblank"`
	Type  ProductType     `json:"type" validate:"producttype"`
	Price decimal.Decimal `json:"price" validate:"gte=0"`
}

func validateProduct(p Product) error {
	var fields []FieldError

	fields = append(fields, formatValidationErrors(validate.Struct(baseFields{
		ID:    p.id,
		Name:  p.name,
		Type:  p.kind,
		Price: p.price,
	}))...)

	if p.details != nil {
		if p.details.productType() != p.kind {
			fields = append(fields, FieldError{Field: "type", Message: "does not match the product details"})
		}
		fields = append(fields, formatValidationErrors(validate.Struct(p.details))...)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// formatValidationErrors converts validator errors to a readable format
func formatValidationErrors(err error) []FieldError {
	var fields []FieldError

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			fields = append(fields, FieldError{
				Field:   e.Field(),
				Message: getErrorMessage(e),
			})
		}
	}

	return fields
}

func getErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "notblank":
		return "must not be blank"
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(e.Param()), ", ")
	case "producttype":
		return "must be a catalog product type"
	default:
		return "is invalid"
	}
}
