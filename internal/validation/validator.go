package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("user_id", validateUserID)
	_ = v.RegisterValidation("category_kind", validateCategoryKind)
	_ = v.RegisterValidation("transaction_kind", validateTransactionKind)
	_ = v.RegisterValidation("insight_type", validateInsightType)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}

// validateUserID validates that a user ID is a valid UUID
func validateUserID(fl validator.FieldLevel) bool {
	userID := fl.Field().String()
	if userID == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`, userID)
	return matched
}

// validateCategoryKind validates that category kind is one of the allowed kinds
func validateCategoryKind(fl validator.FieldLevel) bool {
	kind := strings.ToLower(fl.Field().String())
	validKinds := map[string]bool{
		"income":  true,
		"expense": true,
	}
	return validKinds[kind]
}

// validateTransactionKind validates that transaction kind is one of the allowed kinds
func validateTransactionKind(fl validator.FieldLevel) bool {
	kind := strings.ToLower(fl.Field().String())
	validKinds := map[string]bool{
		"income":  true,
		"expense": true,
	}
	return validKinds[kind]
}

// validateInsightType validates that insight type is one of the generated types
func validateInsightType(fl validator.FieldLevel) bool {
	insightType := strings.ToLower(fl.Field().String())
	validTypes := map[string]bool{
		"spending_increase":      true,
		"budget_recommendation":  true,
		"unusual_expense":        true,
		"positive_reinforcement": true,
	}
	return validTypes[insightType]
}
