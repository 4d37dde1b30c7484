package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"finplanner/internal/models"
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

	_ = v.RegisterValidation("spending_category", validateSpendingCategory)
	_ = v.RegisterValidation("goal_status", validateGoalStatus)
	_ = v.RegisterValidation("goal_priority", validateGoalPriority)
	_ = v.RegisterValidation("risk_tolerance", validateRiskTolerance)
	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("chat_role", validateChatRole)

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

// validateSpendingCategory accepts any of the known spending categories
func validateSpendingCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

// validateGoalStatus accepts active, completed or paused
func validateGoalStatus(fl validator.FieldLevel) bool {
	return models.IsValidGoalStatus(fl.Field().String())
}

// validateGoalPriority accepts 1 (high), 2 (medium) or 3 (low)
func validateGoalPriority(fl validator.FieldLevel) bool {
	priority := fl.Field().Int()
	return priority >= models.GoalPriorityHigh && priority <= models.GoalPriorityLow
}

// validateRiskTolerance accepts the known risk tolerance levels
func validateRiskTolerance(fl validator.FieldLevel) bool {
	tolerance := strings.ToLower(fl.Field().String())
	switch tolerance {
	case models.RiskToleranceConservative, models.RiskToleranceModerate, models.RiskToleranceAggressive:
		return true
	}
	return false
}

// validateMoneyAmount validates a positive decimal with at most 2 decimal places
func validateMoneyAmount(fl validator.FieldLevel) bool {
	amount, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return false
	}
	return amount.Exponent() >= -2
}

// validateChatRole accepts the conversation roles the chat endpoint understands
func validateChatRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "user", "assistant":
		return true
	}
	return false
}
