// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("milestone_status", validateMilestoneStatus)
		_ = v.RegisterValidation("platform", validatePlatform)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateMilestoneStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "not_started", "in_progress", "complete":
		return true
	}
	return false
}

func validatePlatform(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "instagram", "tiktok", "youtube", "x", "linkedin", "facebook":
		return true
	}
	return false
}
