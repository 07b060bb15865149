package validator

import (
	"log"

	"agencia_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the domain enums into the validator. Empty values
// pass every rule here; 'required' handles presence separately.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-moderation-status", validateModerationStatus)
	mustRegister("is-status-filter", validateStatusFilter)
	mustRegister("is-sort-field", validateSortField)
	mustRegister("is-sort-order", validateSortOrder)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidUserRole(models.UserRole(value))
}

func validateModerationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidModerationStatus(models.ModerationStatus(value))
}

// validateStatusFilter additionally accepts the listing pseudo-status ALL.
func validateStatusFilter(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" || value == "ALL" {
		return true
	}
	return models.ValidModerationStatus(models.ModerationStatus(value))
}

func validateSortField(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "createdAt", "artisticName", "views", "status", "updatedAt":
		return true
	default:
		return false
	}
}

func validateSortOrder(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", "asc", "desc":
		return true
	default:
		return false
	}
}
