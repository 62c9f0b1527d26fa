package validation

import (
	"fmt"

	"github.com/ninebox-labs/talent_review_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators attaches the domain validation tags to gin's
// binding engine so malformed input is rejected before any mutation is
// applied:
//
//	reviewlevel - value is one of the LOW/MEDIUM/HIGH scale tags
//	flagkey     - value belongs to the known flag key set
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("gin binding validator engine is not *validator.Validate")
	}

	if err := v.RegisterValidation("reviewlevel", func(fl validator.FieldLevel) bool {
		return domain.Level(fl.Field().String()).IsValid()
	}); err != nil {
		return fmt.Errorf("failed to register reviewlevel validator: %w", err)
	}

	if err := v.RegisterValidation("flagkey", func(fl validator.FieldLevel) bool {
		return domain.IsKnownFlagKey(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("failed to register flagkey validator: %w", err)
	}

	return nil
}
