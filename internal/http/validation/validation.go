// Package validation registers the custom binding tags used by request DTOs.
package validation

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"careerline.app/studio/common"
	"careerline.app/studio/internal/model"
)

// Register adds slug and the enum tags to gin's validator. Call once at startup.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"slug": func(fl validator.FieldLevel) bool {
			return common.IsSlug(fl.Field().String())
		},
		"section_type": func(fl validator.FieldLevel) bool {
			return model.SectionType(fl.Field().String()).IsValid()
		},
		"employment_type": func(fl validator.FieldLevel) bool {
			return model.EmploymentType(fl.Field().String()).IsValid()
		},
		"experience_level": func(fl validator.FieldLevel) bool {
			return model.ExperienceLevel(fl.Field().String()).IsValid()
		},
		"work_policy": func(fl validator.FieldLevel) bool {
			return model.WorkPolicy(fl.Field().String()).IsValid()
		},
		"application_status": func(fl validator.FieldLevel) bool {
			return model.ApplicationStatus(fl.Field().String()).IsValid()
		},
	}

	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("registering %s validator: %w", tag, err)
		}
	}
	return nil
}
