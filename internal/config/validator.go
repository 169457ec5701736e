package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/inkwell/internal/ui/components"
	inkerrors "github.com/alexisbeaulieu97/inkwell/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	yamlNames = map[string]string{
		"Theme":           "theme",
		"Textarea":        "textarea",
		"Name":            "name",
		"Palette":         "palette",
		"InitialValue":    "initial_value",
		"MinHeight":       "min_height",
		"ReadOnly":        "read_only",
		"CharLimit":       "char_limit",
		"MaxHeight":       "max_height",
		"ShowLineNumbers": "show_line_numbers",
	}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			_, ok := components.ThemeByName(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("palette_slot", func(fl validator.FieldLevel) bool {
			_, ok := components.Palette{}.Override(fl.Field().String(), lipgloss.AdaptiveColor{})
			return ok
		})

		_ = v.RegisterValidation("dimension", func(fl validator.FieldLevel) bool {
			_, err := components.ParseDimension(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return inkerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Textarea.Value != nil && cfg.Textarea.CharLimit > 0 && len([]rune(*cfg.Textarea.Value)) > cfg.Textarea.CharLimit {
		return inkerrors.NewValidationError("textarea.value", fmt.Sprintf("longer than char_limit %d", cfg.Textarea.CharLimit), nil)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return inkerrors.NewValidationError(field, msg, err)
	}

	return inkerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns "Config.Textarea.MinHeight" into "textarea.min_height".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		name, key, hasKey := strings.Cut(part, "[")
		if mapped, ok := yamlNames[name]; ok {
			name = mapped
		} else {
			name = strings.ToLower(name)
		}
		if hasKey {
			name += "[" + key
		}
		lowered = append(lowered, name)
	}
	return strings.Join(lowered, ".")
}
