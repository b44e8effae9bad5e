package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

// Validate checks struct tags first, then the cross-field rules tags cannot express.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is required")
	}

	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := lo.Map(fieldErrs, func(fe validator.FieldError, _ int) string {
				return fmt.Sprintf("%s %s", strings.TrimPrefix(fe.Namespace(), "Config."), describeTag(fe))
			})
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := ValidateTimeout(cfg.Transcription.Timeout, "transcription"); err != nil {
		return err
	}

	if cfg.UploadDir == cfg.FrontendDir || cfg.UploadDir == cfg.SignsDir {
		return fmt.Errorf("invalid configuration: upload directory must not be a served static directory")
	}

	return nil
}

// ValidateTimeout validates timeout duration
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s timeout must be positive", name)
	}
	if timeout > 30*time.Minute {
		return fmt.Errorf("%s timeout too large (max 30 minutes)", name)
	}
	return nil
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if", "required_with":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "min":
		return fmt.Sprintf("is too small (min %s)", fe.Param())
	case "max":
		return fmt.Sprintf("is too large (max %s)", fe.Param())
	case "url":
		return "must be a valid URL"
	case "len":
		return fmt.Sprintf("must be %s characters", fe.Param())
	default:
		return "is invalid"
	}
}
