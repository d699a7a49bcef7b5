package theme

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	idaerrors "github.com/idawm/idatheme/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hex6Pattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)
)

// validatorInstance configures and returns the shared validator used for
// loaded documents.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("hex6", func(fl validator.FieldLevel) bool {
			return hex6Pattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDocument performs structural validation on a loaded base palette.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return idaerrors.NewValidationError("theme", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	return nil
}

// ValidateSemantic checks that every required role is present. Values are
// not checked here: canonical hex validation with per-key context happens
// after the override merge, where a failure is fatal.
func ValidateSemantic(semantic Semantic) error {
	if semantic == nil {
		return idaerrors.NewValidationError("semantic", "document is nil", nil)
	}

	for _, role := range RequiredRoles {
		if _, ok := semantic[role]; !ok {
			return idaerrors.NewValidationError(
				"semantic."+role, "required role is missing", nil)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := jsonishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return idaerrors.NewValidationError(field, msg, err)
	}

	return idaerrors.NewValidationError("theme", err.Error(), err)
}

func jsonishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
