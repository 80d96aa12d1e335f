package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobdesk/internal/common"
	"github.com/go-playground/validator/v10"
)

var modelValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks v against its `validate` tags. A failure is reported as
// a guard error naming the offending JSON-ish fields.
func Validate(v any) error {
	err := modelValidator.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return common.NewGuardError("invalid input: " + strings.Join(msgs, "; "))
}
