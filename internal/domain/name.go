package domain

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Name length bounds, counted in characters after trimming.
const (
	MinNameLength = 1
	MaxNameLength = 100
)

// nameRule is the validator tag applied to every list and todo name. The
// min/max tags count runes for strings.
const nameRule = "min=1,max=100"

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// NormalizeName trims leading and trailing whitespace from a user-supplied name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// ValidNameLength reports whether the already-normalized name has between
// MinNameLength and MaxNameLength characters.
func ValidNameLength(name string) bool {
	return validatorInstance().Var(name, nameRule) == nil
}
