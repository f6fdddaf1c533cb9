package tenancy

import (
	"regexp"
	"strings"
	"time"

	"github.com/heartmarshall/canteen-backend/internal/domain"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// CreateTenantInput holds the parameters for creating a tenant.
type CreateTenantInput struct {
	Name     string
	Slug     string
	Timezone string // empty = service default
}

// Validate checks all fields and collects all errors.
func (i CreateTenantInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	slug := strings.TrimSpace(i.Slug)
	switch {
	case slug == "":
		errs = append(errs, domain.FieldError{Field: "slug", Message: "required"})
	case len(slug) > 64:
		errs = append(errs, domain.FieldError{Field: "slug", Message: "max 64 characters"})
	case !slugPattern.MatchString(slug):
		errs = append(errs, domain.FieldError{Field: "slug", Message: "lowercase letters, digits and dashes only"})
	}

	if tz := strings.TrimSpace(i.Timezone); tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "unknown IANA time zone"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
