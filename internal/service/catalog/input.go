package catalog

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
	maxImageRefLen    = 1000
	maxLabels         = 30
	maxLabelLen       = 50
)

// CreateDishInput holds the parameters for creating a dish.
type CreateDishInput struct {
	Title       string
	Description *string
	ImageRef    *string
	Allergens   []string
	Tags        []string
}

// Validate checks all fields and collects all errors.
func (i CreateDishInput) Validate() error {
	var errs []domain.FieldError

	title := domain.NormalizeTitle(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	errs = append(errs, checkCommon(&title, i.Description, i.ImageRef, i.Allergens, i.Tags)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateDishInput holds the parameters for updating a dish.
// Nil fields are left unchanged; an empty Description or ImageRef clears it.
// A non-nil empty Allergens or Tags clears the set.
type UpdateDishInput struct {
	DishID      uuid.UUID
	Title       *string
	Description *string
	ImageRef    *string
	Allergens   []string
	Tags        []string
}

// Validate checks all fields and collects all errors.
func (i UpdateDishInput) Validate() error {
	var errs []domain.FieldError

	if i.DishID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dish_id", Message: "required"})
	}
	if i.Title == nil && i.Description == nil && i.ImageRef == nil && i.Allergens == nil && i.Tags == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	var title *string
	if i.Title != nil {
		t := domain.NormalizeTitle(*i.Title)
		if t == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		title = &t
	}
	errs = append(errs, checkCommon(title, i.Description, i.ImageRef, i.Allergens, i.Tags)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkCommon(title, description, imageRef *string, allergens, tags []string) []domain.FieldError {
	var errs []domain.FieldError

	if title != nil && utf8.RuneCountInString(*title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if description != nil && utf8.RuneCountInString(*description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if imageRef != nil && utf8.RuneCountInString(*imageRef) > maxImageRefLen {
		errs = append(errs, domain.FieldError{Field: "image_ref", Message: "max 1000 characters"})
	}
	errs = append(errs, checkLabels("allergens", allergens)...)
	errs = append(errs, checkLabels("tags", tags)...)
	return errs
}

func checkLabels(field string, labels []string) []domain.FieldError {
	if len(labels) > maxLabels {
		return []domain.FieldError{{Field: field, Message: "max 30 entries"}}
	}
	for _, l := range labels {
		if utf8.RuneCountInString(domain.NormalizeLabel(l)) > maxLabelLen {
			return []domain.FieldError{{Field: field, Message: "each entry max 50 characters"}}
		}
	}
	return nil
}
