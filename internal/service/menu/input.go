package menu

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
)

const (
	maxPrice    = 1_000_000
	maxNotesLen = 500
)

// CreateWeekInput holds the parameters for creating a week menu.
type CreateWeekInput struct {
	Year    int
	ISOWeek int
}

// Validate checks the ISO week against the year's week count.
func (i CreateWeekInput) Validate() error {
	return domain.ValidateISOWeek(i.Year, i.ISOWeek)
}

// CopyWeekInput holds the parameters for copying a week menu.
type CopyWeekInput struct {
	SourceID      uuid.UUID
	TargetYear    int
	TargetISOWeek int
}

// Validate checks all fields and collects all errors.
func (i CopyWeekInput) Validate() error {
	if i.SourceID == uuid.Nil {
		return domain.NewValidationError("source_id", "required")
	}
	return domain.ValidateISOWeek(i.TargetYear, i.TargetISOWeek)
}

// SetDayOpenInput holds the parameters for opening or closing a day.
type SetDayOpenInput struct {
	DayID  uuid.UUID
	IsOpen bool
	Notes  *string // nil = don't change; ptr("") = clear
}

// Validate checks all fields and collects all errors.
func (i SetDayOpenInput) Validate() error {
	var errs []domain.FieldError

	if i.DayID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "day_id", Message: "required"})
	}
	if i.Notes != nil && len(*i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddItemInput holds the parameters for placing a dish on a day.
type AddItemInput struct {
	DayID    uuid.UUID
	DishID   uuid.UUID
	Price    int
	Category domain.ItemCategory
}

// Validate checks all fields and collects all errors.
func (i AddItemInput) Validate() error {
	var errs []domain.FieldError

	if i.DayID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "day_id", Message: "required"})
	}
	if i.DishID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dish_id", Message: "required"})
	}
	errs = append(errs, checkPrice(i.Price)...)
	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be one of MAIN, VEG, SOUP, DESSERT, OTHER"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateItemInput holds the parameters for changing a menu item.
// Nil fields are left unchanged.
type UpdateItemInput struct {
	ItemID    uuid.UUID
	Price     *int
	Category  *domain.ItemCategory
	Status    *domain.ItemStatus
	SortOrder *int
}

// Validate checks all fields and collects all errors.
func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}
	if i.Price == nil && i.Category == nil && i.Status == nil && i.SortOrder == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Price != nil {
		errs = append(errs, checkPrice(*i.Price)...)
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be one of MAIN, VEG, SOUP, DESSERT, OTHER"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of ACTIVE, CHANGED, SOLD_OUT"})
	}
	if i.SortOrder != nil && *i.SortOrder < 0 {
		errs = append(errs, domain.FieldError{Field: "sort_order", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReorderItemsInput holds the new display order of a day.
type ReorderItemsInput struct {
	DayID   uuid.UUID
	ItemIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ReorderItemsInput) Validate() error {
	var errs []domain.FieldError

	if i.DayID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "day_id", Message: "required"})
	}
	seen := make(map[uuid.UUID]struct{}, len(i.ItemIDs))
	for _, id := range i.ItemIDs {
		if _, dup := seen[id]; dup {
			errs = append(errs, domain.FieldError{Field: "item_ids", Message: "must not contain duplicates"})
			break
		}
		seen[id] = struct{}{}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkPrice(price int) []domain.FieldError {
	if price < 0 {
		return []domain.FieldError{{Field: "price", Message: "must not be negative"}}
	}
	if price > maxPrice {
		return []domain.FieldError{{Field: "price", Message: "too large"}}
	}
	return nil
}
