package domain

import (
	"time"

	"github.com/google/uuid"
)

// Dish is a catalog entry owned by a tenant, independent of any week.
type Dish struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	Title       string
	Description *string
	ImageRef    *string
	Allergens   []string
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DishUsage lists the active (DRAFT or PUBLISHED) weeks that serve a dish.
// A non-empty usage is the warning shown before deletion.
type DishUsage struct {
	DishID      uuid.UUID
	ActiveWeeks []WeekRef
	ItemCount   int
}

// InActiveMenu reports whether deleting the dish would alter a live menu.
func (u DishUsage) InActiveMenu() bool { return len(u.ActiveWeeks) > 0 }

// WeekRef identifies a week menu without its day tree.
type WeekRef struct {
	WeekMenuID uuid.UUID
	Year       int
	ISOWeek    int
	Status     WeekStatus
}

// DishFilter narrows a catalog listing. Zero values mean "no filter".
type DishFilter struct {
	Search string
	Tag    string
	Limit  int
	Offset int
}

// DishUpdate is a partial dish update. Nil fields are left untouched; an
// empty Description or ImageRef clears the value.
type DishUpdate struct {
	Title       *string
	Description *string
	ImageRef    *string
	Allergens   []string
	Tags        []string
	UpdatedAt   time.Time
}

// IsEmpty reports whether the update changes nothing.
func (u DishUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.ImageRef == nil && u.Allergens == nil && u.Tags == nil
}
