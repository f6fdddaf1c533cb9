package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// WeekMenu is the menu for one ISO week within one tenant.
type WeekMenu struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	Year        int
	ISOWeek     int
	Status      WeekStatus
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Days []MenuDay
}

// Label renders the week as "2025 W12".
func (w *WeekMenu) Label() string {
	return fmt.Sprintf("%d W%d", w.Year, w.ISOWeek)
}

// MenuDay is one weekday of a WeekMenu. Date is a calendar date stored at
// UTC midnight.
type MenuDay struct {
	ID         uuid.UUID
	WeekMenuID uuid.UUID
	Date       time.Time
	IsOpen     bool
	Notes      *string

	Items []MenuItem
}

// MenuItem is a dish offered on a specific day.
type MenuItem struct {
	ID        uuid.UUID
	MenuDayID uuid.UUID
	DishID    uuid.UUID
	Price     int
	Category  ItemCategory
	Status    ItemStatus
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time

	Dish *Dish // populated by read views only
}

// DayContext locates a day inside its week and tenant. It is what the
// lifecycle rules need to decide whether a day or item may change.
type DayContext struct {
	MenuDayID  uuid.UUID
	WeekMenuID uuid.UUID
	TenantID   uuid.UUID
	Date       time.Time
	IsOpen     bool
	WeekStatus WeekStatus
}

// ItemContext is a MenuItem together with its DayContext.
type ItemContext struct {
	Item MenuItem
	Day  DayContext
}

// CheckTransition reports whether a week may move from one status to another.
// Illegal transitions return a ConflictError naming both states.
func CheckTransition(from, to WeekStatus) error {
	legal := false
	switch to {
	case WeekStatusPublished:
		legal = from == WeekStatusDraft || from == WeekStatusArchived
	case WeekStatusArchived:
		legal = from == WeekStatusPublished
	}
	if !legal {
		return NewConflictError("cannot move week menu from %s to %s", from, to)
	}
	return nil
}

// CheckEditable applies the day/item editability rule: DRAFT always,
// PUBLISHED only in edit mode, ARCHIVED never.
func CheckEditable(status WeekStatus, editMode bool) error {
	switch status {
	case WeekStatusDraft:
		return nil
	case WeekStatusPublished:
		if editMode {
			return nil
		}
		return NewConflictError("week menu is published; enable edit mode to change it")
	case WeekStatusArchived:
		return NewConflictError("week menu is archived and read-only")
	}
	return NewConflictError("week menu has unknown status %q", status)
}

// PublishResult is a published week plus advisory warnings. Warnings never
// block publication.
type PublishResult struct {
	Week          *WeekMenu
	EmptyOpenDays []time.Time
}

// Warnings renders EmptyOpenDays as human-readable messages.
func (r *PublishResult) Warnings() []string {
	out := make([]string, 0, len(r.EmptyOpenDays))
	for _, d := range r.EmptyOpenDays {
		out = append(out, fmt.Sprintf("%s (%s) is open but has no items", d.Format(time.DateOnly), d.Weekday()))
	}
	return out
}

// RemoveItemResult reports how many votes were deleted along with an item.
type RemoveItemResult struct {
	ItemID       uuid.UUID
	RemovedVotes int
}

// WeekFilter narrows a week listing. A nil Year and empty Statuses mean all.
type WeekFilter struct {
	Year     *int
	Statuses []WeekStatus
}

// ItemUpdate is a partial menu item update. Nil fields are left untouched.
type ItemUpdate struct {
	Price     *int
	Category  *ItemCategory
	Status    *ItemStatus
	SortOrder *int
	UpdatedAt time.Time
}

// IsEmpty reports whether the update changes nothing.
func (u ItemUpdate) IsEmpty() bool {
	return u.Price == nil && u.Category == nil && u.Status == nil && u.SortOrder == nil
}
