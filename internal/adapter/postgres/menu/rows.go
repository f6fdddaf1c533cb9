package menu

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
)

var weekColumns = []string{
	"id", "tenant_id", "year", "iso_week", "status", "published_at", "created_at", "updated_at",
}

var dayColumns = []string{"id", "week_menu_id", "date", "is_open", "notes"}

var itemColumns = []string{
	"id", "menu_day_id", "dish_id", "price", "category", "status", "sort_order", "created_at", "updated_at",
}

const (
	weekReturning = "RETURNING id, tenant_id, year, iso_week, status, published_at, created_at, updated_at"
	dayReturning  = "RETURNING id, week_menu_id, date, is_open, notes"
	itemReturning = "RETURNING id, menu_day_id, dish_id, price, category, status, sort_order, created_at, updated_at"
)

type weekRow struct {
	ID          uuid.UUID  `db:"id"`
	TenantID    uuid.UUID  `db:"tenant_id"`
	Year        int        `db:"year"`
	ISOWeek     int        `db:"iso_week"`
	Status      string     `db:"status"`
	PublishedAt *time.Time `db:"published_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r weekRow) toDomain() domain.WeekMenu {
	return domain.WeekMenu{
		ID:          r.ID,
		TenantID:    r.TenantID,
		Year:        r.Year,
		ISOWeek:     r.ISOWeek,
		Status:      domain.WeekStatus(r.Status),
		PublishedAt: r.PublishedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type dayRow struct {
	ID         uuid.UUID `db:"id"`
	WeekMenuID uuid.UUID `db:"week_menu_id"`
	Date       time.Time `db:"date"`
	IsOpen     bool      `db:"is_open"`
	Notes      *string   `db:"notes"`
}

func (r dayRow) toDomain() domain.MenuDay {
	return domain.MenuDay{
		ID:         r.ID,
		WeekMenuID: r.WeekMenuID,
		Date:       r.Date,
		IsOpen:     r.IsOpen,
		Notes:      r.Notes,
	}
}

type itemRow struct {
	ID        uuid.UUID `db:"id"`
	MenuDayID uuid.UUID `db:"menu_day_id"`
	DishID    uuid.UUID `db:"dish_id"`
	Price     int       `db:"price"`
	Category  string    `db:"category"`
	Status    string    `db:"status"`
	SortOrder int       `db:"sort_order"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r itemRow) toDomain() domain.MenuItem {
	return domain.MenuItem{
		ID:        r.ID,
		MenuDayID: r.MenuDayID,
		DishID:    r.DishID,
		Price:     r.Price,
		Category:  domain.ItemCategory(r.Category),
		Status:    domain.ItemStatus(r.Status),
		SortOrder: r.SortOrder,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// dayContextRow is a day joined with its week.
type dayContextRow struct {
	MenuDayID  uuid.UUID `db:"menu_day_id"`
	WeekMenuID uuid.UUID `db:"week_menu_id"`
	TenantID   uuid.UUID `db:"tenant_id"`
	Date       time.Time `db:"date"`
	IsOpen     bool      `db:"is_open"`
	WeekStatus string    `db:"week_status"`
}

func (r dayContextRow) toDomain() domain.DayContext {
	return domain.DayContext{
		MenuDayID:  r.MenuDayID,
		WeekMenuID: r.WeekMenuID,
		TenantID:   r.TenantID,
		Date:       r.Date,
		IsOpen:     r.IsOpen,
		WeekStatus: domain.WeekStatus(r.WeekStatus),
	}
}

type itemContextRow struct {
	itemRow
	WeekMenuID uuid.UUID `db:"week_menu_id"`
	TenantID   uuid.UUID `db:"tenant_id"`
	Date       time.Time `db:"date"`
	IsOpen     bool      `db:"is_open"`
	WeekStatus string    `db:"week_status"`
}

func (r itemContextRow) toDomain() domain.ItemContext {
	return domain.ItemContext{
		Item: r.itemRow.toDomain(),
		Day: domain.DayContext{
			MenuDayID:  r.MenuDayID,
			WeekMenuID: r.WeekMenuID,
			TenantID:   r.TenantID,
			Date:       r.Date,
			IsOpen:     r.IsOpen,
			WeekStatus: domain.WeekStatus(r.WeekStatus),
		},
	}
}

type weekRefRow struct {
	WeekMenuID uuid.UUID `db:"week_menu_id"`
	Year       int       `db:"year"`
	ISOWeek    int       `db:"iso_week"`
	Status     string    `db:"status"`
	Items      int       `db:"items"`
}

func (r weekRefRow) toDomain() domain.WeekRef {
	return domain.WeekRef{
		WeekMenuID: r.WeekMenuID,
		Year:       r.Year,
		ISOWeek:    r.ISOWeek,
		Status:     domain.WeekStatus(r.Status),
	}
}
