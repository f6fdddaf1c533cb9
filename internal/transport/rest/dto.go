package rest

import (
	"time"

	"github.com/heartmarshall/canteen-backend/internal/domain"
)

type tenantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"createdAt"`
}

func toTenantResponse(t *domain.Tenant) tenantResponse {
	return tenantResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		Slug:      t.Slug,
		Timezone:  t.Timezone,
		CreatedAt: t.CreatedAt,
	}
}

type dishResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	ImageRef    *string   `json:"imageRef"`
	Allergens   []string  `json:"allergens"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toDishResponse(d *domain.Dish) dishResponse {
	return dishResponse{
		ID:          d.ID.String(),
		Title:       d.Title,
		Description: d.Description,
		ImageRef:    d.ImageRef,
		Allergens:   nonNil(d.Allergens),
		Tags:        nonNil(d.Tags),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type weekRefResponse struct {
	ID      string `json:"id"`
	Year    int    `json:"year"`
	ISOWeek int    `json:"isoWeek"`
	Status  string `json:"status"`
}

type dishUsageResponse struct {
	DishID       string            `json:"dishId"`
	InActiveMenu bool              `json:"inActiveMenu"`
	ItemCount    int               `json:"itemCount"`
	ActiveWeeks  []weekRefResponse `json:"activeWeeks"`
}

func toDishUsageResponse(u *domain.DishUsage) dishUsageResponse {
	out := dishUsageResponse{
		DishID:       u.DishID.String(),
		InActiveMenu: u.InActiveMenu(),
		ItemCount:    u.ItemCount,
		ActiveWeeks:  make([]weekRefResponse, 0, len(u.ActiveWeeks)),
	}
	for _, w := range u.ActiveWeeks {
		out.ActiveWeeks = append(out.ActiveWeeks, weekRefResponse{
			ID: w.WeekMenuID.String(), Year: w.Year, ISOWeek: w.ISOWeek, Status: w.Status.String(),
		})
	}
	return out
}

type statsResponse struct {
	MenuItemID string `json:"menuItemId"`
	Up         int    `json:"up"`
	Mid        int    `json:"mid"`
	Down       int    `json:"down"`
	Total      int    `json:"total"`
}

func toStatsResponse(s domain.VoteStats) statsResponse {
	return statsResponse{
		MenuItemID: s.MenuItemID.String(),
		Up:         s.Up,
		Mid:        s.Mid,
		Down:       s.Down,
		Total:      s.Total,
	}
}

type itemResponse struct {
	ID        string         `json:"id"`
	MenuDayID string         `json:"menuDayId"`
	DishID    string         `json:"dishId"`
	Dish      *dishResponse  `json:"dish,omitempty"`
	Price     int            `json:"price"`
	Category  string         `json:"category"`
	Status    string         `json:"status"`
	SortOrder int            `json:"sortOrder"`
	Stats     *statsResponse `json:"stats,omitempty"`
	MyVote    *int           `json:"myVote"`
}

func toItemResponse(it *domain.MenuItem) itemResponse {
	out := itemResponse{
		ID:        it.ID.String(),
		MenuDayID: it.MenuDayID.String(),
		DishID:    it.DishID.String(),
		Price:     it.Price,
		Category:  it.Category.String(),
		Status:    it.Status.String(),
		SortOrder: it.SortOrder,
	}
	if it.Dish != nil {
		d := toDishResponse(it.Dish)
		out.Dish = &d
	}
	return out
}

type dayResponse struct {
	ID         string         `json:"id"`
	WeekMenuID string         `json:"weekMenuId"`
	Date       string         `json:"date"`
	Weekday    string         `json:"weekday"`
	IsOpen     bool           `json:"isOpen"`
	Notes      *string        `json:"notes"`
	Items      []itemResponse `json:"items,omitempty"`
}

func toDayResponse(d *domain.MenuDay) dayResponse {
	out := dayResponse{
		ID:         d.ID.String(),
		WeekMenuID: d.WeekMenuID.String(),
		Date:       d.Date.Format(time.DateOnly),
		Weekday:    d.Date.Weekday().String(),
		IsOpen:     d.IsOpen,
		Notes:      d.Notes,
	}
	if d.Items != nil {
		out.Items = make([]itemResponse, 0, len(d.Items))
		for i := range d.Items {
			out.Items = append(out.Items, toItemResponse(&d.Items[i]))
		}
	}
	return out
}

type weekResponse struct {
	ID          string        `json:"id"`
	Year        int           `json:"year"`
	ISOWeek     int           `json:"isoWeek"`
	Status      string        `json:"status"`
	PublishedAt *time.Time    `json:"publishedAt"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	Days        []dayResponse `json:"days,omitempty"`
	Warnings    []string      `json:"warnings,omitempty"`
}

func toWeekResponse(w *domain.WeekMenu) weekResponse {
	out := weekResponse{
		ID:          w.ID.String(),
		Year:        w.Year,
		ISOWeek:     w.ISOWeek,
		Status:      w.Status.String(),
		PublishedAt: w.PublishedAt,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
	for i := range w.Days {
		out.Days = append(out.Days, toDayResponse(&w.Days[i]))
	}
	return out
}

type auditResponse struct {
	ID         string         `json:"id"`
	UserID     string         `json:"userId"`
	EntityType string         `json:"entityType"`
	EntityID   *string        `json:"entityId"`
	Action     string         `json:"action"`
	Changes    map[string]any `json:"changes"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func toAuditResponse(a *domain.AuditRecord) auditResponse {
	out := auditResponse{
		ID:         a.ID.String(),
		UserID:     a.UserID.String(),
		EntityType: a.EntityType.String(),
		Action:     a.Action.String(),
		Changes:    a.Changes,
		CreatedAt:  a.CreatedAt,
	}
	if a.EntityID != nil {
		s := a.EntityID.String()
		out.EntityID = &s
	}
	return out
}

type voteResponse struct {
	ID         string        `json:"id"`
	MenuItemID string        `json:"menuItemId"`
	Value      int           `json:"value"`
	UpdatedAt  time.Time     `json:"updatedAt"`
	Stats      statsResponse `json:"stats"`
}

func toVoteResponse(res *domain.CastResult) voteResponse {
	return voteResponse{
		ID:         res.Vote.ID.String(),
		MenuItemID: res.Vote.MenuItemID.String(),
		Value:      res.Vote.Value,
		UpdatedAt:  res.Vote.UpdatedAt,
		Stats:      toStatsResponse(res.Stats),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
