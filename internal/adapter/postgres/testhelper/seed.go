package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/canteen-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedTenant creates a tenant in the given time zone ("" means UTC).
func SeedTenant(t *testing.T, pool *pgxpool.Pool, timezone string) domain.Tenant {
	t.Helper()

	if timezone == "" {
		timezone = "UTC"
	}
	suffix := uniqueSuffix()
	tenant := domain.Tenant{
		ID:        uuid.New(),
		Name:      "School " + suffix,
		Slug:      "school-" + suffix,
		Timezone:  timezone,
		CreatedAt: now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tenants (id, name, slug, timezone, created_at) VALUES ($1, $2, $3, $4, $5)`,
		tenant.ID, tenant.Name, tenant.Slug, tenant.Timezone, tenant.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTenant: %v", err)
	}
	return tenant
}

// SeedUser creates a user with the given role in the tenant.
func SeedUser(t *testing.T, pool *pgxpool.Pool, tenantID uuid.UUID, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	ts := now()
	user := domain.User{
		ID:        uuid.New(),
		TenantID:  &tenantID,
		Email:     "user-" + suffix + "@example.com",
		Name:      "User " + suffix,
		Role:      role,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, tenant_id, email, name, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, tenantID, user.Email, user.Name, string(role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedDish creates a dish with a unique title in the tenant.
func SeedDish(t *testing.T, pool *pgxpool.Pool, tenantID uuid.UUID) domain.Dish {
	t.Helper()

	ts := now()
	dish := domain.Dish{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Title:     "Dish " + uniqueSuffix(),
		Allergens: []string{"gluten"},
		Tags:      []string{"hot"},
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO dishes (id, tenant_id, title, allergens, tags, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		dish.ID, dish.TenantID, dish.Title, dish.Allergens, dish.Tags, dish.CreatedAt, dish.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDish: %v", err)
	}
	return dish
}

// SeedWeek creates a week menu in the given status with its five days.
// Days are returned in date order on the WeekMenu.
func SeedWeek(t *testing.T, pool *pgxpool.Pool, tenantID uuid.UUID, year, isoWeek int, status domain.WeekStatus) domain.WeekMenu {
	t.Helper()
	ctx := context.Background()

	ts := now()
	week := domain.WeekMenu{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Year:      year,
		ISOWeek:   isoWeek,
		Status:    status,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if status != domain.WeekStatusDraft {
		week.PublishedAt = &ts
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO week_menus (id, tenant_id, year, iso_week, status, published_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		week.ID, week.TenantID, week.Year, week.ISOWeek, string(week.Status), week.PublishedAt, week.CreatedAt, week.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWeek insert week: %v", err)
	}

	for _, d := range domain.SchoolDates(year, isoWeek) {
		day := domain.MenuDay{ID: uuid.New(), WeekMenuID: week.ID, Date: d, IsOpen: true}
		if _, err := pool.Exec(ctx,
			`INSERT INTO menu_days (id, week_menu_id, date, is_open) VALUES ($1, $2, $3, $4)`,
			day.ID, day.WeekMenuID, day.Date, day.IsOpen,
		); err != nil {
			t.Fatalf("testhelper: SeedWeek insert day: %v", err)
		}
		week.Days = append(week.Days, day)
	}
	return week
}

// SeedItem puts a dish on a day with the next sort position.
func SeedItem(t *testing.T, pool *pgxpool.Pool, dayID, dishID uuid.UUID, price int) domain.MenuItem {
	t.Helper()

	ts := now()
	item := domain.MenuItem{
		ID:        uuid.New(),
		MenuDayID: dayID,
		DishID:    dishID,
		Price:     price,
		Category:  domain.ItemCategoryMain,
		Status:    domain.ItemStatusActive,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO menu_items (id, menu_day_id, dish_id, price, category, status, sort_order, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6,
		         (SELECT coalesce(max(sort_order), 0) + 1 FROM menu_items WHERE menu_day_id = $2), $7, $8)
		 RETURNING sort_order`,
		item.ID, item.MenuDayID, item.DishID, item.Price, string(item.Category), string(item.Status), item.CreatedAt, item.UpdatedAt,
	).Scan(&item.SortOrder)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}
	return item
}

// SeedVote records a vote by a fresh user and returns that user's ID.
func SeedVote(t *testing.T, pool *pgxpool.Pool, itemID uuid.UUID, value int) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO votes (menu_item_id, user_id, value) VALUES ($1, $2, $3)`,
		itemID, userID, value,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVote: %v", err)
	}
	return userID
}
