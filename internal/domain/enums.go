package domain

// WeekStatus is the publication state of a WeekMenu.
type WeekStatus string

const (
	WeekStatusDraft     WeekStatus = "DRAFT"
	WeekStatusPublished WeekStatus = "PUBLISHED"
	WeekStatusArchived  WeekStatus = "ARCHIVED"
)

func (s WeekStatus) String() string { return string(s) }

func (s WeekStatus) IsValid() bool {
	switch s {
	case WeekStatusDraft, WeekStatusPublished, WeekStatusArchived:
		return true
	}
	return false
}

// IsActive reports whether a week in this status still counts as a live menu
// (used for the dish-deletion warning).
func (s WeekStatus) IsActive() bool {
	return s == WeekStatusDraft || s == WeekStatusPublished
}

// ItemCategory groups menu items for display.
type ItemCategory string

const (
	ItemCategoryMain    ItemCategory = "MAIN"
	ItemCategoryVeg     ItemCategory = "VEG"
	ItemCategorySoup    ItemCategory = "SOUP"
	ItemCategoryDessert ItemCategory = "DESSERT"
	ItemCategoryOther   ItemCategory = "OTHER"
)

func (c ItemCategory) String() string { return string(c) }

func (c ItemCategory) IsValid() bool {
	switch c {
	case ItemCategoryMain, ItemCategoryVeg, ItemCategorySoup, ItemCategoryDessert, ItemCategoryOther:
		return true
	}
	return false
}

// ItemStatus is the serving state of a menu item.
type ItemStatus string

const (
	ItemStatusActive  ItemStatus = "ACTIVE"
	ItemStatusChanged ItemStatus = "CHANGED"
	ItemStatusSoldOut ItemStatus = "SOLD_OUT"
)

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusActive, ItemStatusChanged, ItemStatusSoldOut:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeWeekMenu EntityType = "WEEK_MENU"
	EntityTypeMenuDay  EntityType = "MENU_DAY"
	EntityTypeMenuItem EntityType = "MENU_ITEM"
	EntityTypeDish     EntityType = "DISH"
	EntityTypeTenant   EntityType = "TENANT"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeWeekMenu, EntityTypeMenuDay, EntityTypeMenuItem, EntityTypeDish, EntityTypeTenant:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate  AuditAction = "CREATE"
	AuditActionUpdate  AuditAction = "UPDATE"
	AuditActionDelete  AuditAction = "DELETE"
	AuditActionPublish AuditAction = "PUBLISH"
	AuditActionArchive AuditAction = "ARCHIVE"
	AuditActionRestore AuditAction = "RESTORE"
	AuditActionCopy    AuditAction = "COPY"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete,
		AuditActionPublish, AuditActionArchive, AuditActionRestore, AuditActionCopy:
		return true
	}
	return false
}

// UserRole represents the authorization level of a principal.
type UserRole string

const (
	UserRoleStudent      UserRole = "student"
	UserRoleCanteenAdmin UserRole = "canteen_admin"
	UserRoleSchoolAdmin  UserRole = "school_admin"
	UserRoleSuperAdmin   UserRole = "super_admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleStudent, UserRoleCanteenAdmin, UserRoleSchoolAdmin, UserRoleSuperAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role may manage menus and the dish catalog.
func (r UserRole) IsAdmin() bool {
	return r == UserRoleCanteenAdmin || r == UserRoleSchoolAdmin || r == UserRoleSuperAdmin
}

// IsSuperAdmin reports whether the role spans all tenants.
func (r UserRole) IsSuperAdmin() bool {
	return r == UserRoleSuperAdmin
}
