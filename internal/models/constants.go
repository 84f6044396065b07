package models

const (
	RoleAdmin    = "admin"
	RoleSupplier = "supplier"
	RoleBuyer    = "buyer"

	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
)
