// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"

	// Validation
	KeyValidationFailed      = "validation.failed"
	KeyValidationInvalidBody = "validation.invalid_body"
	KeyValidationInvalidID   = "validation.invalid_id"
	KeyValidationRequired    = "validation.required"
	KeyValidationMax         = "validation.max"
	KeyValidationMin         = "validation.min"
	KeyValidationPositive    = "validation.positive"
	KeyValidationMinValue    = "validation.min_value"
	KeyValidationDate        = "validation.date"
	KeyValidationNumber      = "validation.number"
	KeyValidationInvalid     = "validation.invalid"

	// Field labels are looked up as KeyFieldPrefix + json field name.
	KeyFieldPrefix   = "field."
	KeyFieldCategory = "field.category"
	KeyFieldProduct  = "field.product"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAuthCheckSuccess       = "auth.check_success"
	KeyAccessDenied           = "auth.access_denied"
	KeyRateLimited            = "auth.rate_limited"
	KeyAuthErrorLogin         = "auth.error.login"
	KeyAuthErrorLogout        = "auth.error.logout"

	// Users
	KeyUserLoginTaken  = "user.login_taken"
	KeyUserInvalidRole = "user.invalid_role"

	// Products
	KeyProductNotFound     = "product.not_found"
	KeyProductCreated      = "product.created"
	KeyProductUpdated      = "product.updated"
	KeyProductDeleted      = "product.deleted"
	KeyProductStockUpdated = "product.stock_updated"
	KeyProductErrorList    = "product.error.list"
	KeyProductErrorGet     = "product.error.get"
	KeyProductErrorCreate  = "product.error.create"
	KeyProductErrorUpdate  = "product.error.update"
	KeyProductErrorDelete  = "product.error.delete"
	KeyProductErrorStock   = "product.error.stock"
	KeyProductErrorHistory = "product.error.history"

	// Categories
	KeyCategoryNotFound    = "category.not_found"
	KeyCategoryNameTaken   = "category.name_taken"
	KeyCategoryHasProducts = "category.has_products"
	KeyCategoryCreated     = "category.created"
	KeyCategoryUpdated     = "category.updated"
	KeyCategoryDeleted     = "category.deleted"
	KeyCategoryErrorList   = "category.error.list"
	KeyCategoryErrorGet    = "category.error.get"
	KeyCategoryErrorCreate = "category.error.create"
	KeyCategoryErrorUpdate = "category.error.update"
	KeyCategoryErrorDelete = "category.error.delete"
)
