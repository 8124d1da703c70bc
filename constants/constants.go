package constants

// User roles
const (
	RoleAdmin = "admin"
	RoleOwner = "owner"
	RoleUser  = "user"
)

// Error messages
const (
	ErrUserNotFound       = "User not found"
	ErrStoreNotFound      = "Store not found"
	ErrInvalidCredentials = "Invalid email or password"
	ErrEmailTaken         = "Email already exists"
	ErrOldPassword        = "Old password is incorrect"
	ErrInvalidRating      = "Invalid rating value"
	ErrUnexpected         = "Unexpected error"
	ErrInvalidID          = "Invalid id"
	ErrInvalidInput       = "Invalid input"
)

// Default admin credentials, used when ADMIN_EMAIL / ADMIN_PASSWORD are not
// set. Equal to the legacy deployment's pair so existing clients keep working.
const (
	DefaultAdminEmail    = "admin@store.com"
	DefaultAdminPassword = "Admin@123"
	DefaultAdminName     = "Admin"
)
