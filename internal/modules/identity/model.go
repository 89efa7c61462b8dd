package identity

// Role is the account type stored on a user row. It decides which operations
// the user may perform.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

// User is an account in the retail system. Coordinates live on the same grid
// as store coordinates, both axes in [0,100].
type User struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	PasswordHash string  `json:"-"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Role         Role    `json:"role"`
}
