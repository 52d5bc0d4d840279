package models

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a registered account, stored under the durable key "users".
// PasswordHash is a bcrypt hash and is never serialized in responses.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Role         string `json:"role"`
	PasswordHash string `json:"passwordHash,omitempty"`
}

// UserAggregate is the per-customer roll-up derived from the order
// collection. It is computed on demand and never stored.
type UserAggregate struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	City        string    `json:"city"`
	JoinedDate  time.Time `json:"joinedDate"`
	TotalOrders int       `json:"totalOrders"`
	TotalSpent  float64   `json:"totalSpent"`
	UserID      string    `json:"userId"`
}

// DashboardStats is the headline block of the admin dashboard.
type DashboardStats struct {
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalUsers    int     `json:"totalUsers"`
	PendingOrders int     `json:"pendingOrders"`
	TotalDishes   int     `json:"totalDishes"`
}

// RegisterRequest represents the request body for creating an account.
// Example: {"name": "Priya Sharma", "email": "priya@example.com", "phone": "9876543210", "password": "Secret12"}
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token plus the profile the storefront
// keeps in its session.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
