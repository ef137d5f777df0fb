package models

// Role is the access level attached to a user account.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

// User represents a registered account. PhoneNumber is the login identifier.
type User struct {
	BaseModel
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	PhoneNumber      string  `gorm:"uniqueIndex;not null" json:"phoneNumber"`
	Address          string  `json:"address"`
	PasswordHash     string  `gorm:"column:password;not null" json:"-"`
	OTP              string  `gorm:"column:otp" json:"-"`
	ActivationStatus bool    `gorm:"column:status;not null;default:false" json:"activationStatus"`
	Role             Role    `gorm:"type:varchar(16);not null;default:'customer'" json:"role"`
	Orders           []Order `json:"orders,omitempty"`
}

// UserView is the public projection of a User returned to clients.
type UserView struct {
	ID               uint   `json:"id,omitempty"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	PhoneNumber      string `json:"phoneNumber"`
	Address          string `json:"address"`
	ActivationStatus bool   `json:"activationStatus"`
	Role             Role   `json:"role"`
	OTP              string `json:"otp,omitempty"`
}

// View strips the identifier and every credential field.
func (u *User) View() UserView {
	return UserView{
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		PhoneNumber:      u.PhoneNumber,
		Address:          u.Address,
		ActivationStatus: u.ActivationStatus,
		Role:             u.Role,
	}
}

// OrderOwner is the reduced user projection embedded in order lookups.
type OrderOwner struct {
	ID          uint   `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}
