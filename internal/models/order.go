package models

import "time"

// OrderStatus is a step of the order lifecycle.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderAccepted  OrderStatus = "accepted"
	OrderOnTheMove OrderStatus = "onthemove"
	OrderCompleted OrderStatus = "completed"
)

var orderStatusRank = map[OrderStatus]int{
	OrderPending:   0,
	OrderAccepted:  1,
	OrderOnTheMove: 2,
	OrderCompleted: 3,
}

// Valid reports whether s is a known lifecycle status.
func (s OrderStatus) Valid() bool {
	_, ok := orderStatusRank[s]
	return ok
}

// Before reports whether s comes earlier in the lifecycle than other.
func (s OrderStatus) Before(other OrderStatus) bool {
	return orderStatusRank[s] < orderStatusRank[other]
}

// Order is a placed purchase. Lines are a price snapshot taken at order time.
type Order struct {
	BaseModel
	UserID    uint        `gorm:"index;not null" json:"userId"`
	User      *User       `json:"-"`
	Total     float64     `gorm:"type:numeric(12,2);not null" json:"total"`
	Status    OrderStatus `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
	PaymentID string      `json:"paymentId"`
	Lines     []OrderLine `gorm:"foreignKey:OrderID" json:"contents,omitempty"`
}

// OrderLine is one purchased item inside an order.
type OrderLine struct {
	BaseModel
	OrderID  uint    `gorm:"index;not null" json:"orderId"`
	ItemID   uint    `json:"itemId"`
	ItemName string  `json:"itemName"`
	Cost     float64 `gorm:"type:numeric(12,2)" json:"cost"`
	Quantity int     `json:"quantity"`
}

// TableName keeps the historical table name for order lines.
func (OrderLine) TableName() string {
	return "contents"
}

// OrderDetails is an order with its lines and a reduced owner view.
type OrderDetails struct {
	ID        uint        `json:"id"`
	UserID    uint        `json:"userId"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	PaymentID string      `json:"paymentId"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Contents  []OrderLine `json:"contents"`
	User      *OwnerInfo  `json:"user,omitempty"`
}

// OwnerInfo extends OrderOwner with the account creation time for admin listings.
type OwnerInfo struct {
	OrderOwner
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Details builds the nested view of an order. withJoinedAt adds the
// owner's account creation time.
func (o *Order) Details(withJoinedAt bool) OrderDetails {
	d := OrderDetails{
		ID:        o.ID,
		UserID:    o.UserID,
		Total:     o.Total,
		Status:    o.Status,
		PaymentID: o.PaymentID,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
		Contents:  o.Lines,
	}
	if d.Contents == nil {
		d.Contents = []OrderLine{}
	}
	if o.User != nil {
		owner := &OwnerInfo{OrderOwner: OrderOwner{
			ID:          o.User.ID,
			FirstName:   o.User.FirstName,
			LastName:    o.User.LastName,
			PhoneNumber: o.User.PhoneNumber,
			Address:     o.User.Address,
		}}
		if withJoinedAt {
			joined := o.User.CreatedAt
			owner.CreatedAt = &joined
		}
		d.User = owner
	}
	return d
}
