package domain

import "time"

type OrderType string

const (
	OrderTypeDelivery OrderType = "delivery"
	OrderTypeTable    OrderType = "table"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

type DeliveryLocation string

const (
	LocationKalidas    DeliveryLocation = "kalidas"
	LocationKyeongnamA DeliveryLocation = "kyeongnamA"
	LocationKyeongnamB DeliveryLocation = "kyeongnamB"
	LocationOther      DeliveryLocation = "other"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
)

// MenuItem prices are stored in the smallest currency unit (VND), so all
// monetary fields across the system are plain integers.
type MenuItem struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Image     string `json:"image"`
	Category  string `json:"category"`
	Available bool   `json:"available"`
	IsVisible bool   `json:"isVisible"`
}

type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"displayName"`
	IsVisible   bool      `json:"isVisible"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Order struct {
	ID                    int              `json:"id"`
	OrderNumber           string           `json:"orderNumber"`
	OrderType             OrderType        `json:"orderType"`
	CustomerName          string           `json:"customerName,omitempty"`
	CustomerPhone         string           `json:"customerPhone"`
	DeliveryLocation      DeliveryLocation `json:"deliveryLocation,omitempty"`
	DetailAddress         string           `json:"detailAddress,omitempty"`
	CustomAddress         string           `json:"customAddress,omitempty"`
	PaymentMethod         PaymentMethod    `json:"paymentMethod"`
	Subtotal              int              `json:"subtotal"`
	DeliveryFee           int              `json:"deliveryFee"`
	Tax                   int              `json:"tax"`
	Total                 int              `json:"total"`
	Status                OrderStatus      `json:"status"`
	EstimatedDeliveryTime int              `json:"estimatedDeliveryTime"`
	CreatedAt             time.Time        `json:"createdAt"`
}

// OrderItem carries the price and name exactly as they were in the catalog
// when the order was placed. Later catalog edits never touch these rows.
type OrderItem struct {
	ID           int    `json:"id"`
	OrderID      int    `json:"orderId"`
	MenuItemID   int    `json:"menuItemId"`
	Quantity     int    `json:"quantity"`
	Price        int    `json:"price"`
	MenuItemName string `json:"menuItemName"`
}

// OrderItemView pairs a persisted line with a view of its menu item. When the
// catalog row no longer exists the view is rebuilt from the snapshot.
type OrderItemView struct {
	OrderItem
	MenuItem MenuItem `json:"menuItem"`
}

type OrderWithItems struct {
	Order
	Items []OrderItemView `json:"items"`
}

// OrderDraft is the client-submitted half of an order. Monetary fields are
// recomputed server-side; any client-supplied totals are display values only.
type OrderDraft struct {
	OrderType        OrderType        `json:"orderType"`
	CustomerName     string           `json:"customerName"`
	CustomerPhone    string           `json:"customerPhone"`
	DeliveryLocation DeliveryLocation `json:"deliveryLocation"`
	DetailAddress    string           `json:"detailAddress"`
	CustomAddress    string           `json:"customAddress"`
	PaymentMethod    PaymentMethod    `json:"paymentMethod"`
}

type OrderItemDraft struct {
	MenuItemID int `json:"menuItemId"`
	Quantity   int `json:"quantity"`
}

// OrderQuote is a non-persisted pricing of a draft, served to clients for
// cart display. It is produced by the same computation that prices orders
// on creation.
type OrderQuote struct {
	Subtotal              int `json:"subtotal"`
	DeliveryFee           int `json:"deliveryFee"`
	Tax                   int `json:"tax"`
	Total                 int `json:"total"`
	EstimatedDeliveryTime int `json:"estimatedDeliveryTime"`
}

type Popup struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	IsActive    bool       `json:"isActive"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// MenuItemPatch carries a partial admin update; nil fields are left untouched.
type MenuItemPatch struct {
	Name      *string `json:"name"`
	Price     *int    `json:"price"`
	Image     *string `json:"image"`
	Category  *string `json:"category"`
	Available *bool   `json:"available"`
	IsVisible *bool   `json:"isVisible"`
}

type CategoryPatch struct {
	Name        *string `json:"name"`
	DisplayName *string `json:"displayName"`
	IsVisible   *bool   `json:"isVisible"`
	SortOrder   *int    `json:"sortOrder"`
}

type PopupPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	ImageURL    *string    `json:"imageUrl"`
	IsActive    *bool      `json:"isActive"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}
