package service

import (
	"context"

	"github.com/guniorg/mannabean-delivery-v3/internal/domain"
)

type MenuRepository interface {
	ListMenuItems() ([]domain.MenuItem, error)
	GetMenuItem(id int) (*domain.MenuItem, error)
	CreateMenuItem(item *domain.MenuItem) error
	UpdateMenuItem(id int, patch domain.MenuItemPatch) (*domain.MenuItem, error)
}

type CategoryRepository interface {
	ListCategories() ([]domain.Category, error)
	GetCategory(id int) (*domain.Category, error)
	CreateCategory(category *domain.Category) error
	UpdateCategory(id int, patch domain.CategoryPatch) (*domain.Category, error)
	DeleteCategory(id int) (bool, error)
}

type OrderRepository interface {
	// CreateOrder allocates the order number, persists the order and all of
	// its items atomically and fills in ids, number and created_at.
	CreateOrder(ctx context.Context, order *domain.Order, items []domain.OrderItem) error
	GetOrder(id int) (*domain.Order, error)
	GetOrderByNumber(orderNumber string) (*domain.Order, error)
	GetOrderItems(orderID int) ([]domain.OrderItem, error)
	ListOrders() ([]domain.Order, error)
	UpdateOrderStatus(id int, status domain.OrderStatus) (*domain.Order, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type PopupRepository interface {
	ListPopups() ([]domain.Popup, error)
	GetPopup(id int) (*domain.Popup, error)
	CreatePopup(popup *domain.Popup) error
	UpdatePopup(id int, patch domain.PopupPatch) (*domain.Popup, error)
	DeletePopup(id int) (bool, error)
}

// MenuCache fronts the visible-menu listing; all methods are best-effort.
type MenuCache interface {
	GetMenu(ctx context.Context) ([]domain.MenuItem, bool)
	SetMenu(ctx context.Context, items []domain.MenuItem) error
	Invalidate(ctx context.Context) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(orderNumber string) ([]byte, error)
}

type MenuServiceInterface interface {
	ListVisible(ctx context.Context) ([]domain.MenuItem, error)
	ListAll() ([]domain.MenuItem, error)
	Get(id int) (*domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) error
	Update(ctx context.Context, id int, patch domain.MenuItemPatch) (*domain.MenuItem, error)
}

type CategoryServiceInterface interface {
	List() ([]domain.Category, error)
	Create(category *domain.Category) error
	Update(id int, patch domain.CategoryPatch) (*domain.Category, error)
	Delete(id int) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, draft domain.OrderDraft, items []domain.OrderItemDraft) (*domain.OrderWithItems, error)
	Preview(draft domain.OrderDraft, items []domain.OrderItemDraft) (*domain.OrderQuote, error)
	Get(id int) (*domain.OrderWithItems, error)
	GetByNumber(orderNumber string) (*domain.OrderWithItems, error)
	List() ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) (*domain.Order, error)
	QRCode(orderID int) ([]byte, error)
}

type PopupServiceInterface interface {
	List() ([]domain.Popup, error)
	Active() (*domain.Popup, error)
	Get(id int) (*domain.Popup, error)
	Create(popup *domain.Popup) error
	Update(id int, patch domain.PopupPatch) (*domain.Popup, error)
	Delete(id int) error
}
