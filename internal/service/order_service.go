package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/guniorg/mannabean-delivery-v3/internal/domain"
	"github.com/guniorg/mannabean-delivery-v3/internal/pricing"
)

type OrderService struct {
	orders    OrderRepository
	menu      MenuRepository
	publisher EventPublisher
	qrEncoder QRGenerator
}

func NewOrderService(orders OrderRepository, menu MenuRepository, publisher EventPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		orders:    orders,
		menu:      menu,
		publisher: publisher,
		qrEncoder: qr,
	}
}

// Create turns a draft into a numbered, priced, pending order. The persisted
// monetary fields are always recomputed here from the catalog prices being
// snapshotted, so client-side figures can never leak into the record.
func (s *OrderService) Create(ctx context.Context, draft domain.OrderDraft, itemDrafts []domain.OrderItemDraft) (*domain.OrderWithItems, error) {
	if err := validateDraft(draft, itemDrafts); err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(itemDrafts))
	lines := make([]pricing.Line, 0, len(itemDrafts))
	menuByID := make(map[int]domain.MenuItem, len(itemDrafts))
	for i, itemDraft := range itemDrafts {
		menuItem, err := s.menu.GetMenuItem(itemDraft.MenuItemID)
		if err != nil {
			return nil, err
		}
		if menuItem == nil {
			return nil, validationErrorf(fmt.Sprintf("items[%d].menuItemId", i), "menu item %d not found", itemDraft.MenuItemID)
		}
		if !menuItem.Available {
			return nil, validationErrorf(fmt.Sprintf("items[%d].menuItemId", i), "menu item %q is not available", menuItem.Name)
		}
		menuByID[menuItem.ID] = *menuItem
		items = append(items, domain.OrderItem{
			MenuItemID:   menuItem.ID,
			Quantity:     itemDraft.Quantity,
			Price:        menuItem.Price,
			MenuItemName: menuItem.Name,
		})
		lines = append(lines, pricing.Line{Price: menuItem.Price, Quantity: itemDraft.Quantity})
	}

	totals := pricing.ComputeTotals(lines, draft.OrderType, draft.DeliveryLocation)

	order := domain.Order{
		OrderType:             draft.OrderType,
		CustomerName:          draft.CustomerName,
		CustomerPhone:         draft.CustomerPhone,
		PaymentMethod:         draft.PaymentMethod,
		Subtotal:              totals.Subtotal,
		DeliveryFee:           totals.DeliveryFee,
		Tax:                   totals.Tax,
		Total:                 totals.Total,
		Status:                domain.StatusPending,
		EstimatedDeliveryTime: pricing.EstimatedMinutes(draft.OrderType, draft.DeliveryLocation),
	}
	if draft.OrderType == domain.OrderTypeDelivery {
		order.DeliveryLocation = draft.DeliveryLocation
		order.DetailAddress = draft.DetailAddress
		order.CustomAddress = draft.CustomAddress
	}

	if err := s.orders.CreateOrder(ctx, &order, items); err != nil {
		return nil, err
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.OrderNumber); err == nil {
			if err := s.orders.SaveQRCode(order.ID, qr); err != nil {
				log.Printf("[orders] failed to store QR for %s: %v", order.OrderNumber, err)
			}
		} else {
			log.Printf("[orders] failed to generate QR for %s: %v", order.OrderNumber, err)
		}
	}

	s.publish(ctx, domain.OrderEvent{
		Type:        domain.EventOrderCreated,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		Total:       order.Total,
		Timestamp:   time.Now(),
	})

	views := make([]domain.OrderItemView, 0, len(items))
	for _, item := range items {
		views = append(views, domain.OrderItemView{OrderItem: item, MenuItem: menuByID[item.MenuItemID]})
	}
	return &domain.OrderWithItems{Order: order, Items: views}, nil
}

// Preview prices a draft against the current catalog without persisting
// anything. It runs the same validation and computation as Create, so the
// figures a client displays are the figures that will be stored.
func (s *OrderService) Preview(draft domain.OrderDraft, itemDrafts []domain.OrderItemDraft) (*domain.OrderQuote, error) {
	if err := validateDraft(draft, itemDrafts); err != nil {
		return nil, err
	}

	lines := make([]pricing.Line, 0, len(itemDrafts))
	for i, itemDraft := range itemDrafts {
		menuItem, err := s.menu.GetMenuItem(itemDraft.MenuItemID)
		if err != nil {
			return nil, err
		}
		if menuItem == nil {
			return nil, validationErrorf(fmt.Sprintf("items[%d].menuItemId", i), "menu item %d not found", itemDraft.MenuItemID)
		}
		if !menuItem.Available {
			return nil, validationErrorf(fmt.Sprintf("items[%d].menuItemId", i), "menu item %q is not available", menuItem.Name)
		}
		lines = append(lines, pricing.Line{Price: menuItem.Price, Quantity: itemDraft.Quantity})
	}

	totals := pricing.ComputeTotals(lines, draft.OrderType, draft.DeliveryLocation)
	return &domain.OrderQuote{
		Subtotal:              totals.Subtotal,
		DeliveryFee:           totals.DeliveryFee,
		Tax:                   totals.Tax,
		Total:                 totals.Total,
		EstimatedDeliveryTime: pricing.EstimatedMinutes(draft.OrderType, draft.DeliveryLocation),
	}, nil
}

func (s *OrderService) Get(id int) (*domain.OrderWithItems, error) {
	order, err := s.orders.GetOrder(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return s.withItems(order)
}

func (s *OrderService) GetByNumber(orderNumber string) (*domain.OrderWithItems, error) {
	order, err := s.orders.GetOrderByNumber(orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return s.withItems(order)
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.orders.ListOrders()
}

func (s *OrderService) UpdateStatus(ctx context.Context, id int, status domain.OrderStatus) (*domain.Order, error) {
	if !ValidStatus(status) {
		return nil, validationErrorf("status", "unknown status %q", status)
	}

	order, err := s.orders.GetOrder(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if !CanTransition(order.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	updated, err := s.orders.UpdateOrderStatus(id, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	s.publish(ctx, domain.OrderEvent{
		Type:        domain.EventStatusChanged,
		OrderID:     updated.ID,
		OrderNumber: updated.OrderNumber,
		Status:      updated.Status,
		Total:       updated.Total,
		Timestamp:   time.Now(),
	})
	return updated, nil
}

func (s *OrderService) QRCode(orderID int) ([]byte, error) {
	qr, err := s.orders.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		order, err := s.orders.GetOrder(orderID)
		if err != nil || order == nil {
			return nil, ErrNotFound
		}
		if regenerated, err := s.qrEncoder.Generate(order.OrderNumber); err == nil {
			if err := s.orders.SaveQRCode(orderID, regenerated); err != nil {
				log.Printf("[orders] failed to cache regenerated QR: %v", err)
			}
			return regenerated, nil
		}
	}
	if len(qr) == 0 {
		return nil, ErrNotFound
	}
	return qr, nil
}

// publish is best-effort: the order is already committed, a broker outage
// must never surface to the caller.
func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("[orders] event publish failed for %s: %v", event.OrderNumber, err)
	}
}

// withItems joins the persisted lines with live catalog rows where they still
// exist; removed items are reconstructed from the snapshot so historical
// orders always render.
func (s *OrderService) withItems(order *domain.Order) (*domain.OrderWithItems, error) {
	items, err := s.orders.GetOrderItems(order.ID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.OrderItemView, 0, len(items))
	for _, item := range items {
		view := domain.OrderItemView{OrderItem: item}
		if menuItem, err := s.menu.GetMenuItem(item.MenuItemID); err == nil && menuItem != nil {
			view.MenuItem = *menuItem
		} else {
			view.MenuItem = domain.MenuItem{
				ID:        item.MenuItemID,
				Name:      item.MenuItemName,
				Price:     item.Price,
				Category:  "unknown",
				Available: false,
			}
		}
		views = append(views, view)
	}
	return &domain.OrderWithItems{Order: *order, Items: views}, nil
}

func validateDraft(draft domain.OrderDraft, items []domain.OrderItemDraft) error {
	if len(items) == 0 {
		return validationErrorf("items", "order must contain at least one item")
	}
	for i, item := range items {
		if item.Quantity < 1 {
			return validationErrorf(fmt.Sprintf("items[%d].quantity", i), "quantity must be at least 1")
		}
	}
	switch draft.OrderType {
	case domain.OrderTypeDelivery, domain.OrderTypeTable:
	default:
		return validationErrorf("orderType", "must be %q or %q", domain.OrderTypeDelivery, domain.OrderTypeTable)
	}
	switch draft.PaymentMethod {
	case domain.PaymentCash, domain.PaymentTransfer:
	default:
		return validationErrorf("paymentMethod", "must be %q or %q", domain.PaymentCash, domain.PaymentTransfer)
	}
	if draft.CustomerPhone == "" {
		return validationErrorf("customerPhone", "phone number is required")
	}
	return nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
