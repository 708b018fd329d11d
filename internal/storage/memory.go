package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/guniorg/mannabean-delivery-v3/internal/domain"
	"github.com/guniorg/mannabean-delivery-v3/internal/service"
)

// MemoryRepository is the non-database backend: everything lives in maps
// behind one RWMutex, with a JSON snapshot on disk so restarts keep menu,
// categories, orders and the order-number counter. Counters are owned by the
// struct, never package globals, so two repositories never share state.
type MemoryRepository struct {
	mu sync.RWMutex

	menuItems  map[int]domain.MenuItem
	categories map[int]domain.Category
	orders     map[int]domain.Order
	orderItems map[int]domain.OrderItem
	popups     map[int]domain.Popup
	qrCodes    map[int][]byte

	nextMenuID      int
	nextCategoryID  int
	nextOrderID     int
	nextOrderItemID int
	nextPopupID     int
	orderCounter    int

	dataDir string
}

type memorySnapshot struct {
	MenuItems    []domain.MenuItem  `json:"menuItems"`
	Categories   []domain.Category  `json:"categories"`
	Orders       []domain.Order     `json:"orders"`
	OrderItems   []domain.OrderItem `json:"orderItems"`
	Popups       []domain.Popup     `json:"popups"`
	OrderCounter int                `json:"orderCounter"`
}

// NewMemoryRepository loads the snapshot from dataDir if one exists,
// otherwise seeds the initial catalog. An empty dataDir disables snapshots.
func NewMemoryRepository(dataDir string) *MemoryRepository {
	r := &MemoryRepository{
		menuItems:       make(map[int]domain.MenuItem),
		categories:      make(map[int]domain.Category),
		orders:          make(map[int]domain.Order),
		orderItems:      make(map[int]domain.OrderItem),
		popups:          make(map[int]domain.Popup),
		qrCodes:         make(map[int][]byte),
		nextMenuID:      1,
		nextCategoryID:  1,
		nextOrderID:     1,
		nextOrderItemID: 1,
		nextPopupID:     1,
		orderCounter:    0,
		dataDir:         dataDir,
	}
	if !r.load() {
		r.seed()
		r.save()
	}
	return r
}

func (r *MemoryRepository) snapshotPath() string {
	return filepath.Join(r.dataDir, "store.json")
}

func (r *MemoryRepository) load() bool {
	if r.dataDir == "" {
		return false
	}
	data, err := os.ReadFile(r.snapshotPath())
	if err != nil {
		return false
	}
	var snap memorySnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("[store] snapshot unreadable, reseeding: %v", err)
		return false
	}

	for _, item := range snap.MenuItems {
		r.menuItems[item.ID] = item
		if item.ID >= r.nextMenuID {
			r.nextMenuID = item.ID + 1
		}
	}
	for _, category := range snap.Categories {
		r.categories[category.ID] = category
		if category.ID >= r.nextCategoryID {
			r.nextCategoryID = category.ID + 1
		}
	}
	for _, order := range snap.Orders {
		r.orders[order.ID] = order
		if order.ID >= r.nextOrderID {
			r.nextOrderID = order.ID + 1
		}
	}
	for _, item := range snap.OrderItems {
		r.orderItems[item.ID] = item
		if item.ID >= r.nextOrderItemID {
			r.nextOrderItemID = item.ID + 1
		}
	}
	for _, popup := range snap.Popups {
		r.popups[popup.ID] = popup
		if popup.ID >= r.nextPopupID {
			r.nextPopupID = popup.ID + 1
		}
	}
	r.orderCounter = snap.OrderCounter
	// A snapshot that parsed is authoritative even when empty; reseeding on
	// top of it would duplicate whatever it did contain.
	return true
}

// save writes the snapshot; callers must hold at least the read lock.
func (r *MemoryRepository) save() {
	if r.dataDir == "" {
		return
	}
	if err := os.MkdirAll(r.dataDir, 0o755); err != nil {
		log.Printf("[store] cannot create data dir: %v", err)
		return
	}

	snap := memorySnapshot{OrderCounter: r.orderCounter}
	for _, item := range r.menuItems {
		snap.MenuItems = append(snap.MenuItems, item)
	}
	for _, category := range r.categories {
		snap.Categories = append(snap.Categories, category)
	}
	for _, order := range r.orders {
		snap.Orders = append(snap.Orders, order)
	}
	for _, item := range r.orderItems {
		snap.OrderItems = append(snap.OrderItems, item)
	}
	for _, popup := range r.popups {
		snap.Popups = append(snap.Popups, popup)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		log.Printf("[store] snapshot marshal failed: %v", err)
		return
	}
	if err := os.WriteFile(r.snapshotPath(), data, 0o644); err != nil {
		log.Printf("[store] snapshot write failed: %v", err)
	}
}

// Menu items

func (r *MemoryRepository) ListMenuItems() ([]domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.MenuItem, 0, len(r.menuItems))
	for _, item := range r.menuItems {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *MemoryRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.menuItems[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (r *MemoryRepository) CreateMenuItem(item *domain.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextMenuID
	r.nextMenuID++
	r.menuItems[item.ID] = *item
	r.save()
	return nil
}

func (r *MemoryRepository) UpdateMenuItem(id int, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.menuItems[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.Image != nil {
		item.Image = *patch.Image
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Available != nil {
		item.Available = *patch.Available
	}
	if patch.IsVisible != nil {
		item.IsVisible = *patch.IsVisible
	}
	r.menuItems[id] = item
	r.save()
	return &item, nil
}

// Categories

func (r *MemoryRepository) ListCategories() ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]domain.Category, 0, len(r.categories))
	for _, category := range r.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].SortOrder != categories[j].SortOrder {
			return categories[i].SortOrder < categories[j].SortOrder
		}
		return categories[i].ID < categories[j].ID
	})
	return categories, nil
}

func (r *MemoryRepository) GetCategory(id int) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	return &category, nil
}

func (r *MemoryRepository) CreateCategory(category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.categories {
		if existing.Name == category.Name {
			return service.ErrDuplicateCategory
		}
	}
	category.ID = r.nextCategoryID
	r.nextCategoryID++
	category.CreatedAt = time.Now()
	r.categories[category.ID] = *category
	r.save()
	return nil
}

func (r *MemoryRepository) UpdateCategory(id int, patch domain.CategoryPatch) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		for _, existing := range r.categories {
			if existing.ID != id && existing.Name == *patch.Name {
				return nil, service.ErrDuplicateCategory
			}
		}
		category.Name = *patch.Name
	}
	if patch.DisplayName != nil {
		category.DisplayName = *patch.DisplayName
	}
	if patch.IsVisible != nil {
		category.IsVisible = *patch.IsVisible
	}
	if patch.SortOrder != nil {
		category.SortOrder = *patch.SortOrder
	}
	r.categories[id] = category
	r.save()
	return &category, nil
}

func (r *MemoryRepository) DeleteCategory(id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[id]; !ok {
		return false, nil
	}
	delete(r.categories, id)
	r.save()
	return true, nil
}

// Orders

// CreateOrder holds the write lock for the whole allocation+insert, which is
// the mutual exclusion the number counter needs: concurrent callers serialize
// here and each sees a distinct, increasing counter value.
func (r *MemoryRepository) CreateOrder(ctx context.Context, order *domain.Order, items []domain.OrderItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orderCounter++
	order.OrderNumber = fmt.Sprintf("MB-%03d", r.orderCounter)
	order.ID = r.nextOrderID
	r.nextOrderID++
	order.CreatedAt = time.Now()
	r.orders[order.ID] = *order

	for i := range items {
		items[i].ID = r.nextOrderItemID
		r.nextOrderItemID++
		items[i].OrderID = order.ID
		r.orderItems[items[i].ID] = items[i]
	}
	r.save()
	return nil
}

func (r *MemoryRepository) GetOrder(id int) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

func (r *MemoryRepository) GetOrderByNumber(orderNumber string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, order := range r.orders {
		if order.OrderNumber == orderNumber {
			match := order
			return &match, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) GetOrderItems(orderID int) ([]domain.OrderItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []domain.OrderItem
	for _, item := range r.orderItems {
		if item.OrderID == orderID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *MemoryRepository) ListOrders() ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		}
		return orders[i].ID > orders[j].ID
	})
	return orders, nil
}

func (r *MemoryRepository) UpdateOrderStatus(id int, status domain.OrderStatus) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	order.Status = status
	r.orders[id] = order
	r.save()
	return &order, nil
}

func (r *MemoryRepository) SaveQRCode(orderID int, qr []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[orderID]; !ok {
		return fmt.Errorf("order %d not found", orderID)
	}
	r.qrCodes[orderID] = qr
	return nil
}

func (r *MemoryRepository) GetQRCode(orderID int) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.qrCodes[orderID], nil
}

// Popups

func (r *MemoryRepository) ListPopups() ([]domain.Popup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	popups := make([]domain.Popup, 0, len(r.popups))
	for _, popup := range r.popups {
		popups = append(popups, popup)
	}
	sort.Slice(popups, func(i, j int) bool { return popups[i].ID < popups[j].ID })
	return popups, nil
}

func (r *MemoryRepository) GetPopup(id int) (*domain.Popup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	popup, ok := r.popups[id]
	if !ok {
		return nil, nil
	}
	return &popup, nil
}

func (r *MemoryRepository) CreatePopup(popup *domain.Popup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	popup.ID = r.nextPopupID
	r.nextPopupID++
	now := time.Now()
	popup.CreatedAt = now
	popup.UpdatedAt = now
	r.popups[popup.ID] = *popup
	r.save()
	return nil
}

func (r *MemoryRepository) UpdatePopup(id int, patch domain.PopupPatch) (*domain.Popup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	popup, ok := r.popups[id]
	if !ok {
		return nil, nil
	}
	if patch.Title != nil {
		popup.Title = *patch.Title
	}
	if patch.Description != nil {
		popup.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		popup.ImageURL = *patch.ImageURL
	}
	if patch.IsActive != nil {
		popup.IsActive = *patch.IsActive
	}
	if patch.StartDate != nil {
		popup.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		popup.EndDate = patch.EndDate
	}
	popup.UpdatedAt = time.Now()
	r.popups[id] = popup
	r.save()
	return &popup, nil
}

func (r *MemoryRepository) DeletePopup(id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.popups[id]; !ok {
		return false, nil
	}
	delete(r.popups, id)
	r.save()
	return true, nil
}

var (
	_ service.MenuRepository     = (*MemoryRepository)(nil)
	_ service.CategoryRepository = (*MemoryRepository)(nil)
	_ service.OrderRepository    = (*MemoryRepository)(nil)
	_ service.PopupRepository    = (*MemoryRepository)(nil)
)
