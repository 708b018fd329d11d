package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/guniorg/mannabean-delivery-v3/internal/domain"
	"github.com/guniorg/mannabean-delivery-v3/internal/service"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// EnsureSchema bootstraps the tables and the order number sequence. Every
// statement is idempotent so restarts are safe.
func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			display_name TEXT NOT NULL,
			is_visible BOOLEAN NOT NULL DEFAULT TRUE,
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			price INTEGER NOT NULL CHECK (price >= 0),
			image TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT 'main',
			available BOOLEAN NOT NULL DEFAULT TRUE,
			is_visible BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			order_number TEXT NOT NULL UNIQUE,
			order_type TEXT NOT NULL,
			customer_name TEXT NOT NULL DEFAULT '',
			customer_phone TEXT NOT NULL DEFAULT '',
			delivery_location TEXT NOT NULL DEFAULT '',
			detail_address TEXT NOT NULL DEFAULT '',
			custom_address TEXT NOT NULL DEFAULT '',
			payment_method TEXT NOT NULL,
			subtotal INTEGER NOT NULL,
			delivery_fee INTEGER NOT NULL DEFAULT 0,
			tax INTEGER NOT NULL DEFAULT 0,
			total INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			estimated_delivery_time INTEGER NOT NULL DEFAULT 0,
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id),
			menu_item_id INTEGER NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity >= 1),
			price INTEGER NOT NULL,
			menu_item_name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS popups (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT FALSE,
			start_date TIMESTAMPTZ,
			end_date TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE SEQUENCE IF NOT EXISTS order_number_seq START 1`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Menu items

func (r *PostgresRepository) ListMenuItems() ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, price, image, category, available, is_visible
		FROM menu_items
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Image, &item.Category, &item.Available, &item.IsVisible); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRow(`
		SELECT id, name, price, image, category, available, is_visible
		FROM menu_items
		WHERE id = $1`, id).
		Scan(&item.ID, &item.Name, &item.Price, &item.Image, &item.Category, &item.Available, &item.IsVisible)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (name, price, image, category, available, is_visible)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		item.Name, item.Price, item.Image, item.Category, item.Available, item.IsVisible).
		Scan(&item.ID)
}

func (r *PostgresRepository) UpdateMenuItem(id int, patch domain.MenuItemPatch) (*domain.MenuItem, error) {
	sets, args := patchClauses(map[string]interface{}{
		"name":       strPtrArg(patch.Name),
		"price":      intPtrArg(patch.Price),
		"image":      strPtrArg(patch.Image),
		"category":   strPtrArg(patch.Category),
		"available":  boolPtrArg(patch.Available),
		"is_visible": boolPtrArg(patch.IsVisible),
	})
	if len(sets) == 0 {
		return r.GetMenuItem(id)
	}

	args = append(args, id)
	var item domain.MenuItem
	err := r.DB.QueryRow(fmt.Sprintf(`
		UPDATE menu_items SET %s
		WHERE id = $%d
		RETURNING id, name, price, image, category, available, is_visible`,
		strings.Join(sets, ", "), len(args)), args...).
		Scan(&item.ID, &item.Name, &item.Price, &item.Image, &item.Category, &item.Available, &item.IsVisible)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Categories

func (r *PostgresRepository) ListCategories() ([]domain.Category, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, display_name, is_visible, sort_order, created_at
		FROM categories
		ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.DisplayName, &category.IsVisible, &category.SortOrder, &category.CreatedAt); err != nil {
			continue
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetCategory(id int) (*domain.Category, error) {
	var category domain.Category
	err := r.DB.QueryRow(`
		SELECT id, name, display_name, is_visible, sort_order, created_at
		FROM categories
		WHERE id = $1`, id).
		Scan(&category.ID, &category.Name, &category.DisplayName, &category.IsVisible, &category.SortOrder, &category.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *PostgresRepository) CreateCategory(category *domain.Category) error {
	err := r.DB.QueryRow(`
		INSERT INTO categories (name, display_name, is_visible, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		category.Name, category.DisplayName, category.IsVisible, category.SortOrder).
		Scan(&category.ID, &category.CreatedAt)
	if isUniqueViolation(err) {
		return service.ErrDuplicateCategory
	}
	return err
}

func (r *PostgresRepository) UpdateCategory(id int, patch domain.CategoryPatch) (*domain.Category, error) {
	sets, args := patchClauses(map[string]interface{}{
		"name":         strPtrArg(patch.Name),
		"display_name": strPtrArg(patch.DisplayName),
		"is_visible":   boolPtrArg(patch.IsVisible),
		"sort_order":   intPtrArg(patch.SortOrder),
	})
	if len(sets) == 0 {
		return r.GetCategory(id)
	}

	args = append(args, id)
	var category domain.Category
	err := r.DB.QueryRow(fmt.Sprintf(`
		UPDATE categories SET %s
		WHERE id = $%d
		RETURNING id, name, display_name, is_visible, sort_order, created_at`,
		strings.Join(sets, ", "), len(args)), args...).
		Scan(&category.ID, &category.Name, &category.DisplayName, &category.IsVisible, &category.SortOrder, &category.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if isUniqueViolation(err) {
		return nil, service.ErrDuplicateCategory
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *PostgresRepository) DeleteCategory(id int) (bool, error) {
	result, err := r.DB.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

// Orders

// CreateOrder allocates the order number from a database sequence inside the
// insert transaction, so concurrent submissions can never share a number and
// the order plus all its items commit or roll back together.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order, items []domain.OrderItem) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT nextval('order_number_seq')`).Scan(&seq); err != nil {
		return err
	}
	order.OrderNumber = fmt.Sprintf("MB-%03d", seq)

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (order_number, order_type, customer_name, customer_phone,
			delivery_location, detail_address, custom_address, payment_method,
			subtotal, delivery_fee, tax, total, status, estimated_delivery_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at`,
		order.OrderNumber, order.OrderType, order.CustomerName, order.CustomerPhone,
		order.DeliveryLocation, order.DetailAddress, order.CustomAddress, order.PaymentMethod,
		order.Subtotal, order.DeliveryFee, order.Tax, order.Total, order.Status, order.EstimatedDeliveryTime).
		Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	for i := range items {
		items[i].OrderID = order.ID
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, quantity, price, menu_item_name)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			items[i].OrderID, items[i].MenuItemID, items[i].Quantity, items[i].Price, items[i].MenuItemName).
			Scan(&items[i].ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

const orderColumns = `id, order_number, order_type, customer_name, customer_phone,
	delivery_location, detail_address, custom_address, payment_method,
	subtotal, delivery_fee, tax, total, status, estimated_delivery_time, created_at`

func scanOrder(row interface{ Scan(...interface{}) error }, order *domain.Order) error {
	return row.Scan(&order.ID, &order.OrderNumber, &order.OrderType, &order.CustomerName,
		&order.CustomerPhone, &order.DeliveryLocation, &order.DetailAddress, &order.CustomAddress,
		&order.PaymentMethod, &order.Subtotal, &order.DeliveryFee, &order.Tax, &order.Total,
		&order.Status, &order.EstimatedDeliveryTime, &order.CreatedAt)
}

func (r *PostgresRepository) GetOrder(id int) (*domain.Order, error) {
	var order domain.Order
	err := scanOrder(r.DB.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id), &order)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) GetOrderByNumber(orderNumber string) (*domain.Order, error) {
	var order domain.Order
	err := scanOrder(r.DB.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, orderNumber), &order)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) GetOrderItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, order_id, menu_item_id, quantity, price, menu_item_name
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Quantity, &item.Price, &item.MenuItemName); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListOrders() ([]domain.Order, error) {
	rows, err := r.DB.Query(`SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := scanOrder(rows, &order); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateOrderStatus(id int, status domain.OrderStatus) (*domain.Order, error) {
	var order domain.Order
	err := scanOrder(r.DB.QueryRow(`
		UPDATE orders SET status = $1
		WHERE id = $2
		RETURNING `+orderColumns, status, id), &order)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec(`UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRow(`SELECT qr_code FROM orders WHERE id = $1`, orderID).Scan(&qr)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return qr, nil
}

// Popups

func (r *PostgresRepository) ListPopups() ([]domain.Popup, error) {
	rows, err := r.DB.Query(`
		SELECT id, title, description, image_url, is_active, start_date, end_date, created_at, updated_at
		FROM popups
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var popups []domain.Popup
	for rows.Next() {
		var popup domain.Popup
		if err := rows.Scan(&popup.ID, &popup.Title, &popup.Description, &popup.ImageURL, &popup.IsActive, &popup.StartDate, &popup.EndDate, &popup.CreatedAt, &popup.UpdatedAt); err != nil {
			continue
		}
		popups = append(popups, popup)
	}
	return popups, rows.Err()
}

func (r *PostgresRepository) GetPopup(id int) (*domain.Popup, error) {
	var popup domain.Popup
	err := r.DB.QueryRow(`
		SELECT id, title, description, image_url, is_active, start_date, end_date, created_at, updated_at
		FROM popups
		WHERE id = $1`, id).
		Scan(&popup.ID, &popup.Title, &popup.Description, &popup.ImageURL, &popup.IsActive, &popup.StartDate, &popup.EndDate, &popup.CreatedAt, &popup.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &popup, nil
}

func (r *PostgresRepository) CreatePopup(popup *domain.Popup) error {
	return r.DB.QueryRow(`
		INSERT INTO popups (title, description, image_url, is_active, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		popup.Title, popup.Description, popup.ImageURL, popup.IsActive, popup.StartDate, popup.EndDate).
		Scan(&popup.ID, &popup.CreatedAt, &popup.UpdatedAt)
}

func (r *PostgresRepository) UpdatePopup(id int, patch domain.PopupPatch) (*domain.Popup, error) {
	sets, args := patchClauses(map[string]interface{}{
		"title":       strPtrArg(patch.Title),
		"description": strPtrArg(patch.Description),
		"image_url":   strPtrArg(patch.ImageURL),
		"is_active":   boolPtrArg(patch.IsActive),
		"start_date":  timePtrArg(patch.StartDate),
		"end_date":    timePtrArg(patch.EndDate),
	})
	if len(sets) == 0 {
		return r.GetPopup(id)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	var popup domain.Popup
	err := r.DB.QueryRow(fmt.Sprintf(`
		UPDATE popups SET %s
		WHERE id = $%d
		RETURNING id, title, description, image_url, is_active, start_date, end_date, created_at, updated_at`,
		strings.Join(sets, ", "), len(args)), args...).
		Scan(&popup.ID, &popup.Title, &popup.Description, &popup.ImageURL, &popup.IsActive, &popup.StartDate, &popup.EndDate, &popup.CreatedAt, &popup.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &popup, nil
}

func (r *PostgresRepository) DeletePopup(id int) (bool, error) {
	result, err := r.DB.Exec(`DELETE FROM popups WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

// helpers

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}

// patchClauses turns the non-nil patch fields into ordered SET clauses. Map
// iteration order is not stable, so clauses are sorted by column name to keep
// generated SQL deterministic for tests.
func patchClauses(fields map[string]interface{}) ([]string, []interface{}) {
	columns := make([]string, 0, len(fields))
	for column, value := range fields {
		if value != nil {
			columns = append(columns, column)
		}
	}
	sort.Strings(columns)

	sets := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for i, column := range columns {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, i+1))
		args = append(args, fields[column])
	}
	return sets, args
}

func strPtrArg(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func intPtrArg(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func boolPtrArg(v *bool) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func timePtrArg(v *time.Time) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

var (
	_ service.MenuRepository     = (*PostgresRepository)(nil)
	_ service.CategoryRepository = (*PostgresRepository)(nil)
	_ service.OrderRepository    = (*PostgresRepository)(nil)
	_ service.PopupRepository    = (*PostgresRepository)(nil)
)
