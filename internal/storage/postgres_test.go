package storage

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guniorg/mannabean-delivery-v3/internal/domain"
	"github.com/guniorg/mannabean-delivery-v3/internal/service"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestPostgresRepository_CreateOrder(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT nextval('order_number_seq')`)).
		WillReturnRows(sqlmock.NewRows([]string{"nextval"}).AddRow(int64(7)))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO orders`)).
		WithArgs("MB-007", "delivery", "", "010-1234-5678", "kalidas", "101-1001", "", "cash",
			140000, 0, 11200, 151200, "pending", 25).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO order_items`)).
		WithArgs(1, 3, 1, 140000, "곰탕").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectCommit()

	order := domain.Order{
		OrderType:             domain.OrderTypeDelivery,
		CustomerPhone:         "010-1234-5678",
		DeliveryLocation:      domain.LocationKalidas,
		DetailAddress:         "101-1001",
		PaymentMethod:         domain.PaymentCash,
		Subtotal:              140000,
		Tax:                   11200,
		Total:                 151200,
		Status:                domain.StatusPending,
		EstimatedDeliveryTime: 25,
	}
	items := []domain.OrderItem{
		{MenuItemID: 3, Quantity: 1, Price: 140000, MenuItemName: "곰탕"},
	}

	err := repo.CreateOrder(ctx, &order, items)
	require.NoError(t, err)
	assert.Equal(t, "MB-007", order.OrderNumber)
	assert.Equal(t, 1, order.ID)
	assert.Equal(t, 10, items[0].ID)
	assert.Equal(t, 1, items[0].OrderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateOrder_RollsBackOnItemFailure(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT nextval('order_number_seq')`)).
		WillReturnRows(sqlmock.NewRows([]string{"nextval"}).AddRow(int64(8)))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO orders`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(2, time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO order_items`)).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	order := domain.Order{OrderType: domain.OrderTypeTable, PaymentMethod: domain.PaymentCash, Status: domain.StatusPending}
	err := repo.CreateOrder(ctx, &order, []domain.OrderItem{{MenuItemID: 1, Quantity: 1}})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetMenuItem_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM menu_items`)).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "image", "category", "available", "is_visible"}))

	item, err := repo.GetMenuItem(99)
	assert.NoError(t, err)
	assert.Nil(t, item)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_UpdateMenuItem_SetsOnlyPatchedColumns(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE menu_items SET name = $1, price = $2 WHERE id = $3`)).
		WithArgs("갈비탕", 200000, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "image", "category", "available", "is_visible"}).
			AddRow(2, "갈비탕", 200000, "", "soup", true, true))

	name := "갈비탕"
	price := 200000
	updated, err := repo.UpdateMenuItem(2, domain.MenuItemPatch{Name: &name, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 200000, updated.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_UpdateOrderStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	columns := []string{"id", "order_number", "order_type", "customer_name", "customer_phone",
		"delivery_location", "detail_address", "custom_address", "payment_method",
		"subtotal", "delivery_fee", "tax", "total", "status", "estimated_delivery_time", "created_at"}

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE orders SET status = $1`)).
		WithArgs("confirmed", 1).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, "MB-001", "table", "", "010", "", "", "", "cash",
				140000, 0, 11200, 151200, "confirmed", 15, time.Now()))

	updated, err := repo.UpdateOrderStatus(1, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, updated.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateCategory_Duplicate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO categories`)).
		WithArgs("soup", "국물요리", false, 0).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.CreateCategory(&domain.Category{Name: "soup", DisplayName: "국물요리"})
	assert.ErrorIs(t, err, service.ErrDuplicateCategory)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetQRCode(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT qr_code FROM orders WHERE id = $1`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"qr_code"}).AddRow([]byte("png")))

	qr, err := repo.GetQRCode(1)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), qr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
