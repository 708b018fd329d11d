package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/guniorg/mannabean-delivery-v3/internal/domain"
	"github.com/guniorg/mannabean-delivery-v3/internal/mocks"
	"github.com/guniorg/mannabean-delivery-v3/internal/service"
)

func gomtang() *domain.MenuItem {
	return &domain.MenuItem{ID: 1, Name: "곰탕", Price: 140000, Category: "soup", Available: true, IsVisible: true}
}

func galbitang() *domain.MenuItem {
	return &domain.MenuItem{ID: 2, Name: "갈비탕", Price: 198000, Category: "soup", Available: true, IsVisible: true}
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	draft := domain.OrderDraft{
		OrderType:        domain.OrderTypeDelivery,
		CustomerPhone:    "010-1234-5678",
		DeliveryLocation: domain.LocationOther,
		DetailAddress:    "101-1001",
		PaymentMethod:    domain.PaymentCash,
	}

	t.Run("success_prices_and_snapshots", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		menu := mocks.NewMenuRepository(t)
		publisher := mocks.NewEventPublisher(t)
		qr := mocks.NewQRGenerator(t)
		svc := service.NewOrderService(orders, menu, publisher, qr)

		menu.On("GetMenuItem", 1).Return(gomtang(), nil).Once()
		menu.On("GetMenuItem", 2).Return(galbitang(), nil).Once()
		orders.On("CreateOrder", ctx, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				order := args.Get(1).(*domain.Order)
				order.ID = 7
				order.OrderNumber = "MB-007"
				order.CreatedAt = time.Now()
			}).Return(nil).Once()
		qr.On("Generate", "MB-007").Return([]byte("png"), nil).Once()
		orders.On("SaveQRCode", 7, []byte("png")).Return(nil).Once()
		publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

		created, err := svc.Create(ctx, draft, []domain.OrderItemDraft{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 2, Quantity: 1},
		})

		assert.NoError(t, err)
		assert.Equal(t, "MB-007", created.OrderNumber)
		assert.Equal(t, domain.StatusPending, created.Status)
		assert.Equal(t, 478000, created.Subtotal)
		assert.Equal(t, 30000, created.DeliveryFee)
		assert.Equal(t, 40640, created.Tax)
		assert.Equal(t, 548640, created.Total)
		assert.Equal(t, 45, created.EstimatedDeliveryTime)
		assert.Len(t, created.Items, 2)
		assert.Equal(t, "곰탕", created.Items[0].MenuItemName)
		assert.Equal(t, 140000, created.Items[0].OrderItem.Price)
	})

	t.Run("table_order_drops_delivery_fields", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		menu := mocks.NewMenuRepository(t)
		svc := service.NewOrderService(orders, menu, nil, nil)

		menu.On("GetMenuItem", 1).Return(gomtang(), nil).Once()
		orders.On("CreateOrder", ctx, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				order := args.Get(1).(*domain.Order)
				assert.Empty(t, order.DeliveryLocation)
				assert.Empty(t, order.DetailAddress)
				order.ID = 1
				order.OrderNumber = "MB-001"
			}).Return(nil).Once()

		tableDraft := domain.OrderDraft{
			OrderType:        domain.OrderTypeTable,
			CustomerPhone:    "010-1234-5678",
			DeliveryLocation: domain.LocationOther,
			DetailAddress:    "should be ignored",
			PaymentMethod:    domain.PaymentTransfer,
		}
		created, err := svc.Create(ctx, tableDraft, []domain.OrderItemDraft{{MenuItemID: 1, Quantity: 1}})

		assert.NoError(t, err)
		assert.Equal(t, 0, created.DeliveryFee)
		assert.Equal(t, 15, created.EstimatedDeliveryTime)
	})

	t.Run("validation_failures", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		menu := mocks.NewMenuRepository(t)
		svc := service.NewOrderService(orders, menu, nil, nil)

		tests := []struct {
			name         string
			draft        domain.OrderDraft
			items        []domain.OrderItemDraft
			prepareMocks func()
			wantField    string
		}{
			{
				name:         "empty_items",
				draft:        draft,
				items:        nil,
				prepareMocks: func() {},
				wantField:    "items",
			},
			{
				name:         "zero_quantity",
				draft:        draft,
				items:        []domain.OrderItemDraft{{MenuItemID: 1, Quantity: 0}},
				prepareMocks: func() {},
				wantField:    "items[0].quantity",
			},
			{
				name:         "bad_order_type",
				draft:        domain.OrderDraft{OrderType: "pickup", CustomerPhone: "010", PaymentMethod: domain.PaymentCash},
				items:        []domain.OrderItemDraft{{MenuItemID: 1, Quantity: 1}},
				prepareMocks: func() {},
				wantField:    "orderType",
			},
			{
				name:         "missing_phone",
				draft:        domain.OrderDraft{OrderType: domain.OrderTypeTable, PaymentMethod: domain.PaymentCash},
				items:        []domain.OrderItemDraft{{MenuItemID: 1, Quantity: 1}},
				prepareMocks: func() {},
				wantField:    "customerPhone",
			},
			{
				name:  "unknown_menu_item",
				draft: draft,
				items: []domain.OrderItemDraft{{MenuItemID: 99, Quantity: 1}},
				prepareMocks: func() {
					menu.On("GetMenuItem", 99).Return(nil, nil).Once()
				},
				wantField: "items[0].menuItemId",
			},
			{
				name:  "unavailable_menu_item",
				draft: draft,
				items: []domain.OrderItemDraft{{MenuItemID: 1, Quantity: 1}},
				prepareMocks: func() {
					soldOut := gomtang()
					soldOut.Available = false
					menu.On("GetMenuItem", 1).Return(soldOut, nil).Once()
				},
				wantField: "items[0].menuItemId",
			},
		}

		for _, testCase := range tests {
			t.Run(testCase.name, func(t *testing.T) {
				testCase.prepareMocks()
				_, err := svc.Create(ctx, testCase.draft, testCase.items)
				var validation service.ValidationError
				assert.ErrorAs(t, err, &validation)
				assert.Equal(t, testCase.wantField, validation.Field)
			})
		}
	})

	t.Run("store_failure_surfaces_as_is", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		menu := mocks.NewMenuRepository(t)
		svc := service.NewOrderService(orders, menu, nil, nil)

		storeErr := errors.New("pq: connection refused")
		menu.On("GetMenuItem", 1).Return(nil, storeErr).Once()

		_, err := svc.Create(ctx, draft, []domain.OrderItemDraft{{MenuItemID: 1, Quantity: 1}})

		assert.ErrorIs(t, err, storeErr)
		var validation service.ValidationError
		assert.False(t, errors.As(err, &validation))
	})

	t.Run("publish_failure_does_not_fail_order", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		menu := mocks.NewMenuRepository(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewOrderService(orders, menu, publisher, nil)

		menu.On("GetMenuItem", 1).Return(gomtang(), nil).Once()
		orders.On("CreateOrder", ctx, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Order).ID = 1
			}).Return(nil).Once()
		publisher.On("Publish", ctx, mock.Anything).Return(assert.AnError).Once()

		created, err := svc.Create(ctx, draft, []domain.OrderItemDraft{{MenuItemID: 1, Quantity: 1}})
		assert.NoError(t, err)
		assert.NotNil(t, created)
	})
}

func TestOrderService_Preview(t *testing.T) {
	draft := domain.OrderDraft{
		OrderType:        domain.OrderTypeDelivery,
		CustomerPhone:    "010-1234-5678",
		DeliveryLocation: domain.LocationKalidas,
		PaymentMethod:    domain.PaymentCash,
	}

	t.Run("quotes_without_persisting", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		menu := mocks.NewMenuRepository(t)
		svc := service.NewOrderService(orders, menu, nil, nil)

		menu.On("GetMenuItem", 1).Return(gomtang(), nil).Once()

		quote, err := svc.Preview(draft, []domain.OrderItemDraft{{MenuItemID: 1, Quantity: 1}})

		assert.NoError(t, err)
		assert.Equal(t, &domain.OrderQuote{
			Subtotal:              140000,
			DeliveryFee:           0,
			Tax:                   11200,
			Total:                 151200,
			EstimatedDeliveryTime: 25,
		}, quote)
	})

	t.Run("rejects_unavailable_items_like_create", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		menu := mocks.NewMenuRepository(t)
		svc := service.NewOrderService(orders, menu, nil, nil)

		soldOut := gomtang()
		soldOut.Available = false
		menu.On("GetMenuItem", 1).Return(soldOut, nil).Once()

		_, err := svc.Preview(draft, []domain.OrderItemDraft{{MenuItemID: 1, Quantity: 1}})

		var validation service.ValidationError
		assert.ErrorAs(t, err, &validation)
		assert.Equal(t, "items[0].menuItemId", validation.Field)
	})

	t.Run("repository_failure_is_not_a_validation_error", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		menu := mocks.NewMenuRepository(t)
		svc := service.NewOrderService(orders, menu, nil, nil)

		menu.On("GetMenuItem", 1).Return(nil, errors.New("connection refused")).Once()

		_, err := svc.Preview(draft, []domain.OrderItemDraft{{MenuItemID: 1, Quantity: 1}})

		assert.Error(t, err)
		var validation service.ValidationError
		assert.False(t, errors.As(err, &validation))
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	pendingOrder := func() *domain.Order {
		return &domain.Order{ID: 1, OrderNumber: "MB-001", Status: domain.StatusPending, Total: 151200}
	}

	t.Run("valid_transition_publishes", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewOrderService(orders, mocks.NewMenuRepository(t), publisher, nil)

		confirmed := pendingOrder()
		confirmed.Status = domain.StatusConfirmed
		orders.On("GetOrder", 1).Return(pendingOrder(), nil).Once()
		orders.On("UpdateOrderStatus", 1, domain.StatusConfirmed).Return(confirmed, nil).Once()
		publisher.On("Publish", ctx, mock.MatchedBy(func(event domain.OrderEvent) bool {
			return event.Type == domain.EventStatusChanged && event.Status == domain.StatusConfirmed
		})).Return(nil).Once()

		updated, err := svc.UpdateStatus(ctx, 1, domain.StatusConfirmed)
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, updated.Status)
	})

	t.Run("invalid_transition", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(orders, mocks.NewMenuRepository(t), nil, nil)

		orders.On("GetOrder", 1).Return(pendingOrder(), nil).Once()

		_, err := svc.UpdateStatus(ctx, 1, domain.StatusReady)
		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})

	t.Run("terminal_status_is_frozen", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(orders, mocks.NewMenuRepository(t), nil, nil)

		done := pendingOrder()
		done.Status = domain.StatusCompleted
		orders.On("GetOrder", 1).Return(done, nil).Once()

		_, err := svc.UpdateStatus(ctx, 1, domain.StatusCancelled)
		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})

	t.Run("unknown_status", func(t *testing.T) {
		svc := service.NewOrderService(mocks.NewOrderRepository(t), mocks.NewMenuRepository(t), nil, nil)

		_, err := svc.UpdateStatus(ctx, 1, "shipped")
		var validation service.ValidationError
		assert.ErrorAs(t, err, &validation)
	})

	t.Run("order_not_found", func(t *testing.T) {
		orders := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(orders, mocks.NewMenuRepository(t), nil, nil)

		orders.On("GetOrder", 42).Return(nil, nil).Once()

		_, err := svc.UpdateStatus(ctx, 42, domain.StatusConfirmed)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestOrderService_Get_RebuildsRemovedMenuItems(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	menu := mocks.NewMenuRepository(t)
	svc := service.NewOrderService(orders, menu, nil, nil)

	orders.On("GetOrder", 1).Return(&domain.Order{ID: 1, OrderNumber: "MB-001"}, nil).Once()
	orders.On("GetOrderItems", 1).Return([]domain.OrderItem{
		{ID: 10, OrderID: 1, MenuItemID: 5, Quantity: 2, Price: 95000, MenuItemName: "잡채"},
	}, nil).Once()
	menu.On("GetMenuItem", 5).Return(nil, nil).Once()

	order, err := svc.Get(1)
	assert.NoError(t, err)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, "잡채", order.Items[0].MenuItem.Name)
	assert.Equal(t, 95000, order.Items[0].MenuItem.Price)
	assert.False(t, order.Items[0].MenuItem.Available)
}

func TestMenuService_ListVisible(t *testing.T) {
	ctx := context.Background()

	visible := []domain.MenuItem{*gomtang()}

	t.Run("cache_hit_skips_repository", func(t *testing.T) {
		repo := mocks.NewMenuRepository(t)
		cache := mocks.NewMenuCache(t)
		svc := service.NewMenuService(repo, cache)

		cache.On("GetMenu", ctx).Return(visible, true).Once()

		items, err := svc.ListVisible(ctx)
		assert.NoError(t, err)
		assert.Equal(t, visible, items)
	})

	t.Run("cache_miss_filters_and_fills", func(t *testing.T) {
		repo := mocks.NewMenuRepository(t)
		cache := mocks.NewMenuCache(t)
		svc := service.NewMenuService(repo, cache)

		hidden := *galbitang()
		hidden.IsVisible = false
		soldOut := *galbitang()
		soldOut.ID = 3
		soldOut.Available = false

		cache.On("GetMenu", ctx).Return(nil, false).Once()
		repo.On("ListMenuItems").Return([]domain.MenuItem{*gomtang(), hidden, soldOut}, nil).Once()
		cache.On("SetMenu", ctx, visible).Return(nil).Once()

		items, err := svc.ListVisible(ctx)
		assert.NoError(t, err)
		assert.Equal(t, visible, items)
	})

	t.Run("nil_cache_goes_straight_to_repository", func(t *testing.T) {
		repo := mocks.NewMenuRepository(t)
		svc := service.NewMenuService(repo, nil)

		repo.On("ListMenuItems").Return(visible, nil).Once()

		items, err := svc.ListVisible(ctx)
		assert.NoError(t, err)
		assert.Equal(t, visible, items)
	})
}

func TestCategoryService_Create(t *testing.T) {
	repo := mocks.NewCategoryRepository(t)
	svc := service.NewCategoryService(repo)

	t.Run("duplicate_name", func(t *testing.T) {
		repo.On("CreateCategory", mock.Anything).Return(service.ErrDuplicateCategory).Once()

		err := svc.Create(&domain.Category{Name: "soup", DisplayName: "국물요리"})
		assert.ErrorIs(t, err, service.ErrDuplicateCategory)
	})

	t.Run("missing_name", func(t *testing.T) {
		err := svc.Create(&domain.Category{DisplayName: "국물요리"})
		var validation service.ValidationError
		assert.ErrorAs(t, err, &validation)
	})
}

func TestPopupService_Active(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name   string
		popups []domain.Popup
		want   *int
	}{
		{
			name: "inside_window",
			popups: []domain.Popup{
				{ID: 1, Title: "open event", IsActive: true, StartDate: &past, EndDate: &future},
			},
			want: intPtr(1),
		},
		{
			name: "inactive_flag_wins",
			popups: []domain.Popup{
				{ID: 1, Title: "off", IsActive: false, StartDate: &past, EndDate: &future},
			},
			want: nil,
		},
		{
			name: "expired_window",
			popups: []domain.Popup{
				{ID: 1, Title: "done", IsActive: true, EndDate: &past},
			},
			want: nil,
		},
		{
			name: "no_window_means_always_on",
			popups: []domain.Popup{
				{ID: 2, Title: "evergreen", IsActive: true},
			},
			want: intPtr(2),
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewPopupRepository(t)
			svc := service.NewPopupService(repo)
			repo.On("ListPopups").Return(testCase.popups, nil).Once()

			popup, err := svc.Active()
			assert.NoError(t, err)
			if testCase.want == nil {
				assert.Nil(t, popup)
			} else {
				assert.NotNil(t, popup)
				assert.Equal(t, *testCase.want, popup.ID)
			}
		})
	}
}

func intPtr(v int) *int { return &v }
