package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "github.com/guniorg/mannabean-delivery-v3/internal/api/http"
	"github.com/guniorg/mannabean-delivery-v3/internal/domain"
	"github.com/guniorg/mannabean-delivery-v3/internal/mocks"
	"github.com/guniorg/mannabean-delivery-v3/internal/service"
)

type handlerMocks struct {
	menu       *mocks.MenuServiceInterface
	categories *mocks.CategoryServiceInterface
	orders     *mocks.OrderServiceInterface
	popups     *mocks.PopupServiceInterface
}

func setupTestRouter(t *testing.T) (*mux.Router, handlerMocks) {
	m := handlerMocks{
		menu:       mocks.NewMenuServiceInterface(t),
		categories: mocks.NewCategoryServiceInterface(t),
		orders:     mocks.NewOrderServiceInterface(t),
		popups:     mocks.NewPopupServiceInterface(t),
	}
	handler := httpapi.NewHandler(m.menu, m.categories, m.orders, m.popups, t.TempDir())
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r, m
}

func TestHandler_listMenu(t *testing.T) {
	router, m := setupTestRouter(t)

	visible := []domain.MenuItem{
		{ID: 1, Name: "곰탕", Price: 140000, Available: true, IsVisible: true},
	}
	m.menu.On("ListVisible", mock.Anything).Return(visible, nil).Once()

	req := httptest.NewRequest("GET", "/menu", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var items []domain.MenuItem
	json.NewDecoder(recorder.Body).Decode(&items)
	assert.Len(t, items, 1)
	assert.Equal(t, 140000, items[0].Price)
}

func TestHandler_listMenu_adminView(t *testing.T) {
	router, m := setupTestRouter(t)

	m.menu.On("ListAll").Return([]domain.MenuItem{{ID: 1}, {ID: 2, IsVisible: false}}, nil).Once()

	req := httptest.NewRequest("GET", "/menu?all=1", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var items []domain.MenuItem
	json.NewDecoder(recorder.Body).Decode(&items)
	assert.Len(t, items, 2)
}

func TestHandler_createOrder(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		prepareMocks func(m handlerMocks)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			payload: `{"order":{"orderType":"delivery","customerPhone":"010-1234-5678","deliveryLocation":"kalidas","paymentMethod":"cash"},` +
				`"items":[{"menuItemId":1,"quantity":2}]}`,
			prepareMocks: func(m handlerMocks) {
				m.orders.On("Create", mock.Anything, mock.Anything, mock.Anything).
					Return(&domain.OrderWithItems{
						Order: domain.Order{ID: 1, OrderNumber: "MB-001", Status: domain.StatusPending, Total: 302400},
					}, nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"orderNumber":"MB-001"`,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func(m handlerMocks) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "store_error_is_a_500_not_a_400",
			payload: `{"order":{"orderType":"table","customerPhone":"010","paymentMethod":"cash"},"items":[{"menuItemId":1,"quantity":1}]}`,
			prepareMocks: func(m handlerMocks) {
				m.orders.On("Create", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, assert.AnError).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:    "validation_error_carries_field",
			payload: `{"order":{"orderType":"delivery"},"items":[]}`,
			prepareMocks: func(m handlerMocks) {
				m.orders.On("Create", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, service.ValidationError{Field: "items", Message: "order must contain at least one item"}).Once()
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `"field":"items"`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			testCase.prepareMocks(m)

			req := httptest.NewRequest("POST", "/orders", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_previewOrder(t *testing.T) {
	router, m := setupTestRouter(t)

	m.orders.On("Preview", mock.Anything, mock.Anything).
		Return(&domain.OrderQuote{Subtotal: 140000, Tax: 11200, Total: 151200, EstimatedDeliveryTime: 25}, nil).Once()

	payload := `{"order":{"orderType":"delivery","customerPhone":"010","deliveryLocation":"kalidas","paymentMethod":"cash"},"items":[{"menuItemId":1,"quantity":1}]}`
	req := httptest.NewRequest("POST", "/orders/preview", bytes.NewBufferString(payload))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"total":151200`)
}

func TestHandler_updateOrderStatus(t *testing.T) {
	tests := []struct {
		name         string
		prepareMocks func(m handlerMocks)
		expectedCode int
	}{
		{
			name: "success",
			prepareMocks: func(m handlerMocks) {
				m.orders.On("UpdateStatus", mock.Anything, 1, domain.StatusConfirmed).
					Return(&domain.Order{ID: 1, Status: domain.StatusConfirmed}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "invalid_transition_conflicts",
			prepareMocks: func(m handlerMocks) {
				m.orders.On("UpdateStatus", mock.Anything, 1, domain.StatusConfirmed).
					Return(nil, fmt.Errorf("%w: completed -> confirmed", service.ErrInvalidTransition)).Once()
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "missing_order",
			prepareMocks: func(m handlerMocks) {
				m.orders.On("UpdateStatus", mock.Anything, 1, domain.StatusConfirmed).
					Return(nil, service.ErrNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			testCase.prepareMocks(m)

			req := httptest.NewRequest("PATCH", "/orders/1/status", bytes.NewBufferString(`{"status":"confirmed"}`))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_getOrderByNumber(t *testing.T) {
	router, m := setupTestRouter(t)

	m.orders.On("GetByNumber", "MB-001").
		Return(&domain.OrderWithItems{Order: domain.Order{ID: 1, OrderNumber: "MB-001"}}, nil).Once()

	req := httptest.NewRequest("GET", "/orders/number/MB-001", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"orderNumber":"MB-001"`)
}

func TestHandler_getOrderQRCode(t *testing.T) {
	router, m := setupTestRouter(t)

	m.orders.On("QRCode", 1).Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()

	req := httptest.NewRequest("GET", "/orders/1/qrcode", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
}

func TestHandler_createCategory_duplicateConflicts(t *testing.T) {
	router, m := setupTestRouter(t)

	m.categories.On("Create", mock.Anything).Return(service.ErrDuplicateCategory).Once()

	req := httptest.NewRequest("POST", "/categories", bytes.NewBufferString(`{"name":"soup","displayName":"국물요리"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestHandler_deleteCategory(t *testing.T) {
	router, m := setupTestRouter(t)

	m.categories.On("Delete", 3).Return(nil).Once()

	req := httptest.NewRequest("DELETE", "/categories/3", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestHandler_getActivePopup(t *testing.T) {
	t.Run("active", func(t *testing.T) {
		router, m := setupTestRouter(t)
		m.popups.On("Active").Return(&domain.Popup{ID: 1, Title: "open event", IsActive: true}, nil).Once()

		req := httptest.NewRequest("GET", "/popups/active", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"title":"open event"`)
	})

	t.Run("none_active_returns_null", func(t *testing.T) {
		router, m := setupTestRouter(t)
		m.popups.On("Active").Return(nil, nil).Once()

		req := httptest.NewRequest("GET", "/popups/active", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "null\n", recorder.Body.String())
	})
}

func TestHandler_updateMenuItem(t *testing.T) {
	router, m := setupTestRouter(t)

	newPrice := 150000
	m.menu.On("Update", mock.Anything, 1, mock.MatchedBy(func(patch domain.MenuItemPatch) bool {
		return patch.Price != nil && *patch.Price == newPrice && patch.Name == nil
	})).Return(&domain.MenuItem{ID: 1, Name: "곰탕", Price: newPrice}, nil).Once()

	req := httptest.NewRequest("PATCH", "/menu/1", bytes.NewBufferString(`{"price":150000}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"price":150000`)
}

func TestHandler_healthCheck(t *testing.T) {
	router, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"status":"healthy"`)
}
