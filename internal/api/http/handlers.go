package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/guniorg/mannabean-delivery-v3/internal/domain"
	"github.com/guniorg/mannabean-delivery-v3/internal/service"
)

type Handler struct {
	Menu       service.MenuServiceInterface
	Categories service.CategoryServiceInterface
	Orders     service.OrderServiceInterface
	Popups     service.PopupServiceInterface
	UploadDir  string
}

func NewHandler(menu service.MenuServiceInterface, categories service.CategoryServiceInterface, orders service.OrderServiceInterface, popups service.PopupServiceInterface, uploadDir string) *Handler {
	return &Handler{
		Menu:       menu,
		Categories: categories,
		Orders:     orders,
		Popups:     popups,
		UploadDir:  uploadDir,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/menu", h.listMenu).Methods("GET")
	r.HandleFunc("/menu", h.createMenuItem).Methods("POST")
	r.HandleFunc("/menu/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/menu/{id}", h.updateMenuItem).Methods("PATCH")
	r.HandleFunc("/menu/{id}/image", h.uploadMenuImage).Methods("POST")

	r.HandleFunc("/categories", h.listCategories).Methods("GET")
	r.HandleFunc("/categories", h.createCategory).Methods("POST")
	r.HandleFunc("/categories/{id}", h.updateCategory).Methods("PATCH")
	r.HandleFunc("/categories/{id}", h.deleteCategory).Methods("DELETE")

	r.HandleFunc("/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/orders/preview", h.previewOrder).Methods("POST")
	r.HandleFunc("/orders/number/{orderNumber}", h.getOrderByNumber).Methods("GET")
	r.HandleFunc("/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/orders/{id}/status", h.updateOrderStatus).Methods("PATCH")
	r.HandleFunc("/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/popups", h.listPopups).Methods("GET")
	r.HandleFunc("/popups", h.createPopup).Methods("POST")
	r.HandleFunc("/popups/active", h.getActivePopup).Methods("GET")
	r.HandleFunc("/popups/{id}", h.getPopup).Methods("GET")
	r.HandleFunc("/popups/{id}", h.updatePopup).Methods("PATCH")
	r.HandleFunc("/popups/{id}", h.deletePopup).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "mannabean-delivery",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Menu

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	var (
		items []domain.MenuItem
		err   error
	)
	// ?all=1 is the admin view and includes hidden/unavailable items.
	if r.URL.Query().Get("all") != "" {
		items, err = h.Menu.ListAll()
	} else {
		items, err = h.Menu.ListVisible(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	item, err := h.Menu.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := h.Menu.Create(r.Context(), &item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var patch domain.MenuItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	updated, err := h.Menu.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Categories

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Categories.List()
	if err != nil {
		writeError(w, err)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var category domain.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := h.Categories.Create(&category); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var patch domain.CategoryPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	updated, err := h.Categories.Update(id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Categories.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Orders

type createOrderRequest struct {
	Order domain.OrderDraft       `json:"order"`
	Items []domain.OrderItemDraft `json:"items"`
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	order, err := h.Orders.Create(r.Context(), req.Order, req.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) previewOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	preview, err := h.Orders.Preview(req.Order, req.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List()
	if err != nil {
		writeError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderByNumber(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.GetByNumber(mux.Vars(r)["orderNumber"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var payload struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	updated, err := h.Orders.UpdateStatus(r.Context(), id, payload.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	qr, err := h.Orders.QRCode(id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

// Popups

func (h *Handler) listPopups(w http.ResponseWriter, r *http.Request) {
	popups, err := h.Popups.List()
	if err != nil {
		writeError(w, err)
		return
	}
	if popups == nil {
		popups = []domain.Popup{}
	}
	writeJSON(w, http.StatusOK, popups)
}

func (h *Handler) getActivePopup(w http.ResponseWriter, r *http.Request) {
	popup, err := h.Popups.Active()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, popup)
}

func (h *Handler) getPopup(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	popup, err := h.Popups.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, popup)
}

func (h *Handler) createPopup(w http.ResponseWriter, r *http.Request) {
	var popup domain.Popup
	if err := json.NewDecoder(r.Body).Decode(&popup); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if err := h.Popups.Create(&popup); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, popup)
}

func (h *Handler) updatePopup(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var patch domain.PopupPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	updated, err := h.Popups.Update(id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deletePopup(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Popups.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// responses

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func writeError(w http.ResponseWriter, err error) {
	var validation service.ValidationError
	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"message": validation.Message,
			"field":   validation.Field,
		})
	case errors.Is(err, service.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrInvalidTransition):
		writeMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrDuplicateCategory):
		writeMessage(w, http.StatusConflict, err.Error())
	default:
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}
