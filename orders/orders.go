package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"atrium/db"
	"atrium/models"
	"atrium/mq"
	"atrium/store"
	"atrium/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var Orders = store.New[models.Order](db.OrdersCollection)

func validStatus(s string) bool {
	switch s {
	case models.OrderPending, models.OrderConfirmed, models.OrderInProgress, models.OrderCompleted, models.OrderCancelled:
		return true
	default:
		return false
	}
}

// statusQuery builds the list filter: optional status, newest first.
func statusQuery(status string) *store.Query {
	q := store.NewQuery().SortDesc("createdAt")
	if status != "" && status != "all" {
		q.Eq("status", status)
	}
	return q
}

func GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	status := r.URL.Query().Get("status")
	if status != "" && status != "all" && !validStatus(status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown order status")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	orders, err := Orders.List(ctx, statusQuery(status))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	utils.RespondWithJSON(w, http.StatusOK, orders)
}

func GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	order, err := Orders.Get(ctx, ps.ByName("id"))
	if err != nil {
		if store.IsNotFound(err) {
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch order")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// UpdateOrderStatus moves an order through its lifecycle; the console
// never edits the line items themselves.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if !validStatus(input.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown order status")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := Orders.Update(ctx, id, bson.M{"status": input.Status}); err != nil {
		if store.IsNotFound(err) {
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}

	go mq.Emit(r.Context(), "order-status-changed", models.Index{EntityType: "order", EntityId: id, Method: "PUT"})

	utils.SendResponse(w, http.StatusOK, utils.M{"status": input.Status}, "Order updated", nil)
}

func DeleteOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := Orders.Delete(ctx, id); err != nil {
		if store.IsNotFound(err) {
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete order")
		return
	}

	go mq.Emit(r.Context(), "order-deleted", models.Index{EntityType: "order", EntityId: id, Method: "DELETE"})

	w.WriteHeader(http.StatusNoContent)
}
