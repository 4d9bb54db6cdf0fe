package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"fastfood-ui/middleware"
	"fastfood-ui/models"
	"fastfood-ui/repositories"
	"fastfood-ui/services"
	"fastfood-ui/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AdminOrderController groups open orders by status and drives the
// status-transition requests. All transitions are server-authoritative: the
// controller only asks, then reloads the list to observe the result.
type AdminOrderController struct {
	orders   *services.OrderService
	sessions *repositories.SessionRepository
	logger   zerolog.Logger
}

func NewAdminOrderController(orders *services.OrderService, sessions *repositories.SessionRepository, logger zerolog.Logger) *AdminOrderController {
	return &AdminOrderController{
		orders:   orders,
		sessions: sessions,
		logger:   logger.With().Str("controller", "admin-orders").Logger(),
	}
}

func (ctrl *AdminOrderController) ShowOrders(c *gin.Context) {
	ctrl.renderOrders(c, "")
}

// renderOrders fetches the full order list, refreshes the session cache and
// renders the grouped view with an optional banner message.
func (ctrl *AdminOrderController) renderOrders(c *gin.Context, message string) {
	session := middleware.GetSession(c)
	page := models.AdminOrdersPage{Message: message}

	orders, err := ctrl.orders.AllOrders(c.Request.Context(), session.Token)
	if errors.Is(err, services.ErrUnauthorized) {
		endSession(c, ctrl.sessions)
		return
	}
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		ctrl.logger.Error().Err(err).Msg("orders fetch failed")
		page.LoadError = serverUnreachable
	}

	session.SetOrders(orders)

	newOrders, accepted, completed := services.Partition(orders)
	page.New = orderRows(newOrders)
	page.Accepted = orderRows(accepted)
	page.Completed = orderRows(completed)
	c.HTML(http.StatusOK, "admin_orders.html", page)
}

// ShowConfirm renders the single confirmation prompt every status-changing
// action routes through.
func (ctrl *AdminOrderController) ShowConfirm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/admin/orders")
		return
	}

	action := c.Query("action")
	if _, known := models.StatusForAction(action); !known {
		c.Redirect(http.StatusSeeOther, "/admin/orders")
		return
	}

	c.HTML(http.StatusOK, "admin_order_confirm.html", models.OrderConfirmPage{
		ID:     id,
		Action: action,
		Prompt: fmt.Sprintf("Do you want to %s order #%d?", action, id),
	})
}

// UpdateStatus issues the PUT for a confirmed action and reloads the list.
func (ctrl *AdminOrderController) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/admin/orders")
		return
	}

	status, known := models.StatusForAction(c.PostForm("action"))
	if !known {
		c.Redirect(http.StatusSeeOther, "/admin/orders")
		return
	}

	session := middleware.GetSession(c)
	err := ctrl.orders.UpdateStatus(c.Request.Context(), session.Token, id, status)
	if errors.Is(err, services.ErrUnauthorized) {
		endSession(c, ctrl.sessions)
		return
	}
	if err != nil {
		ctrl.logger.Error().Err(err).Int("order", id).Str("status", status).Msg("status update failed")
		ctrl.renderOrders(c, fmt.Sprintf("Order #%d could not be updated, please try again!", id))
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/orders")
}

// ShowDetail resolves the selected order from the session's cached list.
func (ctrl *AdminOrderController) ShowDetail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/admin/orders")
		return
	}

	order, found := middleware.GetSession(c).FindOrder(id)
	if !found {
		c.Redirect(http.StatusSeeOther, "/admin/orders")
		return
	}

	page := models.OrderDetailPage{
		ID:       order.ID,
		Customer: order.Customer,
		Status:   order.Status,
		Total:    order.TotalCost,
	}
	for _, line := range order.Items {
		page.Lines = append(page.Lines, utils.LineLabel(line))
	}

	c.HTML(http.StatusOK, "admin_order_detail.html", page)
}

func orderRows(orders []models.Order) []models.AdminOrderRow {
	rows := make([]models.AdminOrderRow, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, models.AdminOrderRow{
			ID:       order.ID,
			Customer: order.Customer,
			Total:    order.TotalCost,
		})
	}
	return rows
}
