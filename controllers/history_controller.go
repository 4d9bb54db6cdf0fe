package controllers

import (
	"errors"
	"net/http"

	"fastfood-ui/middleware"
	"fastfood-ui/models"
	"fastfood-ui/repositories"
	"fastfood-ui/services"
	"fastfood-ui/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type HistoryController struct {
	orders   *services.OrderService
	sessions *repositories.SessionRepository
	logger   zerolog.Logger
}

func NewHistoryController(orders *services.OrderService, sessions *repositories.SessionRepository, logger zerolog.Logger) *HistoryController {
	return &HistoryController{
		orders:   orders,
		sessions: sessions,
		logger:   logger.With().Str("controller", "history").Logger(),
	}
}

// ShowHistory renders the caller's past orders newest-first, i.e. the exact
// reverse of the API-provided array.
func (ctrl *HistoryController) ShowHistory(c *gin.Context) {
	session := middleware.GetSession(c)

	orders, err := ctrl.orders.History(c.Request.Context(), session.Token)
	if errors.Is(err, services.ErrUnauthorized) {
		endSession(c, ctrl.sessions)
		return
	}
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		ctrl.logger.Error().Err(err).Msg("history fetch failed")
		c.HTML(http.StatusOK, "history.html", models.HistoryPage{LoadError: serverUnreachable})
		return
	}

	page := models.HistoryPage{}
	if len(orders) == 0 {
		page.Empty = true
		c.HTML(http.StatusOK, "history.html", page)
		return
	}

	for i := len(orders) - 1; i >= 0; i-- {
		row := models.HistoryOrderRow{
			Number: i + 1,
			Total:  orders[i].TotalCost,
		}
		for _, line := range orders[i].Items {
			row.Lines = append(row.Lines, utils.LineLabel(line))
		}
		page.Orders = append(page.Orders, row)
	}

	c.HTML(http.StatusOK, "history.html", page)
}
