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

// MenuController drives the customer-facing menu page: catalog, cart and
// order submission.
type MenuController struct {
	menu     *services.MenuService
	orders   *services.OrderService
	sessions *repositories.SessionRepository
	logger   zerolog.Logger
}

func NewMenuController(menu *services.MenuService, orders *services.OrderService, sessions *repositories.SessionRepository, logger zerolog.Logger) *MenuController {
	return &MenuController{
		menu:     menu,
		orders:   orders,
		sessions: sessions,
		logger:   logger.With().Str("controller", "menu").Logger(),
	}
}

func (ctrl *MenuController) ShowMenu(c *gin.Context) {
	ctrl.renderMenu(c, "", false)
}

// AddToCart upserts one cart line from the quantity input and the item's
// displayed rate, then re-renders the page.
func (ctrl *MenuController) AddToCart(c *gin.Context) {
	session := middleware.GetSession(c)

	var form models.CartForm
	if err := c.ShouldBind(&form); err != nil || form.Quantity < 1 {
		c.Redirect(http.StatusSeeOther, "/menu")
		return
	}

	session.AddToCart(form.Item, form.Quantity, form.Rate)
	c.Redirect(http.StatusSeeOther, "/menu")
}

// PlaceOrder submits the cart. Success clears the cart and replaces the cart
// panel with a confirmation; failure keeps the cart so the user can retry.
func (ctrl *MenuController) PlaceOrder(c *gin.Context) {
	session := middleware.GetSession(c)
	lines, _ := session.CartView()
	if len(lines) == 0 {
		c.Redirect(http.StatusSeeOther, "/menu")
		return
	}

	err := ctrl.orders.Place(c.Request.Context(), session.Token, lines)
	if errors.Is(err, services.ErrUnauthorized) {
		endSession(c, ctrl.sessions)
		return
	}
	if err != nil {
		ctrl.logger.Error().Err(err).Msg("order submission failed")
		ctrl.renderMenu(c, "Your order could not be placed, please try again!", false)
		return
	}

	session.ClearCart()
	ctrl.renderMenu(c, "Your order has been placed!", true)
}

// renderMenu fetches the catalog and renders the page with the session cart
// and an optional cart-panel message.
func (ctrl *MenuController) renderMenu(c *gin.Context, message string, messageOK bool) {
	session := middleware.GetSession(c)

	page := models.MenuPage{Message: message, MessageOK: messageOK}

	items, err := ctrl.menu.GetMenu(c.Request.Context(), session.Token)
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		endSession(c, ctrl.sessions)
		return
	case errors.Is(err, services.ErrNotFound):
		page.Empty = true
	case err != nil:
		ctrl.logger.Error().Err(err).Msg("menu fetch failed")
		page.LoadError = serverUnreachable
	default:
		if len(items) == 0 {
			page.Empty = true
		}
		for _, item := range items {
			page.Items = append(page.Items, models.MenuItemRow{
				ID:        item.ID,
				Item:      item.Item,
				Unit:      item.Unit,
				Rate:      item.Rate,
				RateLabel: utils.RateLabel(item.Rate, item.Unit),
			})
		}
	}

	lines, total := session.CartView()
	for _, line := range lines {
		page.Cart = append(page.Cart, models.CartLineRow{
			Item:     line.Item,
			Quantity: line.Quantity,
			Cost:     line.Cost,
		})
	}
	page.CartTotal = total

	c.HTML(http.StatusOK, "menu.html", page)
}
