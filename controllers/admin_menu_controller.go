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

// AdminMenuController is the CRUD surface over the catalog.
type AdminMenuController struct {
	menu     *services.MenuService
	sessions *repositories.SessionRepository
	logger   zerolog.Logger
}

func NewAdminMenuController(menu *services.MenuService, sessions *repositories.SessionRepository, logger zerolog.Logger) *AdminMenuController {
	return &AdminMenuController{
		menu:     menu,
		sessions: sessions,
		logger:   logger.With().Str("controller", "admin-menu").Logger(),
	}
}

func (ctrl *AdminMenuController) ShowMenu(c *gin.Context) {
	ctrl.renderList(c, models.AdminMenuPage{})
}

// AddItem posts a new catalog entry. Validation errors are mapped to the
// item/unit/rate field by the server message.
func (ctrl *AdminMenuController) AddItem(c *gin.Context) {
	var form models.MenuItemForm
	if err := c.ShouldBind(&form); err != nil {
		ctrl.renderList(c, models.AdminMenuPage{Form: form, ItemError: "Invalid input"})
		return
	}

	err := ctrl.menu.AddItem(c.Request.Context(), middleware.GetSession(c).Token, models.MenuItemRequest{
		Item: form.Item,
		Unit: form.Unit,
		Rate: form.Rate,
	})
	if errors.Is(err, services.ErrUnauthorized) {
		endSession(c, ctrl.sessions)
		return
	}
	if err != nil {
		page := models.AdminMenuPage{Form: form}
		setMenuFieldError(&page, err, ctrl.logger)
		ctrl.renderList(c, page)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/menu")
}

// ShowEdit pre-fills the edit form from the session's cached copy of the
// last fetched list.
func (ctrl *AdminMenuController) ShowEdit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/admin/menu")
		return
	}

	item, found := middleware.GetSession(c).FindMenuItem(id)
	if !found {
		c.Redirect(http.StatusSeeOther, "/admin/menu")
		return
	}

	c.HTML(http.StatusOK, "admin_menu_edit.html", models.AdminMenuEditPage{
		ID:   item.ID,
		Form: models.MenuItemForm{Item: item.Item, Unit: item.Unit, Rate: item.Rate},
	})
}

func (ctrl *AdminMenuController) UpdateItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/admin/menu")
		return
	}

	var form models.MenuItemForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "admin_menu_edit.html", models.AdminMenuEditPage{
			ID: id, Form: form, ItemError: "Invalid input",
		})
		return
	}

	err := ctrl.menu.UpdateItem(c.Request.Context(), middleware.GetSession(c).Token, id, models.MenuItemRequest{
		Item: form.Item,
		Unit: form.Unit,
		Rate: form.Rate,
	})
	if errors.Is(err, services.ErrUnauthorized) {
		endSession(c, ctrl.sessions)
		return
	}
	if err != nil {
		page := models.AdminMenuEditPage{ID: id, Form: form}
		var apiErr *services.APIError
		if errors.As(err, &apiErr) {
			switch utils.MenuErrorField(apiErr.Message) {
			case "unit":
				page.UnitError = apiErr.Message
			case "rate":
				page.RateError = apiErr.Message
			default:
				page.ItemError = apiErr.Message
			}
		} else {
			ctrl.logger.Error().Err(err).Int("id", id).Msg("menu update failed")
			page.ItemError = serverUnreachable
		}
		c.HTML(http.StatusOK, "admin_menu_edit.html", page)
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/menu")
}

// ShowDelete renders the yes/no confirmation keyed to the pending item.
func (ctrl *AdminMenuController) ShowDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/admin/menu")
		return
	}

	item, found := middleware.GetSession(c).FindMenuItem(id)
	if !found {
		item = models.MenuItem{ID: id}
	}
	c.HTML(http.StatusOK, "admin_menu_delete.html", models.AdminMenuDeletePage{Item: item})
}

func (ctrl *AdminMenuController) DeleteItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/admin/menu")
		return
	}

	err := ctrl.menu.DeleteItem(c.Request.Context(), middleware.GetSession(c).Token, id)
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		endSession(c, ctrl.sessions)
		return
	case errors.Is(err, services.ErrNotFound):
		item, _ := middleware.GetSession(c).FindMenuItem(id)
		item.ID = id
		c.HTML(http.StatusOK, "admin_menu_delete.html", models.AdminMenuDeletePage{
			Item:    item,
			Message: "That item is not in the database!",
		})
		return
	case err != nil:
		ctrl.logger.Error().Err(err).Int("id", id).Msg("menu delete failed")
		c.HTML(http.StatusOK, "admin_menu_delete.html", models.AdminMenuDeletePage{
			Item:    models.MenuItem{ID: id},
			Message: serverUnreachable,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin/menu")
}

// renderList fetches the catalog, refreshes the session cache and renders
// the admin list around whatever form state the caller prepared.
func (ctrl *AdminMenuController) renderList(c *gin.Context, page models.AdminMenuPage) {
	session := middleware.GetSession(c)

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
		page.Items = items
		session.SetMenu(items)
	}

	c.HTML(http.StatusOK, "admin_menu.html", page)
}

// setMenuFieldError attaches an add-item failure to the matching input.
func setMenuFieldError(page *models.AdminMenuPage, err error, logger zerolog.Logger) {
	var apiErr *services.APIError
	if !errors.As(err, &apiErr) {
		logger.Error().Err(err).Msg("menu add failed")
		page.ItemError = serverUnreachable
		return
	}
	switch utils.MenuErrorField(apiErr.Message) {
	case "unit":
		page.UnitError = apiErr.Message
	case "rate":
		page.RateError = apiErr.Message
	default:
		page.ItemError = apiErr.Message
	}
}
