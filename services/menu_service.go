package services

import (
	"context"
	"fmt"
	"net/http"

	"fastfood-ui/models"
)

type MenuService struct {
	client *Client
}

func NewMenuService(client *Client) *MenuService {
	return &MenuService{client: client}
}

// GetMenu fetches the catalog. An empty catalog surfaces as ErrNotFound,
// which callers render as the empty-state page.
func (s *MenuService) GetMenu(ctx context.Context, token string) ([]models.MenuItem, error) {
	var res models.MenuResponse
	if err := s.client.do(ctx, http.MethodGet, "/menu", token, nil, &res); err != nil {
		return nil, err
	}
	return res.Menu, nil
}

func (s *MenuService) AddItem(ctx context.Context, token string, req models.MenuItemRequest) error {
	return s.client.do(ctx, http.MethodPost, "/menu", token, req, nil)
}

func (s *MenuService) UpdateItem(ctx context.Context, token string, id int, req models.MenuItemRequest) error {
	return s.client.do(ctx, http.MethodPut, fmt.Sprintf("/menu/%d", id), token, req, nil)
}

func (s *MenuService) DeleteItem(ctx context.Context, token string, id int) error {
	return s.client.do(ctx, http.MethodDelete, fmt.Sprintf("/menu/%d", id), token, nil, nil)
}
