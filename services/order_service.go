package services

import (
	"context"
	"fmt"
	"net/http"

	"fastfood-ui/models"
)

type OrderService struct {
	client *Client
}

func NewOrderService(client *Client) *OrderService {
	return &OrderService{client: client}
}

// AllOrders fetches every order in the system (admin view).
func (s *OrderService) AllOrders(ctx context.Context, token string) ([]models.Order, error) {
	var res models.OrdersResponse
	if err := s.client.do(ctx, http.MethodGet, "/orders", token, nil, &res); err != nil {
		return nil, err
	}
	return res.Orders, nil
}

// History fetches the caller's own past orders.
func (s *OrderService) History(ctx context.Context, token string) ([]models.Order, error) {
	var res models.OrdersResponse
	if err := s.client.do(ctx, http.MethodGet, "/users/orders", token, nil, &res); err != nil {
		return nil, err
	}
	return res.Orders, nil
}

// Place submits the cart lines as a new order.
func (s *OrderService) Place(ctx context.Context, token string, items []models.OrderItem) error {
	return s.client.do(ctx, http.MethodPost, "/users/orders", token,
		models.PlaceOrderRequest{Items: items}, nil)
}

// UpdateStatus asks the API to move an order to the given status.
func (s *OrderService) UpdateStatus(ctx context.Context, token string, id int, status string) error {
	return s.client.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", id), token,
		models.StatusUpdateRequest{Status: status}, nil)
}

// Partition splits orders into the three display groups: new, processing
// (shown as "Accepted") and complete. Orders with any other status are
// dropped; cancelled orders are not shown anywhere.
func Partition(orders []models.Order) (newOrders, accepted, completed []models.Order) {
	for _, order := range orders {
		switch order.Status {
		case models.StatusNew:
			newOrders = append(newOrders, order)
		case models.StatusProcessing:
			accepted = append(accepted, order)
		case models.StatusComplete:
			completed = append(completed, order)
		}
	}
	return newOrders, accepted, completed
}
