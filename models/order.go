package models

// Order statuses as reported by the API. Transitions are server-authoritative;
// this UI only requests them.
const (
	StatusNew        = "new"
	StatusProcessing = "processing"
	StatusComplete   = "complete"
	StatusCancelled  = "cancelled"
)

// OrderItem is one line of an order: either a cart line being submitted or a
// line of a persisted order coming back from the API.
type OrderItem struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Cost     int    `json:"cost"`
}

// Order is a submitted, persisted purchase. The UI holds a read-only copy.
type Order struct {
	ID        int         `json:"order-id"`
	Customer  string      `json:"customer"`
	Status    string      `json:"status"`
	Items     []OrderItem `json:"items"`
	TotalCost int         `json:"total-cost"`
}

// OrdersResponse is the envelope returned by GET /orders and GET /users/orders.
type OrdersResponse struct {
	Orders []Order `json:"orders"`
}

// StatusForAction maps an admin action to the status the API should be asked
// to set. The second return is false for unknown actions.
func StatusForAction(action string) (string, bool) {
	switch action {
	case "accept":
		return StatusProcessing, true
	case "decline", "cancel":
		return StatusCancelled, true
	case "complete":
		return StatusComplete, true
	default:
		return "", false
	}
}
