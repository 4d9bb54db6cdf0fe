package models

import (
	"sync"
	"time"
)

// Session is the server-side state for one signed-in browser. The bearer
// token is the only credential; the menu and orders caches hold the last
// fetched lists so detail and edit views can be filled without another
// round trip. Concurrent requests carrying the same cookie share one
// Session, so the cart and the caches are only touched through the locked
// methods below.
type Session struct {
	ID        string
	Token     string
	Admin     bool
	ExpiresAt time.Time

	mu     sync.Mutex
	cart   Cart
	menu   []MenuItem
	orders []Order
}

// Expired reports whether the session has outlived its TTL.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// AddToCart upserts one cart line.
func (s *Session) AddToCart(item string, quantity, rate int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(item, quantity, rate)
}

// CartView returns a copy of the cart lines and their total, safe to use
// after the lock is released.
func (s *Session) CartView() ([]OrderItem, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]OrderItem, len(s.cart.Lines))
	copy(lines, s.cart.Lines)
	return lines, s.cart.Total()
}

// CartEmpty reports whether the cart has no lines.
func (s *Session) CartEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Empty()
}

// ClearCart drops all cart lines.
func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// SetMenu replaces the cached catalog.
func (s *Session) SetMenu(items []MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu = items
}

// MenuItems returns a copy of the cached catalog.
func (s *Session) MenuItems() []MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]MenuItem, len(s.menu))
	copy(items, s.menu)
	return items
}

// SetOrders replaces the cached order list.
func (s *Session) SetOrders(orders []Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = orders
}

// FindOrder looks an order up in the session's cached list by identifier.
func (s *Session) FindOrder(id int) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, order := range s.orders {
		if order.ID == id {
			return order, true
		}
	}
	return Order{}, false
}

// FindMenuItem looks a catalog entry up in the session's cached menu.
func (s *Session) FindMenuItem(id int) (MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.menu {
		if item.ID == id {
			return item, true
		}
	}
	return MenuItem{}, false
}
