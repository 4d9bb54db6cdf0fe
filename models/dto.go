package models

// Forms posted by the rendered pages.

type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	AsAdmin  string `form:"as_admin"`
}

type RegisterForm struct {
	Username  string `form:"username" binding:"required"`
	Email     string `form:"email" binding:"required"`
	Telephone string `form:"telephone" binding:"required"`
	Password1 string `form:"password1" binding:"required"`
	Password2 string `form:"password2" binding:"required"`
}

type CartForm struct {
	Item     string `form:"item" binding:"required"`
	Unit     string `form:"unit"`
	Rate     int    `form:"rate" binding:"required"`
	Quantity int    `form:"quantity" binding:"required"`
}

type MenuItemForm struct {
	Item string `form:"item"`
	Unit string `form:"unit"`
	Rate int    `form:"rate"`
}

// Payloads sent to the remote API.

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Password  string `json:"password"`
}

type MenuItemRequest struct {
	Item string `json:"item"`
	Unit string `json:"unit"`
	Rate int    `json:"rate"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

type PlaceOrderRequest struct {
	Items []OrderItem `json:"items"`
}

// Payloads received from the remote API.

type LoginResponse struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
