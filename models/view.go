package models

// View models handed to the page templates.

type LoginPage struct {
	Username      string
	UsernameError string
	PasswordError string
}

type RegisterPage struct {
	Username      string
	Email         string
	Telephone     string
	UsernameError string
	PasswordError string
	UsernameTip   string
	TelephoneTip  string
}

type MenuItemRow struct {
	ID        int
	Item      string
	Unit      string
	Rate      int
	RateLabel string
}

type CartLineRow struct {
	Item     string
	Quantity int
	Cost     int
}

type MenuPage struct {
	Empty     bool
	LoadError string
	Items     []MenuItemRow
	Cart      []CartLineRow
	CartTotal int
	Message   string
	MessageOK bool
}

type HistoryOrderRow struct {
	Number int
	Lines  []string
	Total  int
}

type HistoryPage struct {
	Empty     bool
	LoadError string
	Orders    []HistoryOrderRow
}

type AdminMenuPage struct {
	Empty     bool
	LoadError string
	Items     []MenuItem
	Form      MenuItemForm
	ItemError string
	UnitError string
	RateError string
	Message   string
}

type AdminMenuEditPage struct {
	ID        int
	Form      MenuItemForm
	ItemError string
	UnitError string
	RateError string
}

type AdminMenuDeletePage struct {
	Item    MenuItem
	Message string
}

type AdminOrderRow struct {
	ID       int
	Customer string
	Total    int
}

type AdminOrdersPage struct {
	Message   string
	LoadError string
	New       []AdminOrderRow
	Accepted  []AdminOrderRow
	Completed []AdminOrderRow
}

type OrderConfirmPage struct {
	ID     int
	Action string
	Prompt string
}

type OrderDetailPage struct {
	ID       int
	Customer string
	Status   string
	Lines    []string
	Total    int
}
