package models

// MenuItem is one orderable entry in the remote catalog.
type MenuItem struct {
	ID   int    `json:"id"`
	Item string `json:"item"`
	Unit string `json:"unit"`
	Rate int    `json:"rate"`
}

// MenuResponse is the envelope returned by GET /menu.
type MenuResponse struct {
	Menu []MenuItem `json:"menu"`
}
