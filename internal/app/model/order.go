package model

type BalanceRequest struct {
	Orders []OrderRequest `json:"orders"`
}

type OrderRequest struct {
	Date    int            `json:"date"`
	Lockers int            `json:"lockers"`
	Places  map[string]int `json:"places"`
}

type BalancedOrdersResponse struct {
	RunID  string                  `json:"run_id" yaml:"run_id"`
	Mean   float64                 `json:"mean" yaml:"mean"`
	Orders []BalancedOrderResponse `json:"orders" yaml:"orders"`
}

type BalancedOrderResponse struct {
	Date    int             `json:"date" yaml:"date"`
	Day     string          `json:"day" yaml:"day"`
	Lockers int             `json:"lockers" yaml:"lockers"`
	Places  []PlaceResponse `json:"places" yaml:"places"`
}

type PlaceResponse struct {
	Place    string `json:"place" yaml:"place"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}
