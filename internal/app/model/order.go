package model

type CreateOrderRequest struct {
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Medicine     string `json:"medicine"`

	// Status is accepted in the body but ignored: new orders always
	// start as pending.
	Status string `json:"status,omitempty"`
}

type UpdateOrderRequest struct {
	CustomerName *string `json:"customerName,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Medicine     *string `json:"medicine,omitempty"`
	Status       *string `json:"status,omitempty"`
}

type OutputOrders []OutputOrder

type OutputOrder struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Medicine     string `json:"medicine"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

type OrderListResponse struct {
	Orders OutputOrders `json:"orders"`
	Total  int          `json:"total"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
