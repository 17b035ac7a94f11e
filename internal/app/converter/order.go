package converter

import (
	"github.com/golang-module/carbon/v2"

	"github.com/merolaashraf15-source/MED/internal/app/entity"
	"github.com/merolaashraf15-source/MED/internal/app/model"
)

func ConvertCreateRequestToOrder(request model.CreateOrderRequest) entity.CreateOrder {
	return entity.CreateOrder{
		CustomerName: request.CustomerName,
		Phone:        request.Phone,
		Medicine:     request.Medicine,
	}
}

func ConvertUpdateRequestToOrderUpdate(request model.UpdateOrderRequest) entity.UpdateOrder {
	update := entity.UpdateOrder{
		CustomerName: request.CustomerName,
		Phone:        request.Phone,
		Medicine:     request.Medicine,
	}

	if request.Status != nil {
		status := entity.OrderStatus(*request.Status)
		update.Status = &status
	}

	return update
}

func ConvertOrderToOutputOrder(order entity.Order) model.OutputOrder {
	return model.OutputOrder{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		Phone:        order.Phone,
		Medicine:     order.Medicine,
		Status:       string(order.Status),
		CreatedAt:    carbon.CreateFromStdTime(order.CreatedAt).ToRfc3339String(),
	}
}

func ConvertOrderPageToListResponse(page entity.OrderPage) model.OrderListResponse {
	outputOrders := make(model.OutputOrders, 0, len(page.Orders))
	for _, order := range page.Orders {
		outputOrders = append(outputOrders, ConvertOrderToOutputOrder(order))
	}

	return model.OrderListResponse{
		Orders: outputOrders,
		Total:  page.Total,
	}
}

// ConvertOrderToCSVRecord flattens an order into the column order used by
// the export endpoint: id, customerName, phone, medicine, status, createdAt.
func ConvertOrderToCSVRecord(order entity.Order) []string {
	return []string{
		order.ID,
		order.CustomerName,
		order.Phone,
		order.Medicine,
		string(order.Status),
		carbon.CreateFromStdTime(order.CreatedAt).ToRfc3339String(),
	}
}
