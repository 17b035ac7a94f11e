package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	httputils "github.com/merolaashraf15-source/MED/internal/app/controller/http/utils"
	"github.com/merolaashraf15-source/MED/internal/app/converter"
	"github.com/merolaashraf15-source/MED/internal/app/entity"
	"github.com/merolaashraf15-source/MED/internal/app/model"
	err_storage "github.com/merolaashraf15-source/MED/internal/app/storage/api/errors"
	"github.com/merolaashraf15-source/MED/internal/app/validator"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

const (
	MsgOrderNotFound  = "Order not found"
	MsgInvalidBody    = "Invalid request body"
	MsgFetchFailed    = "Failed to fetch orders"
	MsgFetchOneFailed = "Failed to fetch order"
	MsgCreateFailed   = "Failed to create order"
	MsgUpdateFailed   = "Failed to update order"
	MsgDeleteFailed   = "Failed to delete order"
)

type OrderProcessor interface {
	CreateOrder(ctx context.Context, order entity.CreateOrder) (entity.Order, error)
	GetOrder(ctx context.Context, id string) (entity.Order, error)
	ListOrders(ctx context.Context, query entity.OrderQuery) (entity.OrderPage, error)
	UpdateOrder(ctx context.Context, id string, update entity.UpdateOrder) (entity.Order, error)
	DeleteOrder(ctx context.Context, id string) (bool, error)
}

type Order struct {
	storage OrderProcessor
}

func New(storage OrderProcessor) Order {
	return Order{
		storage: storage,
	}
}

func (p *Order) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := parseListQuery(r)

		ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
		defer cancel()

		page, err := p.storage.ListOrders(ctx, query)
		if err != nil {
			zap.L().Error("error while listing orders", zap.Error(err), zap.String("search", query.Search))
			httputils.WriteMessage(w, http.StatusInternalServerError, MsgFetchFailed)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderPageToListResponse(page))
	}
}

func (p *Order) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
		defer cancel()

		order, err := p.storage.GetOrder(ctx, id)
		if err != nil {
			if errors.Is(err, err_storage.ErrOrderNotFound) {
				httputils.WriteMessage(w, http.StatusNotFound, MsgOrderNotFound)
				return
			}

			zap.L().Error("error while getting order", zap.Error(err), zap.String("order_id", id))
			httputils.WriteMessage(w, http.StatusInternalServerError, MsgFetchOneFailed)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderToOutputOrder(order))
	}
}

func (p *Order) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		createRequest := model.CreateOrderRequest{}
		err := json.NewDecoder(r.Body).Decode(&createRequest)
		if err != nil {
			zap.L().Error("error while parsing create order request", zap.Error(err))
			httputils.WriteMessage(w, http.StatusBadRequest, MsgInvalidBody)
			return
		}
		defer r.Body.Close()

		if err := validator.CreateOrderRequest(createRequest); err != nil {
			httputils.WriteMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
		defer cancel()

		order, err := p.storage.CreateOrder(ctx, converter.ConvertCreateRequestToOrder(createRequest))
		if err != nil {
			zap.L().Error("error while creating order", zap.Error(err))
			httputils.WriteMessage(w, http.StatusInternalServerError, MsgCreateFailed)
			return
		}

		httputils.WriteJSON(w, http.StatusCreated, converter.ConvertOrderToOutputOrder(order))
	}
}

func (p *Order) UpdateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		updateRequest := model.UpdateOrderRequest{}
		err := json.NewDecoder(r.Body).Decode(&updateRequest)
		if err != nil {
			zap.L().Error("error while parsing update order request", zap.Error(err), zap.String("order_id", id))
			httputils.WriteMessage(w, http.StatusBadRequest, MsgInvalidBody)
			return
		}
		defer r.Body.Close()

		if err := validator.UpdateOrderRequest(updateRequest); err != nil {
			httputils.WriteMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
		defer cancel()

		order, err := p.storage.UpdateOrder(ctx, id, converter.ConvertUpdateRequestToOrderUpdate(updateRequest))
		if err != nil {
			if errors.Is(err, err_storage.ErrOrderNotFound) {
				httputils.WriteMessage(w, http.StatusNotFound, MsgOrderNotFound)
				return
			}

			zap.L().Error("error while updating order", zap.Error(err), zap.String("order_id", id))
			httputils.WriteMessage(w, http.StatusInternalServerError, MsgUpdateFailed)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertOrderToOutputOrder(order))
	}
}

func (p *Order) DeleteOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
		defer cancel()

		deleted, err := p.storage.DeleteOrder(ctx, id)
		if err != nil {
			zap.L().Error("error while deleting order", zap.Error(err), zap.String("order_id", id))
			httputils.WriteMessage(w, http.StatusInternalServerError, MsgDeleteFailed)
			return
		}

		if !deleted {
			httputils.WriteMessage(w, http.StatusNotFound, MsgOrderNotFound)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func parseListQuery(r *http.Request) entity.OrderQuery {
	query := entity.OrderQuery{
		Search: r.URL.Query().Get("search"),
		Page:   defaultPage,
		Limit:  defaultLimit,
	}

	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page >= 1 {
		query.Page = page
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit >= 1 {
		query.Limit = limit
	}

	return query
}
