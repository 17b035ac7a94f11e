package orders

import (
	"context"
	"encoding/csv"
	"net/http"

	"go.uber.org/zap"

	httputils "github.com/merolaashraf15-source/MED/internal/app/controller/http/utils"
	"github.com/merolaashraf15-source/MED/internal/app/converter"
	"github.com/merolaashraf15-source/MED/internal/app/entity"
)

const exportPageSize = 500

const MsgExportFailed = "Failed to export orders"

var csvHeader = []string{"id", "customerName", "phone", "medicine", "status", "createdAt"}

// ExportOrders streams the whole filtered set as CSV, paging through the
// storage so the listing contract stays the only read path.
func (p *Order) ExportOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := r.URL.Query().Get("search")

		ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
		defer cancel()

		orders, err := p.collectOrders(ctx, search)
		if err != nil {
			zap.L().Error("error while collecting orders for export", zap.Error(err), zap.String("search", search))
			httputils.WriteMessage(w, http.StatusInternalServerError, MsgExportFailed)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="orders.csv"`)
		w.WriteHeader(http.StatusOK)

		writer := csv.NewWriter(w)
		if err := writer.Write(csvHeader); err != nil {
			zap.L().Error("error while writing csv header", zap.Error(err))
			return
		}
		for _, order := range orders {
			if err := writer.Write(converter.ConvertOrderToCSVRecord(order)); err != nil {
				zap.L().Error("error while writing csv record", zap.Error(err), zap.String("order_id", order.ID))
				return
			}
		}
		writer.Flush()

		if err := writer.Error(); err != nil {
			zap.L().Error("error while flushing csv response", zap.Error(err))
		}
	}
}

func (p *Order) collectOrders(ctx context.Context, search string) (entity.Orders, error) {
	var orders entity.Orders

	for page := 1; ; page++ {
		result, err := p.storage.ListOrders(ctx, entity.OrderQuery{
			Search: search,
			Page:   page,
			Limit:  exportPageSize,
		})
		if err != nil {
			return nil, err
		}

		orders = append(orders, result.Orders...)
		if len(result.Orders) == 0 || len(orders) >= result.Total {
			return orders, nil
		}
	}
}
