package queries

import (
	"context"

	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/core/domain/model/subscription"
	"gasdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// TodayStatsQueryHandler aggregates per-status order counts from the database.
type TodayStatsQueryHandler struct {
	db *gorm.DB
}

// NewTodayStatsQueryHandler creates a handler for daily stats queries.
func NewTodayStatsQueryHandler(db *gorm.DB) TodayStatsQueryHandler {
	return TodayStatsQueryHandler{db: db}
}

// Handle executes the aggregation with a single GROUP BY over the date's orders.
func (h TodayStatsQueryHandler) Handle(
	ctx context.Context,
	query TodayStatsQuery,
) (TodayStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TodayStatsQueryResponse{}, err
	}
	if !query.Actor().IsAdmin() {
		return TodayStatsQueryResponse{}, errs.NewForbiddenError("TodayStats", query.Actor().ID().String())
	}

	date := subscription.NormalizeDate(query.Date())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		WHERE delivery_date = ?
		GROUP BY status
	`, date).Rows()
	if err != nil {
		return TodayStatsQueryResponse{}, err
	}
	defer rows.Close()

	resp := TodayStatsQueryResponse{Date: date}
	for rows.Next() {
		var status string
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return TodayStatsQueryResponse{}, err
		}

		switch order.Status(status) {
		case order.Pending:
			resp.Pending = count
		case order.Assigned:
			resp.Assigned = count
		case order.Accepted:
			resp.Accepted = count
		case order.OutForDelivery:
			resp.OutForDelivery = count
		case order.Delivered:
			resp.Delivered = count
		case order.Failed:
			resp.Failed = count
		case order.Cancelled:
			// Cancelled orders are not part of the day's workload total.
			resp.Cancelled = count
			continue
		}
		resp.Total += count
	}
	if err = rows.Err(); err != nil {
		return TodayStatsQueryResponse{}, err
	}

	return resp, nil
}
