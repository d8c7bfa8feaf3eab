package queries

import (
	"context"

	"gasdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads the order listing for the admin dashboard.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Results order by delivery date, then
// creation time, so today's work sorts first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}
	if !query.Actor().IsAdmin() {
		return ListOrdersQueryResponse{}, errs.NewForbiddenError("ListOrders", query.Actor().ID().String())
	}

	filter := query.Filter()
	where := "1=1"
	args := make([]interface{}, 0, 4)

	if filter.Status != "" {
		where += " AND status = ?"
		args = append(args, filter.Status)
	}
	if !filter.DeliveryDate.IsZero() {
		where += " AND delivery_date = ?"
		args = append(args, filter.DeliveryDate)
	}
	if filter.Search != "" {
		where += " AND (customer_name ILIKE ? OR customer_phone ILIKE ? OR address ILIKE ?)"
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	pageArgs := append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE `+where+`
		ORDER BY delivery_date, created_at
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, err := scanOrderRow(rows)
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Orders:   orders,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
