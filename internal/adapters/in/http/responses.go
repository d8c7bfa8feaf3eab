package http

import (
	"time"

	"gasdelivery/internal/core/application/usecases/queries"
	"gasdelivery/internal/core/domain/model/order"
)

type orderJSON struct {
	ID             string  `json:"id"`
	SubscriptionID *string `json:"subscriptionId,omitempty"`
	ParentOrderID  *string `json:"parentOrderId,omitempty"`
	CustomerName   string  `json:"customerName"`
	CustomerPhone  string  `json:"customerPhone"`
	Address        string  `json:"address"`
	PlanName       string  `json:"planName"`
	PlanSize       string  `json:"planSize"`
	PlanFrequency  string  `json:"planFrequency"`
	DeliveryDate   string  `json:"deliveryDate"`
	Status         string  `json:"status"`
	AgentID        *string `json:"agentId,omitempty"`
	RetryCount     int     `json:"retryCount"`
	AssignedAt     *string `json:"assignedAt,omitempty"`
	DeliveredAt    *string `json:"deliveredAt,omitempty"`
	FailedAt       *string `json:"failedAt,omitempty"`
	FailureReason  string  `json:"failureReason,omitempty"`
	AgentNotes     string  `json:"agentNotes,omitempty"`
	CreatedAt      string  `json:"createdAt"`
}

type listOrdersResponse struct {
	Orders   []orderJSON `json:"orders"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}

type getOrderResponse struct {
	Order       orderJSON   `json:"order"`
	SuccessorID *string     `json:"successorId,omitempty"`
	Lineage     []orderJSON `json:"lineage"`
}

type todayStatsResponse struct {
	Date           string `json:"date"`
	Total          int64  `json:"total"`
	Pending        int64  `json:"pending"`
	Assigned       int64  `json:"assigned"`
	Accepted       int64  `json:"accepted"`
	OutForDelivery int64  `json:"outForDelivery"`
	Delivered      int64  `json:"delivered"`
	Failed         int64  `json:"failed"`
	Cancelled      int64  `json:"cancelled"`
}

type agentJSON struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	IsActive     bool   `json:"isActive"`
	ActiveOrders int64  `json:"activeOrders"`
}

func toOrderJSON(o queries.OrderResponse) orderJSON {
	resp := orderJSON{
		ID:            o.ID.String(),
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Address:       o.Address,
		PlanName:      o.PlanName,
		PlanSize:      o.PlanSize,
		PlanFrequency: o.PlanFrequency,
		DeliveryDate:  o.DeliveryDate.Format(dateLayout),
		Status:        o.Status,
		RetryCount:    o.RetryCount,
		FailureReason: o.FailureReason,
		AgentNotes:    o.AgentNotes,
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339),
	}
	if o.SubscriptionID != nil {
		id := o.SubscriptionID.String()
		resp.SubscriptionID = &id
	}
	if o.ParentOrderID != nil {
		id := o.ParentOrderID.String()
		resp.ParentOrderID = &id
	}
	if o.AgentID != nil {
		id := o.AgentID.String()
		resp.AgentID = &id
	}
	if o.AssignedAt != nil {
		ts := o.AssignedAt.UTC().Format(time.RFC3339)
		resp.AssignedAt = &ts
	}
	if o.DeliveredAt != nil {
		ts := o.DeliveredAt.UTC().Format(time.RFC3339)
		resp.DeliveredAt = &ts
	}
	if o.FailedAt != nil {
		ts := o.FailedAt.UTC().Format(time.RFC3339)
		resp.FailedAt = &ts
	}
	return resp
}

// orderJSONFromDomain renders an aggregate straight off a command handler, so
// mutating endpoints can return the updated order without a follow-up read.
func orderJSONFromDomain(o *order.DeliveryOrder) orderJSON {
	resp := orderJSON{
		ID:            o.ID().String(),
		CustomerName:  o.Customer().Name,
		CustomerPhone: o.Customer().Phone,
		Address:       o.Customer().Address,
		PlanName:      o.Plan().Name,
		PlanSize:      o.Plan().Size,
		PlanFrequency: o.Plan().Frequency.String(),
		DeliveryDate:  o.DeliveryDate().Format(dateLayout),
		Status:        o.Status().String(),
		RetryCount:    o.RetryCount(),
		FailureReason: o.FailureReason().String(),
		AgentNotes:    o.AgentNotes(),
		CreatedAt:     o.CreatedAt().UTC().Format(time.RFC3339),
	}
	if subscriptionID := o.SubscriptionID(); subscriptionID != nil {
		id := subscriptionID.String()
		resp.SubscriptionID = &id
	}
	if parentID := o.ParentOrderID(); parentID != nil {
		id := parentID.String()
		resp.ParentOrderID = &id
	}
	if agentID := o.Agent(); agentID != nil {
		id := agentID.String()
		resp.AgentID = &id
	}
	if assignedAt := o.AssignedAt(); assignedAt != nil {
		ts := assignedAt.UTC().Format(time.RFC3339)
		resp.AssignedAt = &ts
	}
	if deliveredAt := o.DeliveredAt(); deliveredAt != nil {
		ts := deliveredAt.UTC().Format(time.RFC3339)
		resp.DeliveredAt = &ts
	}
	if failedAt := o.FailedAt(); failedAt != nil {
		ts := failedAt.UTC().Format(time.RFC3339)
		resp.FailedAt = &ts
	}
	return resp
}
