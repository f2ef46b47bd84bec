package http

import (
	"context"
	"net/http"
	"strconv"

	"zinger/internal/core/application/outcome"
	"zinger/internal/core/application/usecases/commands"
	"zinger/internal/core/application/usecases/queries"
	"zinger/internal/core/domain/model/kernel"
	"zinger/internal/core/domain/model/order"
	"zinger/internal/core/domain/model/user"
	"zinger/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Default page size of the list endpoints when only a page number is given.
const defaultPageSize = 10

type (
	PlaceOrderHandler interface {
		Handle(ctx context.Context, command commands.PlaceOrderCommand) outcome.Outcome[string]
	}
	AcceptOrderHandler interface {
		Handle(ctx context.Context, command commands.AcceptOrderCommand) outcome.Outcome[string]
	}
	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, command commands.UpdateOrderStatusCommand) outcome.Outcome[string]
	}
	UpdateOrderRatingHandler interface {
		Handle(ctx context.Context, command commands.UpdateOrderRatingCommand) outcome.Outcome[string]
	}
	OrderByIDHandler interface {
		Handle(ctx context.Context, query queries.GetOrderByIDQuery) outcome.Outcome[*queries.OrderDetailsResponse]
	}
	OrdersByMobileHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersByMobileQuery) outcome.Outcome[[]queries.OrderDetailsResponse]
	}
	OrdersByShopHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersByShopQuery) outcome.Outcome[[]queries.OrderDetailsResponse]
	}

	// PaymentSimulator settles payments of the simulated gateway.
	PaymentSimulator interface {
		Settle(ctx context.Context, orderID, responseCode string) error
		SettleFor(ctx context.Context, orderID, responseCode string, amount kernel.Money) error
	}
)

// Handlers are the use cases served over HTTP. Payments is optional; without
// it the settle endpoint answers 404. Audit records requests refused before
// they reach a use case.
type Handlers struct {
	PlaceOrder        PlaceOrderHandler
	AcceptOrder       AcceptOrderHandler
	UpdateOrderStatus UpdateOrderStatusHandler
	UpdateOrderRating UpdateOrderRatingHandler
	OrderByID         OrderByIDHandler
	OrdersByMobile    OrdersByMobileHandler
	OrdersByShop      OrdersByShopHandler
	Payments          PaymentSimulator
	Audit             *outcome.Recorder
}

// Server implements ServerInterface. Every response body is an
// outcome.Outcome envelope.
type Server struct {
	h Handlers
}

var _ ServerInterface = (*Server)(nil)

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	caller, ok := callerFrom(ctx)
	if !ok {
		return s.reject(ctx, req.ID, outcome.InvalidCaller, "")
	}

	if err := ctx.Bind(&req); err != nil {
		return s.reject(ctx, req.ID, outcome.InvalidOrder, "invalid request body")
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, commands.OrderLine{ItemID: item.ItemID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewPlaceOrderCommand(caller, order.Draft{
		ID:               req.ID,
		UserMobile:       caller.Mobile,
		ShopID:           req.ShopID,
		Price:            req.Price,
		DeliveryPrice:    req.DeliveryPrice,
		DeliveryLocation: req.DeliveryLocation,
		CookingInfo:      req.CookingInfo,
	}, lines)
	if err != nil {
		return s.reject(ctx, req.ID, outcome.InvalidOrder, err.Error())
	}

	res := s.h.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if res.IsSuccess() {
		return ctx.JSON(http.StatusCreated, res)
	}
	return respond(ctx, res)
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id string) error {
	caller, ok := callerFrom(ctx)
	if !ok {
		return s.reject(ctx, id, outcome.InvalidCaller, "")
	}

	query, err := queries.NewGetOrderByIDQuery(caller, id)
	if err != nil {
		return s.reject(ctx, id, outcome.InvalidOrder, err.Error())
	}

	return respond(ctx, s.h.OrderByID.Handle(ctx.Request().Context(), query))
}

// AcceptOrder handles POST /api/v1/orders/{id}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, id string) error {
	caller, ok := callerFrom(ctx)
	if !ok {
		return s.reject(ctx, id, outcome.InvalidCaller, "")
	}

	cmd, err := commands.NewAcceptOrderCommand(caller, id)
	if err != nil {
		return s.reject(ctx, id, outcome.InvalidOrder, err.Error())
	}

	return respond(ctx, s.h.AcceptOrder.Handle(ctx.Request().Context(), cmd))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{id}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id string) error {
	caller, ok := callerFrom(ctx)
	if !ok {
		return s.reject(ctx, id, outcome.InvalidCaller, "")
	}

	var req UpdateOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return s.reject(ctx, id, outcome.InvalidOrder, "invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return s.reject(ctx, id, outcome.InvalidOrder, err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(caller, id, status, req.SecretKey)
	if err != nil {
		return s.reject(ctx, id, outcome.InvalidOrder, err.Error())
	}

	return respond(ctx, s.h.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd))
}

// UpdateOrderRating handles PATCH /api/v1/orders/{id}/rating.
func (s *Server) UpdateOrderRating(ctx echo.Context, id string) error {
	caller, ok := callerFrom(ctx)
	if !ok {
		return s.reject(ctx, id, outcome.InvalidCaller, "")
	}

	var req UpdateOrderRatingRequest
	if err := ctx.Bind(&req); err != nil {
		return s.reject(ctx, id, outcome.InvalidOrder, "invalid request body")
	}

	cmd, err := commands.NewUpdateOrderRatingCommand(caller, id, req.Rating)
	if err != nil {
		return s.reject(ctx, id, outcome.InvalidOrder, err.Error())
	}

	return respond(ctx, s.h.UpdateOrderRating.Handle(ctx.Request().Context(), cmd))
}

// GetOrdersByMobile handles GET /api/v1/users/{mobile}/orders. Missing
// paging parameters default to the first page of ten.
func (s *Server) GetOrdersByMobile(ctx echo.Context, mobile string, params ListParams) error {
	caller, ok := callerFrom(ctx)
	if !ok {
		return s.reject(ctx, mobile, outcome.InvalidCaller, "")
	}

	query, err := queries.NewGetOrdersByMobileQuery(caller, mobile, pageOf(params))
	if err != nil {
		return s.reject(ctx, mobile, outcome.InvalidOrder, err.Error())
	}

	return respond(ctx, s.h.OrdersByMobile.Handle(ctx.Request().Context(), query))
}

// GetOrdersByShop handles GET /api/v1/shops/{id}/orders. Without paging
// parameters every order of the shop is returned.
func (s *Server) GetOrdersByShop(ctx echo.Context, id int64, params ListParams) error {
	caller, ok := callerFrom(ctx)
	if !ok {
		return s.reject(ctx, strconv.FormatInt(id, 10), outcome.InvalidCaller, "")
	}

	page := ports.Page{}
	if params.Page != nil || params.Count != nil {
		page = pageOf(params)
	}

	query, err := queries.NewGetOrdersByShopQuery(caller, id, page)
	if err != nil {
		return s.reject(ctx, strconv.FormatInt(id, 10), outcome.InvalidOrder, err.Error())
	}

	return respond(ctx, s.h.OrdersByShop.Handle(ctx.Request().Context(), query))
}

// SettlePayment handles POST /api/v1/payments/{id}/settle.
func (s *Server) SettlePayment(ctx echo.Context, id string) error {
	if s.h.Payments == nil {
		return echo.ErrNotFound
	}

	var req SettlePaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return s.reject(ctx, id, outcome.InvalidOrder, "invalid request body")
	}

	var err error
	if req.Amount != nil {
		err = s.h.Payments.SettleFor(ctx.Request().Context(), id, req.ResponseCode, *req.Amount)
	} else {
		err = s.h.Payments.Settle(ctx.Request().Context(), id, req.ResponseCode)
	}
	if err != nil {
		return s.reject(ctx, id, outcome.TransactionDetailNotAvailable, err.Error())
	}

	return ctx.JSON(http.StatusOK, outcome.Ok(req.ResponseCode))
}

func callerFrom(ctx echo.Context) (user.Caller, bool) {
	h := ctx.Request().Header
	caller, err := user.NewCaller(h.Get(HeaderMobile), h.Get(HeaderOAuthID), h.Get(HeaderRole))
	return caller, err == nil
}

func pageOf(params ListParams) ports.Page {
	page := ports.Page{Number: 1, Size: defaultPageSize}
	if params.Page != nil {
		page.Number = *params.Page
	}
	if params.Count != nil {
		page.Size = *params.Count
	}
	return page
}

func respond[T any](ctx echo.Context, res outcome.Outcome[T]) error {
	return ctx.JSON(StatusFor(res.Code), res)
}

// reject answers without reaching a use case and audits the refusal. An
// empty message falls back to the code's own message.
func (s *Server) reject(ctx echo.Context, subjectID string, code outcome.Code, message string) error {
	res := outcome.Fail[any](code)
	if message != "" {
		res = outcome.FailWith[any](code, message)
	}

	req := ctx.Request()
	outcome.Record(req.Context(), s.h.Audit, res, outcome.Subject{
		CallerMobile: req.Header.Get(HeaderMobile),
		ID:           subjectID,
		Payload:      map[string]string{"method": req.Method, "path": req.URL.Path},
	}, code.Priority())

	return respond(ctx, res)
}
