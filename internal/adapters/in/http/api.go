package http

import (
	"fmt"
	"net/http"

	"zinger/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Caller identity headers.
const (
	HeaderMobile  = "mobile"
	HeaderOAuthID = "oauth_id"
	HeaderRole    = "role"
)

type OrderLineRequest struct {
	ItemID   int64 `json:"itemId"`
	Quantity int   `json:"quantity"`
}

type PlaceOrderRequest struct {
	ID               string             `json:"id,omitempty"`
	ShopID           int64              `json:"shopId"`
	Price            kernel.Money       `json:"price"`
	DeliveryPrice    *kernel.Money      `json:"deliveryPrice,omitempty"`
	DeliveryLocation string             `json:"deliveryLocation,omitempty"`
	CookingInfo      string             `json:"cookingInfo,omitempty"`
	Items            []OrderLineRequest `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status    string `json:"status"`
	SecretKey string `json:"secretKey,omitempty"`
}

type UpdateOrderRatingRequest struct {
	Rating float64 `json:"rating"`
}

type SettlePaymentRequest struct {
	ResponseCode string        `json:"responseCode"`
	Amount       *kernel.Money `json:"amount,omitempty"`
}

// ListParams are the paging query parameters of the list endpoints.
type ListParams struct {
	Page  *int `form:"page" json:"page,omitempty"`
	Count *int `form:"count" json:"count,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Place an order
	// (POST /api/v1/orders)
	PlaceOrder(ctx echo.Context) error
	// Order by id
	// (GET /api/v1/orders/{id})
	GetOrder(ctx echo.Context, id string) error
	// Accept a paid order
	// (POST /api/v1/orders/{id}/accept)
	AcceptOrder(ctx echo.Context, id string) error
	// Move an order to a new status
	// (PATCH /api/v1/orders/{id}/status)
	UpdateOrderStatus(ctx echo.Context, id string) error
	// Rate a finished order
	// (PATCH /api/v1/orders/{id}/rating)
	UpdateOrderRating(ctx echo.Context, id string) error
	// Orders of a user
	// (GET /api/v1/users/{mobile}/orders)
	GetOrdersByMobile(ctx echo.Context, mobile string, params ListParams) error
	// Orders of a shop
	// (GET /api/v1/shops/{id}/orders)
	GetOrdersByShop(ctx echo.Context, id int64, params ListParams) error
	// Settle a simulated payment
	// (POST /api/v1/payments/{id}/settle)
	SettlePayment(ctx echo.Context, id string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := pathString(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) AcceptOrder(ctx echo.Context) error {
	id, err := pathString(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.AcceptOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	id, err := pathString(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderStatus(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateOrderRating(ctx echo.Context) error {
	id, err := pathString(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderRating(ctx, id)
}

func (w *ServerInterfaceWrapper) GetOrdersByMobile(ctx echo.Context) error {
	mobile, err := pathString(ctx, "mobile")
	if err != nil {
		return err
	}
	params, err := listParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrdersByMobile(ctx, mobile, params)
}

func (w *ServerInterfaceWrapper) GetOrdersByShop(ctx echo.Context) error {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	params, err := listParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrdersByShop(ctx, id, params)
}

func (w *ServerInterfaceWrapper) SettlePayment(ctx echo.Context) error {
	id, err := pathString(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.SettlePayment(ctx, id)
}

func pathString(ctx echo.Context, name string) (string, error) {
	var v string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &v,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return v, nil
}

func listParams(ctx echo.Context) (ListParams, error) {
	var params ListParams
	if err := runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "count", ctx.QueryParams(), &params.Count); err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter count: %s", err))
	}
	return params, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/api/v1/orders", w.PlaceOrder)
	router.GET(baseURL+"/api/v1/orders/:id", w.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:id/accept", w.AcceptOrder)
	router.PATCH(baseURL+"/api/v1/orders/:id/status", w.UpdateOrderStatus)
	router.PATCH(baseURL+"/api/v1/orders/:id/rating", w.UpdateOrderRating)
	router.GET(baseURL+"/api/v1/users/:mobile/orders", w.GetOrdersByMobile)
	router.GET(baseURL+"/api/v1/shops/:id/orders", w.GetOrdersByShop)
	router.POST(baseURL+"/api/v1/payments/:id/settle", w.SettlePayment)
}
