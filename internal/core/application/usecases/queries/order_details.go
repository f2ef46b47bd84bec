// Package queries contains the read paths of the order workflow. Every path
// starts from payment transactions and hydrates each one with its order,
// the order's user and/or shop, and its lines, stopping at the first
// lookup that fails.
package queries

import (
	"context"
	"time"

	"zinger/internal/core/application/outcome"
	"zinger/internal/core/domain/model/kernel"
	"zinger/internal/core/domain/model/order"
	"zinger/internal/core/domain/model/payment"
	"zinger/internal/core/domain/model/shop"
	"zinger/internal/core/domain/model/user"
	"zinger/internal/core/ports"
)

// Stores groups the lookups a read path needs.
type Stores struct {
	Transactions ports.TransactionRepository
	Orders       ports.OrderRepository
	Items        ports.OrderItemRepository
	Users        ports.UserRepository
	Shops        ports.ShopRepository
}

// OrderDetailsResponse is one hydrated order.
type OrderDetailsResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Order       OrderResponse       `json:"order"`
	Items       []ItemResponse      `json:"items"`
}

type TransactionResponse struct {
	TransactionID     string       `json:"transactionId"`
	BankTransactionID string       `json:"bankTransactionId,omitempty"`
	Amount            kernel.Money `json:"transactionAmount"`
	Currency          string       `json:"currency"`
	ResponseCode      string       `json:"responseCode"`
	ResponseMessage   string       `json:"responseMessage,omitempty"`
	GatewayName       string       `json:"gatewayName,omitempty"`
	BankName          string       `json:"bankName,omitempty"`
	PaymentMode       string       `json:"paymentMode,omitempty"`
}

type OrderResponse struct {
	ID               string        `json:"id"`
	UserMobile       string        `json:"userMobile"`
	ShopID           int64         `json:"shopId"`
	Price            kernel.Money  `json:"price"`
	DeliveryPrice    *kernel.Money `json:"deliveryPrice,omitempty"`
	DeliveryLocation string        `json:"deliveryLocation,omitempty"`
	CookingInfo      string        `json:"cookingInfo,omitempty"`
	Status           string        `json:"orderStatus"`
	SecretKey        *string       `json:"secretKey,omitempty"`
	Rating           *float64      `json:"rating,omitempty"`
	CreatedAt        time.Time     `json:"date"`
	User             *UserResponse `json:"user,omitempty"`
	Shop             *ShopResponse `json:"shop,omitempty"`
}

type UserResponse struct {
	Mobile string `json:"mobile"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role"`
}

type ShopResponse struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	Mobile   string         `json:"mobile,omitempty"`
	PhotoURL string         `json:"photoUrl,omitempty"`
	Rating   float64        `json:"rating"`
	Place    *PlaceResponse `json:"place,omitempty"`
}

type PlaceResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type ItemResponse struct {
	ItemID   int64        `json:"itemId"`
	Quantity int          `json:"quantity"`
	Price    kernel.Money `json:"price"`
}

// view selects which related records are attached to an order.
type view int

const (
	// customerView attaches the shop without its place and drops the user.
	customerView view = iota
	// shopView attaches the user and drops the shop and the secret key.
	shopView
	// fullView attaches both.
	fullView
)

// hydrate builds the details of one transaction. On failure it returns the
// code of the lookup that failed.
func (s Stores) hydrate(ctx context.Context, txn payment.Transaction, v view) (OrderDetailsResponse, outcome.Code) {
	o, err := s.Orders.Get(ctx, txn.OrderID())
	if err != nil {
		return OrderDetailsResponse{}, outcome.OrderDetailNotAvailable
	}

	details := OrderDetailsResponse{
		Transaction: transactionResponse(txn),
		Order:       orderResponse(o),
	}

	if v == shopView || v == fullView {
		u, err := s.Users.Get(ctx, o.UserMobile())
		if err != nil {
			return OrderDetailsResponse{}, outcome.UserDetailNotAvailable
		}
		details.Order.User = userResponse(u)
	}

	if v == shopView {
		details.Order.SecretKey = nil
	}

	if v == customerView || v == fullView {
		sh, err := s.Shops.Get(ctx, o.ShopID())
		if err != nil {
			return OrderDetailsResponse{}, outcome.ShopDetailNotAvailable
		}
		if v == customerView {
			sh = sh.WithoutPlace()
		}
		details.Order.Shop = shopResponse(sh)
	}

	items, err := s.Items.ListByOrder(ctx, o.ID())
	if err != nil {
		return OrderDetailsResponse{}, outcome.OrderItemDetailNotAvailable
	}
	details.Items = itemResponses(items)

	return details, outcome.Success
}

func (s Stores) hydrateAll(
	ctx context.Context,
	txns []payment.Transaction,
	v view,
) outcome.Outcome[[]OrderDetailsResponse] {
	list := make([]OrderDetailsResponse, 0, len(txns))
	for _, txn := range txns {
		details, code := s.hydrate(ctx, txn, v)
		if code != outcome.Success {
			return outcome.Fail[[]OrderDetailsResponse](code)
		}
		list = append(list, details)
	}
	return outcome.Ok(list)
}

func transactionResponse(txn payment.Transaction) TransactionResponse {
	d := txn.Details()
	return TransactionResponse{
		TransactionID:     d.TransactionID,
		BankTransactionID: d.BankTransactionID,
		Amount:            d.Amount,
		Currency:          d.Currency,
		ResponseCode:      d.ResponseCode,
		ResponseMessage:   d.ResponseMessage,
		GatewayName:       d.GatewayName,
		BankName:          d.BankName,
		PaymentMode:       d.PaymentMode,
	}
}

func orderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:               o.ID(),
		UserMobile:       o.UserMobile(),
		ShopID:           o.ShopID(),
		Price:            o.Price(),
		DeliveryPrice:    o.DeliveryPrice(),
		DeliveryLocation: o.DeliveryLocation(),
		CookingInfo:      o.CookingInfo(),
		Status:           o.Status().String(),
		SecretKey:        o.SecretKey(),
		Rating:           o.Rating(),
		CreatedAt:        o.CreatedAt(),
	}
}

func userResponse(u user.User) *UserResponse {
	return &UserResponse{Mobile: u.Mobile, Name: u.Name, Email: u.Email, Role: string(u.Role)}
}

func shopResponse(s shop.Shop) *ShopResponse {
	resp := &ShopResponse{ID: s.ID, Name: s.Name, Mobile: s.Mobile, PhotoURL: s.PhotoURL, Rating: s.Rating}
	if s.Place != nil {
		resp.Place = &PlaceResponse{ID: s.Place.ID, Name: s.Place.Name, Address: s.Place.Address}
	}
	return resp
}

func itemResponses(items []order.Item) []ItemResponse {
	resp := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, ItemResponse{ItemID: it.ItemID(), Quantity: it.Quantity(), Price: it.Price()})
	}
	return resp
}
