// Package user models customers and staff, and the verified identity of
// whoever is calling a workflow operation.
package user

import (
	"fmt"

	"zinger/internal/pkg/errs"
)

type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleSeller     Role = "SELLER"
	RoleShopOwner  Role = "SHOP_OWNER"
	RoleDelivery   Role = "DELIVERY"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleCustomer, RoleSeller, RoleShopOwner, RoleDelivery, RoleSuperAdmin:
		return r, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
	}
}

// User is the hydrated owner of an order.
type User struct {
	Mobile  string
	Name    string
	Email   string
	OAuthID string
	Role    Role
}

// Caller is the identity presented with a request. It is trusted only
// after an identity verifier has confirmed it.
type Caller struct {
	Mobile  string
	OAuthID string
	Role    Role
}

func NewCaller(mobile, oauthID, role string) (Caller, error) {
	if mobile == "" {
		return Caller{}, errs.NewValueIsRequiredError("mobile")
	}
	if oauthID == "" {
		return Caller{}, errs.NewValueIsRequiredError("oauth id")
	}
	r, err := ParseRole(role)
	if err != nil {
		return Caller{}, err
	}
	return Caller{Mobile: mobile, OAuthID: oauthID, Role: r}, nil
}

func (c Caller) IsCustomer() bool {
	return c.Role == RoleCustomer
}
