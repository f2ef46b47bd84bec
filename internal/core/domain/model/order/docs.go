// Package order provides the Order aggregate of the food ordering system and
// the status state machine that drives it from admission to a terminal state.
//
// The package includes:
//   - Order: the aggregate root (identity, pricing, delivery details, status,
//     secret key, rating)
//   - Item: an order line with the unit price frozen at admission time
//   - Status: the lifecycle states and the legal transition table
//
// Key business rules:
//   - Status only moves forward along the transition table; terminal states
//     have no successors
//   - A secret key is issued on entering READY or OUT_FOR_DELIVERY and is held
//     until the order terminates
//   - COMPLETED and DELIVERED require the caller to present the issued key
//   - Only completed or delivered orders can be rated
package order
