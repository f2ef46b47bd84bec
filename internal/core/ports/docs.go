// Package ports defines the contracts between the order workflow and the
// infrastructure around it: storage, the payment gateway, catalog and shop
// lookups, identity verification, refunds and the audit sink.
package ports
