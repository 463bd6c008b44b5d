// Package shipment contains the Shipment aggregate, the heart of the
// cargo-tracking domain.
//
// A Shipment is a registered cargo moving from an origin to a destination on
// behalf of a client, under the responsibility of an operator. Its lifecycle
// is governed by the Status state machine: registration starts it in
// Iniciada, transit and transshipment alternate until the cargo is delivered,
// and cancellation is available as an administrative override from any
// non-final state.
//
// The aggregate enforces its invariants itself: the delivery forecast can
// never precede the departure date, status changes go through the transition
// table, and terminal states reject further mutation. Movement history is a
// separate aggregate (package history) appended by the application layer
// whenever a shipment changes.
package shipment
