// Package consolidation contains the Consolidation aggregate: a batch of
// parcels grouped for joint transport under one master tracking number, with
// an enforced status state machine and an append-only status history.
package consolidation
