// Package receipt provides the Receipt aggregate: the billing record issued
// for a consolidation. The charge total is derived from the service fee,
// handling fee and discount and is never accepted from caller input.
package receipt
