// Package request provides the Request aggregate: a customer-submitted
// intake record whose status only moves forward. Submitted requests are
// approved or rejected; approved ones are processed into a consolidation.
package request
