// Package domain holds the plain value objects of the order-management schema.
//
// Values here are disconnected from storage: they carry ids of related entities
// rather than pointers, and have no methods beyond enumeration checks.
package domain
