// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
)

// StringMap holds the key-value blobs (product specifications, cart item
// selected options) that travel over the wire as objects but are stored as
// serialized text. The contents are opaque to the server: they are parsed and
// serialized at the boundary and never interpreted internally.
type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *StringMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// Canonical returns the serialized form used for equality checks. Go's JSON
// encoder emits map keys in sorted order, so equal maps serialize identically.
func (m StringMap) Canonical() string {
	if len(m) == 0 {
		return ""
	}
	b, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(b)
}

// Enums
type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleAdmin    UserRole = "admin"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)
