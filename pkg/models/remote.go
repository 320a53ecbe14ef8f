package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Lookup walks nested JSON objects along keys and returns the value found,
// or nil when any step is missing or not an object.
func Lookup(raw map[string]any, keys ...string) any {
	var cur any = raw
	for _, k := range keys {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur, ok = obj[k]
		if !ok {
			return nil
		}
	}
	return cur
}

// LookupString is Lookup rendered as a string; "" when absent or null.
func LookupString(raw map[string]any, keys ...string) string {
	switch v := Lookup(raw, keys...).(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// RemoteApplicationID extracts result.basicAppId from a loan API response.
func RemoteApplicationID(raw map[string]any) string {
	return LookupString(raw, "result", "basicAppId")
}

// RemoteRelationID extracts result.id from a loan API response.
func RemoteRelationID(raw map[string]any) *string {
	return optional(LookupString(raw, "result", "id"))
}

// RemoteCustomerID extracts result.primaryBorrower.customerId.
func RemoteCustomerID(raw map[string]any) *string {
	return optional(LookupString(raw, "result", "primaryBorrower", "customerId"))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
