package http

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The reported field follows a fixed precedence: price fields first, then
// status, then the line items. A present-but-zero value must not count as
// missing.
func TestFirstMissingFieldPrecedence(t *testing.T) {
	full := map[string]interface{}{
		"items_price":    10.0,
		"delivery_price": 0.0,
		"discount":       0.0,
		"total_price":    10.0,
		"status":         "created",
		"order_items":    []map[string]interface{}{{"product_id": 1, "quantity": 1}},
	}

	decode := func(t *testing.T, body map[string]interface{}) placeOrderRequest {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		var req placeOrderRequest
		require.NoError(t, json.Unmarshal(raw, &req))
		return req
	}

	req := decode(t, full)
	assert.Empty(t, req.firstMissingField())

	expected := []string{
		"items_price",
		"delivery_price",
		"discount",
		"total_price",
		"status",
		"order_items",
	}

	for _, field := range expected {
		t.Run(field, func(t *testing.T) {
			body := map[string]interface{}{}
			for k, v := range full {
				body[k] = v
			}
			delete(body, field)

			req := decode(t, body)
			assert.Equal(t, field, req.firstMissingField())
		})
	}

	// When several fields are absent, the earliest in the precedence order
	// wins regardless of JSON key order.
	body := map[string]interface{}{
		"items_price": 10.0,
		"status":      "created",
	}
	req = decode(t, body)
	assert.Equal(t, "delivery_price", req.firstMissingField())
}

func TestZeroValuesAreNotMissing(t *testing.T) {
	raw := []byte(`{"items_price":0,"delivery_price":0,"discount":0,"total_price":0,"status":"created","order_items":[]}`)
	var req placeOrderRequest
	require.NoError(t, json.Unmarshal(raw, &req))

	assert.Empty(t, req.firstMissingField())
}
