package validation

import "testing"

func TestCreateOrderRequest(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     CreateOrderRequest
		wantErr bool
	}{
		{
			name: "valid single line",
			req: CreateOrderRequest{Items: []OrderItemRequest{
				{ProductID: "p1", Quantity: 2},
			}},
		},
		{
			name:    "empty items",
			req:     CreateOrderRequest{},
			wantErr: true,
		},
		{
			name: "zero quantity",
			req: CreateOrderRequest{Items: []OrderItemRequest{
				{ProductID: "p1", Quantity: 0},
			}},
			wantErr: true,
		},
		{
			name: "missing product id",
			req: CreateOrderRequest{Items: []OrderItemRequest{
				{Quantity: 1},
			}},
			wantErr: true,
		},
		{
			name: "duplicate product lines",
			req: CreateOrderRequest{Items: []OrderItemRequest{
				{ProductID: "p1", Quantity: 1},
				{ProductID: "p1", Quantity: 2},
			}},
			wantErr: true,
		},
		{
			name: "distinct products",
			req: CreateOrderRequest{Items: []OrderItemRequest{
				{ProductID: "p1", Quantity: 1},
				{ProductID: "p2", Quantity: 2},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Struct() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
