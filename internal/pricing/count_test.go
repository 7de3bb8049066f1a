package pricing

import (
	"encoding/json"
	"testing"
)

func TestCountUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"number", `{"n": 2000}`, 2000},
		{"numeric string", `{"n": "2000"}`, 2000},
		{"string with spaces", `{"n": " 42 "}`, 42},
		{"fractional number truncates", `{"n": 1500.9}`, 1500},
		{"non-numeric string", `{"n": "a lot"}`, 0},
		{"fractional string rejected like the form would", `{"n": "1500.9"}`, 0},
		{"null", `{"n": null}`, 0},
		{"boolean", `{"n": true}`, 0},
		{"object", `{"n": {"records": 5}}`, 0},
		{"array", `{"n": [1, 2]}`, 0},
		{"missing", `{}`, 0},
		{"negative number", `{"n": -5}`, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				N Count `json:"n"`
			}
			if err := json.Unmarshal([]byte(tt.body), &payload); err != nil {
				t.Fatalf("unmarshal returned error: %v", err)
			}
			if payload.N.Int() != tt.want {
				t.Errorf("Count = %d, want %d", payload.N.Int(), tt.want)
			}
		})
	}
}
