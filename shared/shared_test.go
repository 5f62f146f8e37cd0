package shared_test

import (
	"testing"
	"time"

	"hotelier/shared"
	"hotelier/shared/constant"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "true", input: "true", expected: boolPtr(true)},
		{name: "false", input: "false", expected: boolPtr(false)},
		{name: "one", input: "1", expected: boolPtr(true)},
		{name: "zero", input: "0", expected: boolPtr(false)},
		{name: "short true", input: "t", expected: boolPtr(true)},
		{name: "short false", input: "f", expected: boolPtr(false)},
		{name: "upper true", input: "TRUE", expected: boolPtr(true)},
		{name: "upper false", input: "FALSE", expected: boolPtr(false)},
		{name: "empty string", input: "", expected: nil},
		{name: "invalid value", input: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}

				return
			}

			if result == nil {
				t.Fatalf("expected %v, got nil", *tt.expected)
			}

			if *result != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, *result)
			}
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    int
		expectError bool
	}{
		{name: "positive", input: "42", expected: 42},
		{name: "negative", input: "-7", expected: -7},
		{name: "zero", input: "0", expected: 0},
		{name: "empty string", input: "", expectError: true},
		{name: "not a number", input: "abc", expectError: true},
		{name: "float value", input: "3.14", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := shared.ConvertStringToInt(tt.input)

			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}

				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestConvertStringToFloat(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    float64
		expectError bool
	}{
		{name: "decimal", input: "120.50", expected: 120.50},
		{name: "integer value", input: "99", expected: 99},
		{name: "negative", input: "-0.5", expected: -0.5},
		{name: "empty string", input: "", expectError: true},
		{name: "not a number", input: "price", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := shared.ConvertStringToFloat(tt.input)

			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}

				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if result != tt.expected {
				t.Errorf("expected %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 100, limit: 0, expected: 1},
		{name: "negative limit", total: 100, limit: -5, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "with remainder", total: 101, limit: 10, expected: 11},
		{name: "total smaller than limit", total: 3, limit: 10, expected: 1},
		{name: "large values", total: 1000000, limit: 7, expected: 142858},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name     string  `db:"name"`
		Floor    int     `db:"floor"`
		Price    float64 `db:"price_per_night"`
		Internal string  `db:""`
		NoTag    string
	}

	t.Run("non-zero fields are collected", func(t *testing.T) {
		req := updateRequest{
			Name:  "Deluxe Suite",
			Floor: 3,
			Price: 180.00,
		}

		fields := shared.TransformFields(req, "admin@hotelier.local")

		if fields["name"] != "Deluxe Suite" {
			t.Errorf("expected name field, got %v", fields["name"])
		}

		if fields["floor"] != 3 {
			t.Errorf("expected floor field, got %v", fields["floor"])
		}

		if fields["price_per_night"] != 180.00 {
			t.Errorf("expected price_per_night field, got %v", fields["price_per_night"])
		}
	})

	t.Run("zero fields are skipped", func(t *testing.T) {
		req := updateRequest{Name: "Standard Room"}

		fields := shared.TransformFields(req, "admin@hotelier.local")

		if _, ok := fields["floor"]; ok {
			t.Error("expected zero floor to be skipped")
		}

		if _, ok := fields["price_per_night"]; ok {
			t.Error("expected zero price to be skipped")
		}
	})

	t.Run("untagged fields are skipped", func(t *testing.T) {
		req := updateRequest{Internal: "secret", NoTag: "ignored"}

		fields := shared.TransformFields(req, "admin@hotelier.local")

		for key := range fields {
			if key != constant.FieldModifiedAt && key != constant.FieldModifiedBy {
				t.Errorf("unexpected field %s", key)
			}
		}
	})

	t.Run("audit fields are always stamped", func(t *testing.T) {
		fields := shared.TransformFields(updateRequest{}, "staff@hotelier.local")

		modifiedAt, ok := fields[constant.FieldModifiedAt].(time.Time)
		if !ok {
			t.Fatalf("expected modified_at to be time.Time, got %T", fields[constant.FieldModifiedAt])
		}

		if modifiedAt.IsZero() {
			t.Error("expected modified_at to be set")
		}

		if fields[constant.FieldModifiedBy] != "staff@hotelier.local" {
			t.Errorf("expected modified_by to be staff@hotelier.local, got %v", fields[constant.FieldModifiedBy])
		}
	})
}
