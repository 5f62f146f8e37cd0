package validator_test

import (
	"strings"
	"testing"

	"hotelier/shared/validator"
)

type createGuestForm struct {
	Name       string `validate:"required" json:"name"`
	Email      string `validate:"omitempty,email" json:"email"`
	Age        int    `validate:"gte=0,lte=120" json:"age"`
	DocumentID string `validate:"required" json:"document_id"`
	Role       string `validate:"omitempty,oneof=admin staff" json:"role"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *createGuestForm
		expectError bool
	}{
		{
			name: "valid struct",
			data: &createGuestForm{
				Name:       "John Doe",
				Email:      "john@example.com",
				Age:        25,
				DocumentID: "A1234567",
				Role:       "staff",
			},
		},
		{
			name: "missing required field",
			data: &createGuestForm{
				Email:      "john@example.com",
				Age:        25,
				DocumentID: "A1234567",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &createGuestForm{
				Name:       "John Doe",
				Email:      "invalid-email",
				Age:        25,
				DocumentID: "A1234567",
			},
			expectError: true,
		},
		{
			name: "age out of range",
			data: &createGuestForm{
				Name:       "John Doe",
				Email:      "john@example.com",
				Age:        150,
				DocumentID: "A1234567",
			},
			expectError: true,
		},
		{
			name: "invalid role",
			data: &createGuestForm{
				Name:       "John Doe",
				Email:      "john@example.com",
				Age:        25,
				DocumentID: "A1234567",
				Role:       "manager",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "test", tag: "required"},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "valid email", field: "test@example.com", tag: "email"},
		{name: "invalid email", field: "invalid-email", tag: "email", expectError: true},
		{name: "valid number in range", field: 25, tag: "gte=0,lte=100"},
		{name: "number out of range", field: 150, tag: "gte=0,lte=100", expectError: true},
		{name: "valid oneof", field: "admin", tag: "oneof=admin staff"},
		{name: "invalid oneof", field: "guest", tag: "oneof=admin staff", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"name":"John Doe","email":"john@example.com","age":25,"document_id":"A1234567"}`,
		},
		{
			name:        "invalid JSON",
			jsonBody:    `{"name":"John Doe","email":"invalid-email","age":25,"document_id":"A1234567"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"John Doe","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)

			var data createGuestForm

			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	err := validator.ValidateStruct(&createGuestForm{})

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()
	if !strings.Contains(errorMsg, "required") {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}

func TestValidationErrorHandling(t *testing.T) {
	data := &createGuestForm{
		Name:       "",
		Email:      "invalid",
		Age:        -1,
		DocumentID: "",
		Role:       "invalid",
	}

	err := validator.ValidateStruct(data)
	if err == nil {
		t.Fatal("expected validation error")
	}

	if err.Error() == "" {
		t.Error("expected non-empty error message")
	}
}
