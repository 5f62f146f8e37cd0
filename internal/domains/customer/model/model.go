package model

import "hotelier/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID           = "id"
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldAddress      = "address"
	FieldCurrentGuest = "current_guest"
)

type Customer struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	Phone        string `db:"phone"`
	Address      string `db:"address"`
	CurrentGuest bool   `db:"current_guest"`
	model.Metadata
}
