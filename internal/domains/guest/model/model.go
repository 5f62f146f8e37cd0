package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID         = "id"
	FieldCustomerID = "customer_id"
	FieldName       = "name"
	FieldEmail      = "email"
	FieldIDNumber   = "id_number"
)

type Guest struct {
	ID           string     `db:"id"`
	CustomerID   string     `db:"customer_id"`
	Name         string     `db:"name"`
	Email        string     `db:"email"`
	Phone        string     `db:"phone"`
	Relationship string     `db:"relationship"`
	CheckIn      *time.Time `db:"check_in"`
	CheckOut     *time.Time `db:"check_out"`
	IDType       string     `db:"id_type"`
	IDNumber     string     `db:"id_number"`
	Notes        string     `db:"notes"`
	model.Metadata
}
