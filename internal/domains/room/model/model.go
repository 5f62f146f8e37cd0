package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"hotelier/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldNumber        = "number"
	FieldRoomType      = "room_type"
	FieldBeds          = "beds"
	FieldCapacity      = "capacity"
	FieldPricePerNight = "price_per_night"
	FieldFeatures      = "features"
	FieldStatus        = "status"
	FieldFloor         = "floor"
	FieldImage         = "image"
)

const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
	StatusReserved    = "reserved"
)

// allowedTransitions is the room status state machine. Occupied is entered
// only by booking creation and left only by checkout, so the admin edit path
// excludes it as a target.
var allowedTransitions = map[string][]string{
	StatusAvailable:   {StatusMaintenance, StatusReserved},
	StatusOccupied:    {},
	StatusMaintenance: {StatusAvailable, StatusReserved},
	StatusReserved:    {StatusAvailable, StatusMaintenance},
}

var ErrInvalidStatus = errors.New("invalid room status")

func ValidStatus(status string) bool {
	switch status {
	case StatusAvailable, StatusOccupied, StatusMaintenance, StatusReserved:
		return true
	default:
		return false
	}
}

// CanTransition reports whether an admin status edit from one status to
// another is allowed.
func CanTransition(from, to string) bool {
	targets, ok := allowedTransitions[from]
	if !ok {
		return false
	}

	for _, target := range targets {
		if target == to {
			return true
		}
	}

	return false
}

// BedConfig maps a bed type to how many of it the room has. Stored as JSONB.
type BedConfig map[string]int

func (b BedConfig) Value() (driver.Value, error) {
	if b == nil {
		return []byte("{}"), nil
	}

	raw, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bed config: %w", err)
	}

	return raw, nil
}

func (b *BedConfig) Scan(src any) error {
	if src == nil {
		*b = BedConfig{}

		return nil
	}

	var raw []byte

	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported bed config source type %T", src)
	}

	if err := json.Unmarshal(raw, b); err != nil {
		return fmt.Errorf("failed to unmarshal bed config: %w", err)
	}

	return nil
}

type Room struct {
	ID            string         `db:"id"`
	Number        string         `db:"number"`
	RoomType      string         `db:"room_type"`
	Beds          BedConfig      `db:"beds"`
	Capacity      int            `db:"capacity"`
	PricePerNight float64        `db:"price_per_night"`
	Features      pq.StringArray `db:"features"`
	Status        string         `db:"status"`
	Floor         int            `db:"floor"`
	Image         string         `db:"image"`
	model.Metadata
}
