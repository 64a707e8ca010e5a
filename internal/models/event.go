package models

import "time"

// Event.SecretCode is kept in plaintext server-side and is never serialized
// as is; admin responses carry it sealed in EventView.
type Event struct {
	ID           string     `json:"event_id" bson:"event_id"`
	Name         string     `json:"event_name" bson:"event_name"`
	Points       int        `json:"points" bson:"points"`
	SecretCode   string     `json:"-" bson:"secret_code"`
	Expired      bool       `json:"expired" bson:"expired"`
	Participants int        `json:"participants" bson:"participants"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
	CreatedBy    string     `json:"created_by,omitempty" bson:"created_by,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
	UpdatedBy    string     `json:"updated_by,omitempty" bson:"updated_by,omitempty"`
}

type EventView struct {
	Event
	SealedSecret string `json:"secret_code,omitempty"`
}

// EventUpdate holds the admin-editable fields; nil means unchanged.
type EventUpdate struct {
	Name       *string
	Points     *int
	Expired    *bool
	SecretCode *string
	UpdatedBy  string
	UpdatedAt  time.Time
}
