package types

import "time"

// Address rows are created once and never updated; two submissions with
// field-wise-equal normalized values resolve to the same AddressKey and
// therefore the same row.
type Address struct {
	AddressKey string    `json:"address_key"`
	CountryID  string    `json:"country_id"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	ZipCode    string    `json:"zip_code"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
