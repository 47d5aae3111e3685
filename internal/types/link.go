package types

// Link associates a user with an address. The pair is the primary key; there
// are no independent attributes. An address referenced by zero links is an
// orphan and is reclaimed during user deletion.
type Link struct {
	UserKey    string `json:"user_key"`
	AddressKey string `json:"address_key"`
}
