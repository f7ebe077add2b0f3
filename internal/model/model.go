package model

// Model is an immutable named and versioned data record. The id and creation
// timestamp are assigned by the service at insertion time, never by the caller.
type Model struct {
	ID         string
	Name       string
	Version    string
	Data       string
	CreateTime int64 // milliseconds since epoch
}

// CreateParams carries the caller-supplied fields of a new model.
type CreateParams struct {
	Name    string
	Version string
	Data    string
}
