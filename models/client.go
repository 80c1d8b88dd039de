package models

// Client is the persisted client record.
type Client struct {
	// ID is the store-assigned primary key. It is set once on insert
	// and never changed afterwards.
	ID int64 `json:"id"`

	// Name is the full name of the client.
	Name string `json:"name"`

	// CPF is the Brazilian individual taxpayer identifier.
	// It is stored as opaque text and is not checked for well-formedness.
	CPF string `json:"cpf"`

	// Income is the declared monthly income. Persisted as NUMERIC(15,2).
	Income float64 `json:"income"`

	// Children is the number of children of the client.
	Children int `json:"children"`

	// BirthDate is the calendar birth date (no time of day).
	BirthDate Date `json:"birthDate"`
}

// TableName returns the name of the database table
// associated with the Client model.
func (c Client) TableName() string {
	return "clients"
}

// ClientView is the transfer representation of a [Client] used by the
// service and HTTP layers. It mirrors every field of [Client].
//
// On input the ID is ignored: it is neither used to create a new record
// nor to overwrite the ID of an existing one.
type ClientView struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	CPF       string  `json:"cpf"`
	Income    float64 `json:"income"`
	Children  int     `json:"children"`
	BirthDate Date    `json:"birthDate"`
}

// NewClientView builds the output representation of client.
func NewClientView(client Client) ClientView {
	return ClientView{
		ID:        client.ID,
		Name:      client.Name,
		CPF:       client.CPF,
		Income:    client.Income,
		Children:  client.Children,
		BirthDate: client.BirthDate,
	}
}

// ToClient builds a new, not yet persisted [Client] from the view.
// The ID is left zero so that the store assigns it.
func (v ClientView) ToClient() Client {
	var client Client
	v.CopyTo(&client)
	return client
}

// CopyTo overwrites the five mutable fields of client with the values of
// the view. client.ID is left untouched.
func (v ClientView) CopyTo(client *Client) {
	client.Name = v.Name
	client.CPF = v.CPF
	client.Income = v.Income
	client.Children = v.Children
	client.BirthDate = v.BirthDate
}
