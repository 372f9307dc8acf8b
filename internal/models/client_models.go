package models

// Client is a customer of the store. Nothing about it is unique.
type Client struct {
	ID         int64  `json:"id,omitempty" db:"id"`
	Name       string `json:"nome" db:"nome"`
	NationalID string `json:"cpf" db:"cpf"`
	Email      string `json:"email" db:"email"`
	Phone      string `json:"telefone" db:"telefone"`
	Address    string `json:"endereco" db:"endereco"`
}
