// Package models holds the domain entities exchanged with the backend.
// JSON tags follow the backend's field naming.
package models

// Book is a listing published for sale.
type Book struct {
	ID          int     `json:"id"`
	Title       string  `json:"titulo"`
	Author      string  `json:"autor"`
	Price       float64 `json:"preco"`
	Condition   string  `json:"estado"`
	Description string  `json:"descricao"`
	CategoryID  string  `json:"categoria_id"`
	Image       Image   `json:"imagem"`
	SellerPhone string  `json:"vendedorTelefone"`
}

// Image is the stored listing photo.
type Image struct {
	URL string `json:"url"`
}

// Conditions accepted by the listing form.
var BookConditions = []string{"Novo", "Usado - Bom", "Usado - Regular", "Usado - Ruim"}

// NewBook carries the fields of a listing being created. The image travels
// separately as a multipart file part.
type NewBook struct {
	Title       string
	Author      string
	Price       string
	Condition   string
	Description string
	CategoryID  string
}

// Category classifies listings. The backend is inconsistent about the name
// field ("nome" vs "title"); the service layer normalizes it.
type Category struct {
	ID   string
	Name string
}
