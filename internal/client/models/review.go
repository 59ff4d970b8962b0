package models

// Review is a buyer's rating of a book or its seller.
type Review struct {
	ID      int    `json:"id"`
	BookID  int    `json:"livroId"`
	User    string `json:"usuario"`
	Rating  int    `json:"nota"`
	Comment string `json:"comentario"`
}

// NewReview is the creation payload.
type NewReview struct {
	BookID  int    `json:"livroId"`
	Rating  int    `json:"nota"`
	Comment string `json:"comentario"`
}
