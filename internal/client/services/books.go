package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/beantz/labersaler/internal/client/api"
	"github.com/beantz/labersaler/internal/client/models"
)

// ErrNoImage is returned by Create when no listing image was provided.
var ErrNoImage = errors.New("a listing requires an image")

// Image is a listing photo to upload. Name is the source file name; its
// extension drives the generated upload name and content type.
type Image struct {
	Name string
	Data io.Reader
}

// BookService covers the catalog: categories, listings, and the user's own
// published books.
type BookService interface {
	Categories(ctx context.Context) ([]models.Category, error)
	List(ctx context.Context) ([]models.Book, error)
	Get(ctx context.Context, id int) (*models.Book, error)
	Mine(ctx context.Context, userID int) ([]models.Book, error)
	Create(ctx context.Context, book models.NewBook, image Image) (string, error)
	Delete(ctx context.Context, id int) error
}

type bookService struct {
	api api.Caller
}

func NewBookService(c api.Caller) BookService {
	return &bookService{api: c}
}

// flexID tolerates category ids arriving as JSON numbers or strings.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

type categoryDTO struct {
	ID    flexID `json:"id"`
	Name  string `json:"nome"`
	Title string `json:"title"`
}

// Categories lists the book categories. The backend has shipped both a bare
// array and a {data: [...]} envelope, and both "nome" and "title" for the
// name; all four combinations are accepted.
func (s *bookService) Categories(ctx context.Context) ([]models.Category, error) {
	resp, err := s.api.Get(ctx, api.RouteCategories)
	if err != nil {
		return nil, err
	}

	raw := []byte(resp.Body)
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 {
		raw = envelope.Data
	}

	var dtos []categoryDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, err
	}

	categories := make([]models.Category, 0, len(dtos))
	for _, d := range dtos {
		name := d.Name
		if name == "" {
			name = d.Title
		}
		if name == "" {
			name = "Sem nome"
		}
		categories = append(categories, models.Category{ID: string(d.ID), Name: name})
	}
	return categories, nil
}

func (s *bookService) List(ctx context.Context) ([]models.Book, error) {
	resp, err := s.api.Get(ctx, api.RouteBooks)
	if err != nil {
		return nil, err
	}
	var books []models.Book
	if err := resp.Decode(&books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *bookService) Get(ctx context.Context, id int) (*models.Book, error) {
	resp, err := s.api.Get(ctx, api.BookPath(id))
	if err != nil {
		return nil, err
	}
	var book models.Book
	if err := resp.Decode(&book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *bookService) Mine(ctx context.Context, userID int) ([]models.Book, error) {
	resp, err := s.api.Get(ctx, api.MyBooksPath(userID))
	if err != nil {
		return nil, err
	}
	var books []models.Book
	if err := resp.Decode(&books); err != nil {
		return nil, err
	}
	return books, nil
}

// Create publishes a listing. The text fields and the image travel in one
// multipart request; the image gets a fresh collision-free name. Returns
// the backend's confirmation message.
func (s *bookService) Create(ctx context.Context, book models.NewBook, image Image) (string, error) {
	if image.Data == nil {
		return "", ErrNoImage
	}

	ext := strings.TrimPrefix(filepath.Ext(image.Name), ".")
	if ext == "" {
		ext = "jpg"
	}
	filename := "livro_" + uuid.NewString() + "." + ext

	form := api.NewForm().
		AddField("titulo", book.Title).
		AddField("autor", book.Author).
		AddField("preco", book.Price).
		AddField("estado", book.Condition).
		AddField("descricao", book.Description).
		AddField("categoria_id", book.CategoryID).
		AddFile("imagem", filename, "image/"+ext, image.Data)

	resp, err := s.api.Post(ctx, api.RouteCreateBook, form)
	if err != nil {
		return "", err
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := resp.Decode(&payload); err != nil {
		return "", err
	}
	return payload.Message, nil
}

func (s *bookService) Delete(ctx context.Context, id int) error {
	_, err := s.api.Delete(ctx, api.DeleteBookPath(id))
	return err
}
