package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/beantz/labersaler/internal/client/models"
)

func TestReviewService_ListByBook(t *testing.T) {
	fc := &fakeCaller{Resp: ok(`[
		{"id":1,"usuario":"João","nota":5,"comentario":"Ótimo livro, recomendo!"},
		{"id":2,"usuario":"Maria","nota":4,"comentario":"Muito bom, mas um pouco longo."}
	]`)}
	svc := NewReviewService(fc)

	reviews, err := svc.ListByBook(context.Background(), 12)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	require.Equal(t, "João", reviews[0].User)
	require.Equal(t, 5, reviews[0].Rating)
	require.Equal(t, "/Review/12", fc.Calls[0].Path)
}

func TestReviewService_Create(t *testing.T) {
	fc := &fakeCaller{Resp: ok(`{"message":"ok"}`)}
	svc := NewReviewService(fc)

	review := models.NewReview{BookID: 12, Rating: 5, Comment: "Excelente"}
	require.NoError(t, svc.Create(context.Background(), review))

	require.Equal(t, http.MethodPost, fc.Calls[0].Method)
	require.Equal(t, "/Review", fc.Calls[0].Path)
	require.Equal(t, review, fc.Calls[0].Body)
}

func TestReviewService_Delete(t *testing.T) {
	fc := &fakeCaller{Resp: ok(`{}`)}
	svc := NewReviewService(fc)

	require.NoError(t, svc.Delete(context.Background(), 9))
	require.Equal(t, http.MethodDelete, fc.Calls[0].Method)
	require.Equal(t, "/Review/DeletarComentario/9", fc.Calls[0].Path)
}
