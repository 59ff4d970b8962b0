package api

import "fmt"

// Backend routes. The backend API is an external contract; paths are used
// verbatim, including the mixed-case review routes.
const (
	RouteLogin          = "/login"
	RouteRegister       = "/cadastro"
	RouteLogout         = "/logout"
	RouteForgotPassword = "/esqueci-senha"
	RouteValidateCode   = "/validar-codigo"
	RouteResetPassword  = "/redefinir-senha"
	RouteCategories     = "/categorias"
	RouteBooks          = "/livros"
	RouteCreateBook     = "/livros/cadastrar"
	RouteReviews        = "/Review"
)

func BookPath(id int) string { return fmt.Sprintf("%s/%d", RouteBooks, id) }

func MyBooksPath(userID int) string { return fmt.Sprintf("%s/meus_livros/%d", RouteBooks, userID) }

func DeleteBookPath(id int) string { return fmt.Sprintf("%s/deletar/%d", RouteBooks, id) }

func BookReviewsPath(bookID int) string { return fmt.Sprintf("%s/%d", RouteReviews, bookID) }

func DeleteReviewPath(id int) string {
	return fmt.Sprintf("%s/DeletarComentario/%d", RouteReviews, id)
}

func UserPath(id int) string { return fmt.Sprintf("/users/%d", id) }
