package handler

import (
	"log/slog"
	"net/http"

	"locallibrary/internal/http-api/dto"
	"locallibrary/internal/http-api/middleware"
	"locallibrary/internal/http-api/models"
	"locallibrary/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// CRUDHandler exposes catalog maintenance. Every route needs an
// authenticated caller; no further capability is checked.
type CRUDHandler struct {
	authors service.AuthorService
	books   service.BookService
	copies  service.CopyService
	genres  service.GenreService
	logger  *slog.Logger
}

func NewCRUDHandler(authors service.AuthorService, books service.BookService, copies service.CopyService, genres service.GenreService, logger *slog.Logger) *CRUDHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CRUDHandler{authors: authors, books: books, copies: copies, genres: genres, logger: logger}
}

func (h *CRUDHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/authors", h.ListAuthors)
	rg.POST("/authors", h.CreateAuthor)
	rg.GET("/authors/:id", h.GetAuthor)
	rg.PUT("/authors/:id", h.UpdateAuthor)
	rg.DELETE("/authors/:id", h.DeleteAuthor)

	rg.GET("/books", h.ListBooks)
	rg.POST("/books", h.CreateBook)
	rg.GET("/books/:id", h.GetBook)
	rg.PUT("/books/:id", h.UpdateBook)
	rg.DELETE("/books/:id", h.DeleteBook)

	rg.GET("/copies", h.ListCopies)
	rg.POST("/copies", h.CreateCopy)
	rg.GET("/copies/:id", h.GetCopy)
	rg.PUT("/copies/:id", h.UpdateCopy)
	rg.DELETE("/copies/:id", h.DeleteCopy)

	rg.GET("/genres", h.ListGenres)
	rg.POST("/genres", h.CreateGenre)
	rg.GET("/languages", h.ListLanguages)
	rg.POST("/languages", h.CreateLanguage)
}

// Authors

func (h *CRUDHandler) ListAuthors(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}
	result, err := h.authors.List(c.Request.Context(), page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapPage(result, dto.FromAuthor))
}

func (h *CRUDHandler) GetAuthor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	detail, err := h.authors.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromAuthorDetail(detail))
}

func (h *CRUDHandler) CreateAuthor(c *gin.Context) {
	h.saveAuthor(c, 0, http.StatusCreated)
}

func (h *CRUDHandler) UpdateAuthor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	h.saveAuthor(c, id, http.StatusOK)
}

func (h *CRUDHandler) saveAuthor(c *gin.Context, id int64, status int) {
	var req dto.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	author, err := req.Model(id)
	if err != nil {
		badRequest(c, err)
		return
	}

	viewer := middleware.CurrentViewer(c)
	if id == 0 {
		err = h.authors.Create(c.Request.Context(), viewer, author)
	} else {
		err = h.authors.Update(c.Request.Context(), viewer, author)
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(status, dto.FromAuthor(*author))
}

func (h *CRUDHandler) DeleteAuthor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.authors.Delete(c.Request.Context(), middleware.CurrentViewer(c), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Books

func (h *CRUDHandler) ListBooks(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}
	result, err := h.books.List(c.Request.Context(), page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapPage(result, dto.FromBook))
}

func (h *CRUDHandler) GetBook(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	detail, err := h.books.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromBookDetail(detail, middleware.CurrentViewer(c)))
}

func (h *CRUDHandler) CreateBook(c *gin.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	book, err := h.books.Create(c.Request.Context(), middleware.CurrentViewer(c), req.Input())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromBook(*book))
}

func (h *CRUDHandler) UpdateBook(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	book, err := h.books.Update(c.Request.Context(), middleware.CurrentViewer(c), id, req.Input())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromBook(*book))
}

func (h *CRUDHandler) DeleteBook(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.books.Delete(c.Request.Context(), middleware.CurrentViewer(c), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Copies

func (h *CRUDHandler) ListCopies(c *gin.Context) {
	page, ok := pageParam(c)
	if !ok {
		return
	}
	viewer := middleware.CurrentViewer(c)
	result, err := h.copies.List(c.Request.Context(), viewer, page)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapPage(result, copyRenderer(viewer)))
}

func (h *CRUDHandler) GetCopy(c *gin.Context) {
	viewer := middleware.CurrentViewer(c)
	bi, err := h.copies.Get(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCopy(*bi, viewer))
}

func (h *CRUDHandler) CreateCopy(c *gin.Context) {
	h.saveCopy(c, "", http.StatusCreated)
}

func (h *CRUDHandler) UpdateCopy(c *gin.Context) {
	h.saveCopy(c, c.Param("id"), http.StatusOK)
}

func (h *CRUDHandler) saveCopy(c *gin.Context, id string, status int) {
	var req dto.CopyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	in, err := req.Input()
	if err != nil {
		badRequest(c, err)
		return
	}

	viewer := middleware.CurrentViewer(c)
	var saved *models.BookInstance
	if id == "" {
		saved, err = h.copies.Create(c.Request.Context(), viewer, in)
	} else {
		saved, err = h.copies.Update(c.Request.Context(), viewer, id, in)
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(status, dto.FromCopy(*saved, viewer))
}

func (h *CRUDHandler) DeleteCopy(c *gin.Context) {
	if err := h.copies.Delete(c.Request.Context(), middleware.CurrentViewer(c), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Genres and languages

func (h *CRUDHandler) ListGenres(c *gin.Context) {
	list, err := h.genres.ListGenres(c.Request.Context(), middleware.CurrentViewer(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, dto.FromGenre))
}

func (h *CRUDHandler) CreateGenre(c *gin.Context) {
	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	g, err := h.genres.CreateGenre(c.Request.Context(), middleware.CurrentViewer(c), req.Name)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromGenre(*g))
}

func (h *CRUDHandler) ListLanguages(c *gin.Context) {
	list, err := h.genres.ListLanguages(c.Request.Context(), middleware.CurrentViewer(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(list, dto.FromLanguage))
}

func (h *CRUDHandler) CreateLanguage(c *gin.Context) {
	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	l, err := h.genres.CreateLanguage(c.Request.Context(), middleware.CurrentViewer(c), req.Name)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromLanguage(*l))
}

func mapSlice[S, T any](in []S, convert func(S) T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, convert(v))
	}
	return out
}
