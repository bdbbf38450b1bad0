package handler

import (
	"log/slog"
	"net/http"

	"locallibrary/internal/http-api/dto"
	"locallibrary/internal/http-api/middleware"
	"locallibrary/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public, read-only catalog.
type CatalogHandler struct {
	catalog service.CatalogService
	books   service.BookService
	authors service.AuthorService
	logger  *slog.Logger
}

func NewCatalogHandler(catalog service.CatalogService, books service.BookService, authors service.AuthorService, logger *slog.Logger) *CatalogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogHandler{catalog: catalog, books: books, authors: authors, logger: logger}
}

func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog/summary", h.Summary)
	rg.GET("/catalog/search", h.Search)
	rg.GET("/books", h.ListBooks)
	rg.GET("/books/:id", h.GetBook)
	rg.GET("/authors", h.ListAuthors)
	rg.GET("/authors/:id", h.GetAuthor)
}

func (h *CatalogHandler) Summary(c *gin.Context) {
	summary, err := h.catalog.Summary(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *CatalogHandler) Search(c *gin.Context) {
	result, err := h.catalog.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromSearch(result))
}

func (h *CatalogHandler) ListBooks(c *gin.Context) {
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

func (h *CatalogHandler) GetBook(c *gin.Context) {
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

func (h *CatalogHandler) ListAuthors(c *gin.Context) {
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

func (h *CatalogHandler) GetAuthor(c *gin.Context) {
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
