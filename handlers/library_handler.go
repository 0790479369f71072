package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"divyaAPI/internal/book"
	"divyaAPI/internal/quote"
	"divyaAPI/services"
)

// LibraryHandler serves quotes and books.
type LibraryHandler struct {
	quoteService *services.QuoteService
	bookService  *services.BookService
	logger       *zap.Logger
}

func NewLibraryHandler(quoteService *services.QuoteService, bookService *services.BookService, logger *zap.Logger) *LibraryHandler {
	return &LibraryHandler{
		quoteService: quoteService,
		bookService:  bookService,
		logger:       logger,
	}
}

func (h *LibraryHandler) GetRandomQuote(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q, err := h.quoteService.RandomQuote(ctx)
	if err != nil {
		respondWithAppError(w, h.logger, err, "Failed to fetch quote")
		return
	}

	respondWithJSON(w, http.StatusOK, q)
}

func (h *LibraryHandler) GetQuotes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	quotes, err := h.quoteService.ListQuotes(ctx)
	if err != nil {
		respondWithAppError(w, h.logger, err, "Failed to fetch quotes")
		return
	}

	respondWithJSON(w, http.StatusOK, quotes)
}

func (h *LibraryHandler) AddQuote(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req quote.CreateQuoteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	q, err := h.quoteService.CreateQuote(ctx, &req)
	if err != nil {
		respondWithAppError(w, h.logger, err, "Failed to create quote")
		return
	}

	respondWithJSON(w, http.StatusOK, q)
}

func (h *LibraryHandler) GetBooks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	books, err := h.bookService.ListBooks(ctx)
	if err != nil {
		respondWithAppError(w, h.logger, err, "Failed to fetch books")
		return
	}

	respondWithJSON(w, http.StatusOK, books)
}

func (h *LibraryHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	b, err := h.bookService.GetBook(ctx, mux.Vars(r)["id"])
	if err != nil {
		respondWithAppError(w, h.logger, err, "Failed to fetch book")
		return
	}

	respondWithJSON(w, http.StatusOK, b)
}

func (h *LibraryHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req book.CreateBookRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.bookService.CreateBook(ctx, &req)
	if err != nil {
		respondWithAppError(w, h.logger, err, "Failed to create book")
		return
	}

	respondWithJSON(w, http.StatusOK, b)
}
