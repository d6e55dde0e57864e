package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pribylovaa/go-news-api/internal/models"
)

// NewsService — бизнес-логика ленты, которую вызывает хендлер.
type NewsService interface {
	Handle(ctx context.Context, req models.NewsRequest) (*models.NewsResult, error)
}

// Handlers агрегирует зависимости HTTP-хендлеров.
type Handlers struct {
	news NewsService
}

// New создаёт набор хендлеров.
func New(news NewsService) *Handlers {
	return &Handlers{news: news}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}
