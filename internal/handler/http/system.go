package http

import (
	"net/http"

	"github.com/homelesson/lms-backend-go/internal/handler/http/response"
	"github.com/homelesson/lms-backend-go/internal/pkg/database"
)

type SystemHandler interface {
	Root(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type systemHandlerImpl struct {
	db *database.DB
}

func NewSystemHandler(db *database.DB) SystemHandler {
	return &systemHandlerImpl{db: db}
}

// Root implements SystemHandler
func (h *systemHandlerImpl) Root(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{
		"service": "lms-backend",
		"status":  "running",
	})
}

// Health implements SystemHandler
func (h *systemHandlerImpl) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		response.InternalServerError(w, "Database unreachable")
		return
	}

	response.Success(w, map[string]string{"status": "healthy"})
}
