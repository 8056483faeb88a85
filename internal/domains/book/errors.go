package book

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookcatalog-backend/internal/shared/response"
)

var (
	ErrBookNotFound       = errors.New("book not found")
	ErrTitleAlreadyExists = errors.New("title already exists")
)

var bookErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrTitleAlreadyExists: {
		Status:  http.StatusBadRequest,
		Code:    "TITLE_EXISTS",
		Message: "A book with this title already exists",
	},
	ErrBookNotFound: {
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: "The specified book does not exist",
	},
}

// HandleBookError translates a service error into an HTTP response.
// Returns true when an error was written.
func HandleBookError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for sentinel, cfg := range bookErrorMap {
		if errors.Is(err, sentinel) {
			response.ErrorResponse(c, cfg.Status, cfg.Code, cfg.Message)
			return true
		}
	}

	log.Error().Err(err).Msg("book request failed")
	response.InternalServerError(c, "Internal server error")
	return true
}
