package author

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookcatalog-backend/internal/shared/response"
)

var (
	ErrInvalidLimit = errors.New("limit must be positive")
)

var authorErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrInvalidLimit: {
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: "limit must be a positive integer",
	},
}

// HandleAuthorError translates a service error into an HTTP response.
// Returns true when an error was written.
func HandleAuthorError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for sentinel, cfg := range authorErrorMap {
		if errors.Is(err, sentinel) {
			response.ErrorResponse(c, cfg.Status, cfg.Code, cfg.Message)
			return true
		}
	}

	log.Error().Err(err).Msg("author request failed")
	response.InternalServerError(c, "Internal server error")
	return true
}
