package author

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

const birthDateLayout = "2006-01-02"

// CreateAuthorRequest carries the POST /authors parameters.
type CreateAuthorRequest struct {
	Name      string
	Email     string
	BirthDate *time.Time
	Country   *string
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

// AuthorResponse is the wire representation of an author. Contribution is
// only meaningful when the author is returned in the context of a specific
// book; it is null otherwise.
type AuthorResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	BirthDate    *string `json:"birthDate"`
	Country      *string `json:"country"`
	CreatedAt    string  `json:"createdAt"`
	Contribution *string `json:"contribution"`
}

// AuthorRevenue is one row of the top-authors-by-revenue report.
type AuthorRevenue struct {
	Name         string          `json:"name"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

func ToAuthorResponse(a Author) AuthorResponse {
	resp := AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Country:   a.Country,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
	if a.BirthDate != nil {
		birthDate := a.BirthDate.Format(birthDateLayout)
		resp.BirthDate = &birthDate
	}
	return resp
}
