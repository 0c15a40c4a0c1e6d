package data

import (
	"strings"

	"github.com/aoideee/book-catalog/internal/validator"
)

// ValidateCreateBookInput records every constraint violation of a create
// payload on v.
func ValidateCreateBookInput(v *validator.Validator, in CreateBookInput) {
	v.Check(in.Title != nil, "title", "must be provided")
	v.Check(in.Author != nil, "author", "must be provided")
	if in.ID != nil {
		v.Check(strings.TrimSpace(*in.ID) != "", "book_id", "must not be empty")
		v.Check(len(*in.ID) <= 36, "book_id", "must not be more than 36 bytes long")
	}
	validateFields(v, in.Title, in.Author, in.Genre, in.Year, in.Status, in.Rating)
}

// ValidateUpdateBookInput checks the fields that are present; absent fields
// are left as they are on the stored record.
func ValidateUpdateBookInput(v *validator.Validator, in UpdateBookInput) {
	validateFields(v, in.Title, in.Author, in.Genre, in.Year, in.Status, in.Rating)
}

func validateFields(v *validator.Validator, title, author, genre *string, year *int, status, rating *string) {
	if title != nil {
		v.Check(*title != "", "title", "must not be empty")
		v.Check(len(*title) <= 255, "title", "must not be more than 255 bytes long")
	}
	if author != nil {
		v.Check(*author != "", "author", "must not be empty")
		v.Check(len(*author) <= 255, "author", "must not be more than 255 bytes long")
	}
	if genre != nil {
		v.Check(len(*genre) <= 100, "genre", "must not be more than 100 bytes long")
	}
	if year != nil {
		v.Check(*year >= 0, "year", "must be greater than or equal to 0")
	}
	if status != nil {
		v.Check(validator.In(*status, Statuses...), "status", "must be one of "+strings.Join(Statuses, ", "))
	}
	if rating != nil {
		v.Check(validator.In(*rating, Ratings...), "rating", "must be one of "+strings.Join(Ratings, ", "))
	}
}
