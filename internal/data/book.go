// Package data provides the data models and database interaction logic
// for the book catalog.
package data

import "time"

// Allowed values for the status and rating columns. They mirror the CHECK
// constraints on the books table.
var (
	Statuses = []string{"available", "borrowed", "reserved", "lost"}
	Ratings  = []string{"low", "medium", "high", "excellent"}
)

const (
	DefaultStatus = "available"
	DefaultRating = "medium"
)

// Book represents a single book record stored in the database.
// It maps directly to a row in the "books" table.
type Book struct {
	ID        string    `json:"book_id"`    // UUID generated on insert when empty
	Title     string    `json:"title"`      // Title of the book
	Author    string    `json:"author"`     // Author's name
	Genre     *string   `json:"genre"`      // Optional, rendered as null when absent
	Year      *int      `json:"year"`       // Optional publication year, never negative
	Status    string    `json:"status"`     // Lending status, see Statuses
	Rating    string    `json:"rating"`     // Reader rating, see Ratings
	Tags      []string  `json:"tags"`       // Always an array in responses
	CreatedAt time.Time `json:"created_at"` // Set once at creation
	UpdatedAt time.Time `json:"updated_at"` // Refreshed on every update
}

// applyDefaults fills the fields that have a default value in the schema.
func (b *Book) applyDefaults() {
	if b.Status == "" {
		b.Status = DefaultStatus
	}
	if b.Rating == "" {
		b.Rating = DefaultRating
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
}

// CreateBookInput holds the fields a client may send when creating a book.
// Pointers distinguish "not provided" from zero values so defaults can be
// applied and required fields reported.
type CreateBookInput struct {
	ID     *string  `json:"book_id"`
	Title  *string  `json:"title"`
	Author *string  `json:"author"`
	Genre  *string  `json:"genre"`
	Year   *int     `json:"year"`
	Status *string  `json:"status"`
	Rating *string  `json:"rating"`
	Tags   []string `json:"tags"`
}

// UpdateBookInput holds the fields a client may supply when updating a book.
// Every field is a pointer so we can distinguish between "not provided" (nil)
// and "intentionally set to zero/empty". Only non-nil fields are applied.
// book_id, created_at and updated_at are not listed and therefore ignored.
type UpdateBookInput struct {
	Title  *string   `json:"title"`
	Author *string   `json:"author"`
	Genre  *string   `json:"genre"`
	Year   *int      `json:"year"`
	Status *string   `json:"status"`
	Rating *string   `json:"rating"`
	Tags   *[]string `json:"tags"`
}

// Book builds a new record from the input. Zero-valued fields are filled in
// by BookModel.Insert.
func (in CreateBookInput) Book() *Book {
	book := &Book{
		Genre: in.Genre,
		Year:  in.Year,
		Tags:  in.Tags,
	}
	if in.ID != nil {
		book.ID = *in.ID
	}
	if in.Title != nil {
		book.Title = *in.Title
	}
	if in.Author != nil {
		book.Author = *in.Author
	}
	if in.Status != nil {
		book.Status = *in.Status
	}
	if in.Rating != nil {
		book.Rating = *in.Rating
	}
	book.applyDefaults()
	return book
}

// Apply copies the provided fields onto book, leaving the rest untouched.
func (in UpdateBookInput) Apply(book *Book) {
	if in.Title != nil {
		book.Title = *in.Title
	}
	if in.Author != nil {
		book.Author = *in.Author
	}
	if in.Genre != nil {
		book.Genre = in.Genre
	}
	if in.Year != nil {
		book.Year = in.Year
	}
	if in.Status != nil {
		book.Status = *in.Status
	}
	if in.Rating != nil {
		book.Rating = *in.Rating
	}
	if in.Tags != nil {
		book.Tags = *in.Tags
	}
	book.applyDefaults()
}
