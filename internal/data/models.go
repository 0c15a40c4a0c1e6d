// internal/data/models.go
package data

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Models is a top-level container that groups all database model types together.
// It is built once by the process root and handed to the request handlers.
type Models struct {
	Books BookModel // Handles all database operations for the books table
}

// NewModels constructs a Models value wired up to the given database connection pool.
func NewModels(db *sql.DB) Models {
	return Models{
		Books: BookModel{DB: db},
	}
}

// BookModel wraps a *sql.DB connection pool and provides methods for
// creating, reading, updating, and deleting book records.
type BookModel struct {
	DB *sql.DB // Shared database connection pool

	now func() time.Time // overridden in tests
}

func (m BookModel) clock() time.Time {
	if m.now != nil {
		return m.now().UTC().Truncate(time.Microsecond)
	}
	return time.Now().UTC().Truncate(time.Microsecond)
}

const bookColumns = `book_id, title, author, genre, year, status, rating, tags, created_at, updated_at`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanBook reads one row and normalizes it into a Book. tags and the two
// timestamps are scanned as raw values so that NormalizeTags and
// NormalizeTime can deal with whatever representation the driver produced.
func scanBook(row rowScanner) (*Book, error) {
	var (
		book               Book
		genre, status      sql.NullString
		rating             sql.NullString
		year               sql.NullInt64
		rawTags            any
		createdAt, updated any
	)

	err := row.Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&genre,
		&year,
		&status,
		&rating,
		&rawTags,
		&createdAt,
		&updated,
	)
	if err != nil {
		return nil, err
	}

	if genre.Valid {
		g := genre.String
		book.Genre = &g
	}
	if year.Valid {
		y := int(year.Int64)
		book.Year = &y
	}
	book.Status = status.String
	book.Rating = rating.String
	book.Tags = NormalizeTags(rawTags)
	book.CreatedAt = NormalizeTime(createdAt)
	book.UpdatedAt = NormalizeTime(updated)
	book.applyDefaults()

	return &book, nil
}

func nullableYear(year *int) any {
	if year == nil {
		return nil
	}
	return int64(*year)
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// Insert adds a new book record to the database.
// Missing book_id, timestamps, status, rating and tags are filled in before
// the row is written, and the book struct is updated in place.
func (m BookModel) Insert(ctx context.Context, book *Book) error {
	if book.ID == "" {
		book.ID = uuid.NewString()
	}
	if book.CreatedAt.IsZero() {
		book.CreatedAt = m.clock()
	}
	book.UpdatedAt = book.CreatedAt
	book.applyDefaults()

	tags, err := EncodeTags(book.Tags)
	if err != nil {
		return &DBError{Op: "insert book", Err: err}
	}

	query := `
		INSERT INTO books (book_id, title, author, genre, year, status, rating, created_at, updated_at, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = m.DB.ExecContext(ctx, query,
		book.ID,
		book.Title,
		book.Author,
		nullableString(book.Genre),
		nullableYear(book.Year),
		book.Status,
		book.Rating,
		book.CreatedAt,
		book.UpdatedAt,
		tags,
	)
	return classifyError("insert book", err)
}

// Get retrieves a single book by its primary key.
// Returns ErrRecordNotFound if no book with the given id exists.
func (m BookModel) Get(ctx context.Context, id string) (*Book, error) {
	if id == "" {
		return nil, ErrRecordNotFound
	}

	query := `SELECT ` + bookColumns + ` FROM books WHERE book_id = $1`

	book, err := scanBook(m.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, classifyError("get book", err)
		}
	}
	return book, nil
}

// GetAll retrieves every book, newest first.
// An empty table yields an empty, non-nil slice.
func (m BookModel) GetAll(ctx context.Context) ([]*Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY created_at DESC`

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, classifyError("list books", err)
	}
	// Always close the result set when we are done to free the database connection.
	defer rows.Close()

	books := []*Book{}
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, classifyError("list books", err)
		}
		books = append(books, book)
	}

	if err = rows.Err(); err != nil {
		return nil, classifyError("list books", err)
	}

	return books, nil
}

// Update overwrites every mutable column of the row identified by id and
// stamps updated_at with the current time; book.UpdatedAt is ignored.
// Returns ErrRecordNotFound if no row matched, otherwise the re-read row.
func (m BookModel) Update(ctx context.Context, id string, book *Book) (*Book, error) {
	if id == "" {
		return nil, ErrRecordNotFound
	}
	book.applyDefaults()

	tags, err := EncodeTags(book.Tags)
	if err != nil {
		return nil, &DBError{Op: "update book", Err: err}
	}

	query := `
		UPDATE books
		SET title = $1, author = $2, genre = $3, year = $4, status = $5,
		    rating = $6, updated_at = $7, tags = $8
		WHERE book_id = $9`

	args := []any{
		book.Title,
		book.Author,
		nullableString(book.Genre),
		nullableYear(book.Year),
		book.Status,
		book.Rating,
		m.clock(),
		tags,
		id,
	}

	result, err := m.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, classifyError("update book", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, classifyError("update book", err)
	}
	if rowsAffected == 0 {
		return nil, ErrRecordNotFound
	}

	return m.Get(ctx, id)
}

// Delete removes the book with the given id and reports whether a row was
// actually removed.
func (m BookModel) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, nil
	}

	query := `DELETE FROM books WHERE book_id = $1`

	result, err := m.DB.ExecContext(ctx, query, id)
	if err != nil {
		return false, classifyError("delete book", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, classifyError("delete book", err)
	}

	return rowsAffected > 0, nil
}

// pingTimeout bounds the health probe so a dead database cannot hang it.
const pingTimeout = 2 * time.Second

// Ping checks that the database answers a trivial query within pingTimeout.
func (m BookModel) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	var one int
	if err := m.DB.QueryRowContext(ctx, `SELECT 1`).Scan(&one); err != nil {
		return classifyError("ping", err)
	}
	return nil
}
