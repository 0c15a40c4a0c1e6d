// Command list-books is the Lambda function behind GET /books.
package main

import "github.com/aoideee/book-catalog/internal/gateway"

func main() {
	gateway.Start(gateway.ListBooks)
}
