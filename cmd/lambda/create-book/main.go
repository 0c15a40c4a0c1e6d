// Command create-book is the Lambda function behind POST /books.
package main

import "github.com/aoideee/book-catalog/internal/gateway"

func main() {
	gateway.Start(gateway.CreateBook)
}
