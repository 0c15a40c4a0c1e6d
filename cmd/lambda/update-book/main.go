// Command update-book is the Lambda function behind PUT /books/{id}.
package main

import "github.com/aoideee/book-catalog/internal/gateway"

func main() {
	gateway.Start(gateway.UpdateBook)
}
