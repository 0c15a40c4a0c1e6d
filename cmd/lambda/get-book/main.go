// Command get-book is the Lambda function behind GET /books/{id}.
package main

import "github.com/aoideee/book-catalog/internal/gateway"

func main() {
	gateway.Start(gateway.ShowBook)
}
