// Command delete-book is the Lambda function behind DELETE /books/{id}.
package main

import "github.com/aoideee/book-catalog/internal/gateway"

func main() {
	gateway.Start(gateway.DeleteBook)
}
