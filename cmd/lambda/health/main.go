// Command health is the Lambda function behind GET /health.
package main

import "github.com/aoideee/book-catalog/internal/gateway"

func main() {
	gateway.StartHealth()
}
