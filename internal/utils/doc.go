// Package utils holds small helpers shared by the server and the client:
// JSON response writing and the preconfigured resty HTTP client.
package utils
