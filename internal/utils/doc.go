// Package utils provides small helpers shared by the journal server and
// client: JSON response writing, a preconfigured resty client, trace id
// generation and monotonic record ids.
package utils
