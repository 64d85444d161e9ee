package utils

import "github.com/google/uuid"

// TraceIDGenerator produces request trace identifiers.
type TraceIDGenerator struct {
}

func NewTraceIDGenerator() *TraceIDGenerator {
	return &TraceIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, or a random UUIDv4 if the clock
// source fails.
func (g *TraceIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
