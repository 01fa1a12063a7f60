// Package courtapi wraps the court recording backend's REST API.
//
// It exposes typed operations for the read-only catalog collections
// (recordings, courts, courtrooms), the user directory, and the two
// collaborative collections owned per case: transcription assignments and
// transcript comments. Responses are decoded into domain structs; error
// bodies are read as plain diagnostic text and carried on StatusError.
package courtapi
