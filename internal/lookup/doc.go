package lookup

// Package lookup implements the HTTP client for the animal sounds backend:
// the sound list per animal, the call-for text per (animal, sound) pair, the
// animal catalog rendered on the index page, and the health endpoint. Every
// non-2xx status, transport error and undecodable body is returned as an error.
