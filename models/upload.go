package models

import "io"

// Upload is a single uploaded file as received from a multipart form.
type Upload struct {
	// FileName is the client supplied file name, unsanitised.
	FileName string

	// Content streams the file bytes.
	Content io.Reader
}
