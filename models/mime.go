package models

import "strings"

// Accepted attachment MIME types. Anything else is rejected at the input
// boundary, before the orchestrator ever sees the file.
const (
	MimePNG  = "image/png"
	MimeJPEG = "image/jpeg"
	MimeWebP = "image/webp"
	MimePDF  = "application/pdf"
	MimeDoc  = "application/msword"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var acceptedMimeTypes = map[string]bool{
	MimePNG:  true,
	MimeJPEG: true,
	MimeWebP: true,
	MimePDF:  true,
	MimeDoc:  true,
	MimeDocx: true,
}

// AcceptedMimeType reports whether mimeType may be attached at all.
func AcceptedMimeType(mimeType string) bool {
	return acceptedMimeTypes[strings.ToLower(strings.TrimSpace(mimeType))]
}

// IsImageMimeType reports whether the attachment goes through the inline
// image path rather than text extraction.
func IsImageMimeType(mimeType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(mimeType)), "image/")
}
