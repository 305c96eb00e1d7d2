package utils

import (
	"path/filepath"
	"strings"
)

// SupportedExtensions lists the image file types the image pane can decode.
var SupportedExtensions = []string{".jpg", ".png", ".jpeg", ".bmp", ".gif"}

// IsValidExtension checks for the supported extensions.
func IsValidExtension(ext string, extensions []string) bool {
	ext = strings.ToLower(ext)
	for _, ex := range extensions {
		if ex == ext {
			return true
		}
	}
	return false
}

// IsImageFile reports whether the file name carries one of the supported
// image extensions.
func IsImageFile(name string) bool {
	return IsValidExtension(filepath.Ext(name), SupportedExtensions)
}
