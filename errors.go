package md2adoc

import "errors"

// Sentinel errors for library operations.
var (
	// Asset loading errors.
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// README rendering errors.
	ErrReadmeRender = errors.New("README template rendering failed")
)
