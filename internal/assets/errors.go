package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrScaleNotFound indicates the requested scale definition does not exist.
	ErrScaleNotFound = errors.New("scale not found")

	// ErrInvalidScale indicates a scale definition could not be decoded or
	// has too few stops.
	ErrInvalidScale = errors.New("invalid scale definition")

	// ErrInvalidAssetName indicates the asset name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the configured base path is not a valid directory.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error occurred while reading an asset file.
	ErrAssetRead = errors.New("failed to read asset")

	// ErrPathTraversal indicates an attempt to access files outside the base path.
	ErrPathTraversal = errors.New("path traversal detected")
)
