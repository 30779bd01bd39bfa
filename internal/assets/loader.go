package assets

// AssetLoader defines the contract for loading color scale definitions.
type AssetLoader interface {
	// LoadScale loads a scale definition by name (without .yaml extension).
	// Returns ErrScaleNotFound if the scale doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadScale(name string) (*ScaleDef, error)

	// ListScales returns the names of all scales the loader can provide,
	// sorted alphabetically.
	ListScales() ([]string, error)
}
