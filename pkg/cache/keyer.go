package cache

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Kind     string  `json:"kind"` // page, schematic, stl, diagram
	Page     int     `json:"page"`
	Format   string  `json:"format"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Scale    float64 `json:"scale"`
	Printing bool    `json:"printing"`
}

// Keyer builds cache keys.
type Keyer interface {
	// SetKey is the key of a computed piece set, identified by the hash of
	// its inputs.
	SetKey(inputsHash string) string
	// ArtifactKey is the key of one rendered artifact of a set.
	ArtifactKey(setHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes every component into the key.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) SetKey(inputsHash string) string {
	return hashKey("set", inputsHash)
}

func (DefaultKeyer) ArtifactKey(setHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", setHash, opts)
}

var _ Keyer = DefaultKeyer{}
