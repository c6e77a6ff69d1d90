package asset

// Record represents one entry of an asset map document.
type Record struct {
	Name      string `json:"Name"`
	Container string `json:"Container"`
	Source    string `json:"Source"`
	PathID    int64  `json:"PathID"`
	Type      string `json:"Type"`
}
