package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/wayfinder/pkg/domain"
)

// EncodeRegionIndex writes the index as 2-space indented JSON.
func EncodeRegionIndex(w io.Writer, index domain.RegionIndex) error {
	if index.Regions == nil {
		index = domain.NewRegionIndex()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(index); err != nil {
		return fmt.Errorf("failed to encode region index: %w", err)
	}
	return nil
}
