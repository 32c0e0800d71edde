package brd

import (
	"fmt"
	"os"
	"path/filepath"
)

// Fragment file names looked up by LoadFragments.
const (
	LayersFile           = "layers.xml"
	ConnectorLibraryFile = "connector_library.xml"
	AttributesFile       = "brd_attributes.xml"
)

// Fragments holds the three collaborator-supplied markup blocks that
// get spliced verbatim into the board document. The model never parses
// them; a malformed fragment produces a malformed document and that is
// the supplier's problem.
type Fragments struct {
	Layers           string // layer definitions, after the document header
	ConnectorLibrary string // shared connector library, first in <libraries>
	Attributes       string // attribute and design-rule block, after <libraries>
}

// LoadFragments reads the three fragment files from dir.
func LoadFragments(dir string) (Fragments, error) {
	var frags Fragments
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{LayersFile, &frags.Layers},
		{ConnectorLibraryFile, &frags.ConnectorLibrary},
		{AttributesFile, &frags.Attributes},
	} {
		data, err := os.ReadFile(filepath.Join(dir, f.name))
		if err != nil {
			return Fragments{}, fmt.Errorf("failed to read fragment: %w", err)
		}
		*f.dst = string(data)
	}
	return frags, nil
}
