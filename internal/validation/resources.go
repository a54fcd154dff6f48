package validation

import (
	"os"
	"path/filepath"

	"github.com/jonathan/resumetex/internal/layout"
)

// CheckResources verifies that every icon image the document may reference exists
// under resourceDir. It returns a *MissingResourceError naming all missing files.
func CheckResources(resourceDir string) error {
	if resourceDir == "" {
		resourceDir = layout.DefaultResourceDir
	}

	var missing []string
	for _, icon := range layout.Icons() {
		path := filepath.Join(resourceDir, icon.File())
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			missing = append(missing, icon.File())
		}
	}

	if len(missing) > 0 {
		return &MissingResourceError{Dir: resourceDir, Missing: missing}
	}
	return nil
}
