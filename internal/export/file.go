package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/chaosgame/internal/render"
)

// WriteFile picks the format from the extension of path (.svg or .png).
func WriteFile(path string, g render.Geometry) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := SVG(f, g); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	case ".png":
		return PNG(path, g)
	default:
		return fmt.Errorf("export: unsupported format %q (want .svg or .png)", filepath.Ext(path))
	}
}
