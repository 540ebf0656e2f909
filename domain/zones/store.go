package zones

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
)

// zoneFile is the on-disk document: an ordered list of [x1,y1,x2,y2] tuples
// and a parallel list of color strings.
type zoneFile struct {
	ExcludedAreas [][4]int `json:"excluded_areas"`
	Colors        []string `json:"colors"`
}

// Load reads a zone list from path. A missing file yields an empty list.
// When the color list is shorter than the zone list, missing entries default
// to DefaultColor. Tuples are canonicalized on load.
func Load(path string) ([]Zone, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("zones: read %s: %w", path, err)
	}
	var f zoneFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("zones: parse %s: %w", path, err)
	}
	zs := lo.Map(f.ExcludedAreas, func(a [4]int, i int) Zone {
		color := DefaultColor
		if i < len(f.Colors) && f.Colors[i] != "" {
			color = f.Colors[i]
		}
		return New(a[0], a[1], a[2], a[3], color)
	})
	return zs, nil
}

// Save writes the zone list to path in the same document format Load reads.
func Save(path string, zs []Zone) error {
	f := zoneFile{
		ExcludedAreas: lo.Map(zs, func(z Zone, _ int) [4]int {
			return [4]int{z.X1, z.Y1, z.X2, z.Y2}
		}),
		Colors: lo.Map(zs, func(z Zone, _ int) string { return z.Color }),
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("zones: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("zones: write %s: %w", path, err)
	}
	return nil
}
