package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// GapLayer is the object group holding one rectangle per obstacle gap.
const GapLayer = "Gaps"

// LoadCourse parses a TMX file and returns its gaps ordered left to right.
// Pixel coordinates are converted to game units using the map tile size. It
// takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadCourse(fsys fs.FS, tmxPath string) (*Course, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	course := &Course{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width),
		Height: float64(levelMap.Height),
	}

	type placed struct {
		x   float64
		gap Gap
	}
	var gaps []placed
	for _, og := range levelMap.ObjectGroups {
		if og.Name != GapLayer {
			continue
		}
		for _, o := range og.Objects {
			if o.Height <= 0 {
				continue
			}
			gaps = append(gaps, placed{
				x:   o.X / tileW,
				gap: Gap{Top: o.Y / tileH, Height: o.Height / tileH},
			})
		}
	}
	if len(gaps) == 0 {
		return nil, fmt.Errorf("load TMX %s: no objects in %q layer", tmxPath, GapLayer)
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].x < gaps[j].x
	})
	for _, p := range gaps {
		course.Gaps = append(course.Gaps, p.gap)
	}
	return course, nil
}

// LoadAllCourses discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllCourses(fsys fs.FS, dir string) (map[string]*Course, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	courses := make(map[string]*Course, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		course, err := LoadCourse(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		courses[course.Name] = course
		names = append(names, course.Name)
	}

	sort.Strings(names)
	return courses, names, nil
}
