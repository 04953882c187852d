package assets

import (
	"embed"
	"fmt"
	"path"

	"github.com/automoto/shoutybird/shared/leveldata"
)

// CoursesDir is the embedded directory holding TMX obstacle courses.
const CoursesDir = "courses"

//go:embed all:courses
var courseFS embed.FS

// LoadCourse loads an embedded course by stem name, e.g. "classic".
func LoadCourse(name string) (*leveldata.Course, error) {
	course, err := leveldata.LoadCourse(courseFS, path.Join(CoursesDir, name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("load course %s: %w", name, err)
	}
	return course, nil
}

// CourseNames lists the embedded courses in sorted order.
func CourseNames() ([]string, error) {
	_, names, err := leveldata.LoadAllCourses(courseFS, CoursesDir)
	return names, err
}
