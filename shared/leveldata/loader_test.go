package leveldata

import (
	"testing"
	"testing/fstest"
)

const testCourse = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="30" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="4">
 <objectgroup id="1" name="Gaps">
  <object id="2" x="1280" y="32" width="48" height="160"/>
  <object id="1" x="640" y="96" width="48" height="144"/>
  <object id="3" x="1920" y="0" width="48" height="0"/>
 </objectgroup>
 <objectgroup id="2" name="Notes">
  <object id="4" x="0" y="0" width="16" height="16"/>
 </objectgroup>
</map>`

const emptyCourse = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="30" tilewidth="16" tileheight="16" infinite="0" nextlayerid="1" nextobjectid="1">
</map>`

func TestLoadCourseOrdersGapsAndConvertsUnits(t *testing.T) {
	fsys := fstest.MapFS{"courses/test.tmx": {Data: []byte(testCourse)}}

	course, err := LoadCourse(fsys, "courses/test.tmx")
	if err != nil {
		t.Fatalf("LoadCourse: %v", err)
	}
	if course.Name != "test" || course.Width != 40 || course.Height != 30 {
		t.Fatalf("unexpected course header %+v", course)
	}
	want := []Gap{{Top: 6, Height: 9}, {Top: 2, Height: 10}}
	if len(course.Gaps) != len(want) {
		t.Fatalf("gaps %+v, want %+v", course.Gaps, want)
	}
	for i := range want {
		if course.Gaps[i] != want[i] {
			t.Fatalf("gaps %+v, want %+v", course.Gaps, want)
		}
	}
}

func TestLoadCourseWithoutGapsFails(t *testing.T) {
	fsys := fstest.MapFS{"empty.tmx": {Data: []byte(emptyCourse)}}
	if _, err := LoadCourse(fsys, "empty.tmx"); err == nil {
		t.Fatalf("expected an error for a course without gaps")
	}
	if _, err := LoadCourse(fsys, "missing.tmx"); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestLoadAllCourses(t *testing.T) {
	fsys := fstest.MapFS{
		"courses/b.tmx": {Data: []byte(testCourse)},
		"courses/a.tmx": {Data: []byte(testCourse)},
	}
	courses, names, err := LoadAllCourses(fsys, "courses")
	if err != nil {
		t.Fatalf("LoadAllCourses: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("unexpected names %v", names)
	}
	if courses["a"].Len() != 2 {
		t.Fatalf("course a should have 2 gaps")
	}
}

func TestCourseAtWraps(t *testing.T) {
	c := &Course{Gaps: []Gap{{Top: 1, Height: 9}, {Top: 5, Height: 9}}}
	if g, ok := c.At(3); !ok || g.Top != 5 {
		t.Fatalf("At(3) = %+v, %v", g, ok)
	}
	var none *Course
	if _, ok := none.At(0); ok {
		t.Fatalf("nil course should have no gaps")
	}
}
