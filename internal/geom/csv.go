package geom

import (
	"encoding/csv"
	"errors"
	"os"
	"strconv"
	"strings"
)

// LoadPolygonCSV reads polygon vertices from a CSV file with x and y
// columns. Column detection: x|px and y|py (case-insensitive). Rows
// that do not parse as numbers are skipped.
func LoadPolygonCSV(path string) (Polygon, error) {
	f, err := os.Open(path)
	if err != nil {
		return Polygon{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return Polygon{}, err
	}
	if len(recs) == 0 {
		return Polygon{}, errors.New("empty csv")
	}

	idxX, idxY := -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "x", "px":
			if idxX == -1 {
				idxX = i
			}
		case "y", "py":
			if idxY == -1 {
				idxY = i
			}
		}
	}
	if idxX == -1 || idxY == -1 {
		return Polygon{}, errors.New("csv: x/y columns not found")
	}

	var pts []Point
	for _, row := range recs[1:] {
		if idxX >= len(row) || idxY >= len(row) {
			continue
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxX]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxY]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	return NewPolygon(pts...)
}
