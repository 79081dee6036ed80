package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"goaffine/internal/geom"
)

// sceneDTO is the YAML shape of a scene file. It is mapped onto domain
// types after decoding.
type sceneDTO struct {
	Base     baseDTO      `yaml:"base"`
	Variants []variantDTO `yaml:"variants"`
}

// baseDTO supplies the base polygon one of three ways: inline points, a
// WKT POLYGON string, or a CSV file of vertices.
type baseDTO struct {
	Points [][2]float64 `yaml:"points"`
	WKT    string       `yaml:"wkt"`
	CSV    string       `yaml:"csv"`
}

type variantDTO struct {
	Label string    `yaml:"label"`
	Color string    `yaml:"color"`
	Op    string    `yaml:"op"`
	Args  []float64 `yaml:"args"`
	Axis  string    `yaml:"axis"`
}

// Load reads a scene definition from a YAML file. When the file names
// no variants, the fixed default list is derived from its base polygon.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, err
	}

	var dto sceneDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return Scene{}, fmt.Errorf("scene %s: %w", path, err)
	}

	base, err := mapBase(dto.Base)
	if err != nil {
		return Scene{}, fmt.Errorf("scene %s: %w", path, err)
	}

	if len(dto.Variants) == 0 {
		return FromBase(base), nil
	}

	s := Scene{Base: base}
	for _, v := range dto.Variants {
		poly, err := applyOp(base, v)
		if err != nil {
			return Scene{}, fmt.Errorf("scene %s: %w", path, err)
		}
		color := v.Color
		if color == "" {
			color = "white"
		}
		label := v.Label
		if label == "" {
			label = v.Op
		}
		s.Variants = append(s.Variants, Variant{Label: label, Color: color, Poly: poly})
	}
	return s, nil
}

func mapBase(dto baseDTO) (geom.Polygon, error) {
	switch {
	case len(dto.Points) > 0:
		pts := make([]geom.Point, len(dto.Points))
		for i, xy := range dto.Points {
			pts[i] = geom.Pt(xy[0], xy[1])
		}
		return geom.NewPolygon(pts...)
	case dto.WKT != "":
		return geom.ParsePolygonWKT(dto.WKT)
	case dto.CSV != "":
		return geom.LoadPolygonCSV(dto.CSV)
	default:
		return geom.Polygon{}, fmt.Errorf("base: points, wkt or csv required")
	}
}

func applyOp(base geom.Polygon, v variantDTO) (geom.Polygon, error) {
	wantArgs := func(n int) error {
		if len(v.Args) != n {
			return fmt.Errorf("op %q: want %d args, got %d", v.Op, n, len(v.Args))
		}
		return nil
	}

	switch v.Op {
	case "translate":
		if err := wantArgs(2); err != nil {
			return geom.Polygon{}, err
		}
		return base.Translate(v.Args[0], v.Args[1]), nil
	case "scale":
		switch len(v.Args) {
		case 1:
			return base.ScaleUniform(v.Args[0]), nil
		case 2:
			return base.Scale(v.Args[0], v.Args[1]), nil
		default:
			return geom.Polygon{}, fmt.Errorf("op %q: want 1 or 2 args, got %d", v.Op, len(v.Args))
		}
	case "rotate":
		if err := wantArgs(1); err != nil {
			return geom.Polygon{}, err
		}
		return base.Rotate(v.Args[0]), nil
	case "shear":
		if err := wantArgs(2); err != nil {
			return geom.Polygon{}, err
		}
		return base.Shear(v.Args[0], v.Args[1]), nil
	case "reflect":
		axis, err := geom.ParseAxis(v.Axis)
		if err != nil {
			return geom.Polygon{}, fmt.Errorf("op %q: %w", v.Op, err)
		}
		return base.Reflect(axis)
	case "affine":
		if err := wantArgs(6); err != nil {
			return geom.Polygon{}, err
		}
		return base.Affine(v.Args[0], v.Args[1], v.Args[2], v.Args[3], v.Args[4], v.Args[5]), nil
	default:
		return geom.Polygon{}, fmt.Errorf("unknown op %q", v.Op)
	}
}
