// Package scenario loads a simulation setup (bodies, the equations driving
// them, and the engine's tuning constants) from a YAML description, as an
// alternative to constructing an Engine directly from Go literals.
package scenario

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/durganmcbroom/iterative-physics/body"
	"github.com/durganmcbroom/iterative-physics/ierr"
	"github.com/durganmcbroom/iterative-physics/math/lin"
)

type bodyConfig struct {
	Name     string      `yaml:"name"`
	Shape    string      `yaml:"shape"`
	Width    float64     `yaml:"width"`
	Height   float64     `yaml:"height"`
	Points   [][]float64 `yaml:"points"`
	Position []float64   `yaml:"position"`
	Rotation float64     `yaml:"rotation"`
	Mass     float64     `yaml:"mass"`
}

type scenarioConfig struct {
	DeltaT      float64            `yaml:"delta_t"`
	Restitution float64            `yaml:"restitution"`
	Equations   []string           `yaml:"equations"`
	Constants   map[string]float64 `yaml:"constants"`
	Bodies      []bodyConfig       `yaml:"bodies"`
}

// Scenario is everything needed to build an Engine: the bodies at rest,
// the equations driving their motion, the constants those equations may
// reference, and the engine's timestep/restitution tuning.
type Scenario struct {
	Bodies      []*body.Body
	Equations   []string
	Constants   map[string]float64
	DeltaT      float64
	Restitution float64
}

// Load reads a YAML scenario description from r and builds the bodies it
// names. It does not build a symbolic.Environment or Engine itself, since
// those also need the caller's choice of built-in functions/collider.
func Load(r io.Reader) (*Scenario, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("scenario: read: %w", err)
	}

	var cfg scenarioConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("scenario: yaml: %w", err)
	}

	bodies := make([]*body.Body, len(cfg.Bodies))
	for i, bc := range cfg.Bodies {
		b, err := buildBody(bc)
		if err != nil {
			return nil, fmt.Errorf("scenario: body %q: %w", bc.Name, err)
		}
		bodies[i] = b
	}

	return &Scenario{
		Bodies:      bodies,
		Equations:   cfg.Equations,
		Constants:   cfg.Constants,
		DeltaT:      cfg.DeltaT,
		Restitution: cfg.Restitution,
	}, nil
}

func buildBody(bc bodyConfig) (*body.Body, error) {
	position, err := columnOf(bc.Position, 2)
	if err != nil {
		return nil, err
	}
	rotation, err := lin.NewColumn(1, []float64{bc.Rotation})
	if err != nil {
		return nil, err
	}

	shape, properties, err := buildShape(bc)
	if err != nil {
		return nil, err
	}

	return body.AtRest(bc.Name, shape, position, rotation, properties)
}

func buildShape(bc bodyConfig) (body.Shape, body.BodyProperties, error) {
	switch bc.Shape {
	case "rectangle", "":
		return body.NewRectangle(bc.Width, bc.Height), body.RectangleProperties(bc.Mass, bc.Width, bc.Height), nil
	case "manifold":
		points := make([]lin.Column, len(bc.Points))
		for i, p := range bc.Points {
			c, err := columnOf(p, 2)
			if err != nil {
				return nil, body.BodyProperties{}, err
			}
			points[i] = c
		}
		return body.NewManifold(points), body.BodyProperties{Mass: bc.Mass}, nil
	default:
		return nil, body.BodyProperties{}, ierr.Syntax(fmt.Sprintf("unknown scenario shape %q", bc.Shape))
	}
}

func columnOf(values []float64, dof int) (lin.Column, error) {
	if len(values) == 0 {
		return lin.EmptyColumn(dof), nil
	}
	return lin.NewColumn(dof, values)
}
