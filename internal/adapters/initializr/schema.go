package initializr

import (
	"fmt"

	"go.trai.ch/xspring/internal/core/domain"
	"go.trai.ch/zerr"
)

// metadataResponse is the subset of the Initializr metadata document xspring consumes.
// Unknown fields are ignored.
type metadataResponse struct {
	Type         *axisPayload         `json:"type"`
	Language     *axisPayload         `json:"language"`
	BootVersion  *axisPayload         `json:"bootVersion"`
	Packaging    *axisPayload         `json:"packaging"`
	JavaVersion  *axisPayload         `json:"javaVersion"`
	Dependencies *dependenciesPayload `json:"dependencies"`
	Name         *textPayload         `json:"name"`
	Description  *textPayload         `json:"description"`
	GroupID      *textPayload         `json:"groupId"`
	ArtifactID   *textPayload         `json:"artifactId"`
}

// axisPayload is a single-select capability such as "bootVersion".
type axisPayload struct {
	Type    string          `json:"type"`
	Default string          `json:"default"`
	Values  []optionPayload `json:"values"`
}

type optionPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// dependenciesPayload is the hierarchical dependency capability.
type dependenciesPayload struct {
	Type   string            `json:"type"`
	Values []categoryPayload `json:"values"`
}

type categoryPayload struct {
	Name   string              `json:"name"`
	Values []dependencyPayload `json:"values"`
}

type dependencyPayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// textPayload is a free-text capability such as "name".
type textPayload struct {
	Type    string `json:"type"`
	Default string `json:"default"`
}

// toCatalog checks the consumed fields and converts the payload into a domain.Catalog.
func (m *metadataResponse) toCatalog() (*domain.Catalog, error) {
	axes := []struct {
		field   string
		payload *axisPayload
	}{
		{"type", m.Type},
		{"language", m.Language},
		{"bootVersion", m.BootVersion},
		{"packaging", m.Packaging},
		{"javaVersion", m.JavaVersion},
	}

	converted := make([]domain.Axis, 0, len(axes))
	for _, a := range axes {
		axis, err := a.payload.toAxis(a.field)
		if err != nil {
			return nil, err
		}
		converted = append(converted, axis)
	}

	if m.Dependencies == nil || m.Dependencies.Values == nil {
		return nil, missingField("dependencies.values")
	}
	deps, err := m.Dependencies.toCatalog()
	if err != nil {
		return nil, err
	}

	if m.Name == nil || m.Name.Default == "" {
		return nil, missingField("name.default")
	}
	if m.Description == nil || m.Description.Default == "" {
		return nil, missingField("description.default")
	}

	return &domain.Catalog{
		ProjectType:  converted[0],
		Language:     converted[1],
		BootVersion:  converted[2],
		Packaging:    converted[3],
		JavaVersion:  converted[4],
		Dependencies: deps,
		Name:         domain.DefaultText{Default: m.Name.Default},
		Description:  domain.DefaultText{Default: m.Description.Default},
		GroupID:      m.GroupID.toDefaultText(),
		ArtifactID:   m.ArtifactID.toDefaultText(),
	}, nil
}

func (a *axisPayload) toAxis(field string) (domain.Axis, error) {
	if a == nil {
		return domain.Axis{}, missingField(field)
	}
	if a.Default == "" {
		return domain.Axis{}, missingField(field + ".default")
	}
	if len(a.Values) == 0 {
		return domain.Axis{}, missingField(field + ".values")
	}

	options := make([]domain.Option, 0, len(a.Values))
	for i, v := range a.Values {
		if v.ID == "" {
			return domain.Axis{}, missingField(fmt.Sprintf("%s.values[%d].id", field, i))
		}
		options = append(options, domain.Option{ID: v.ID, Name: v.Name})
	}

	return domain.Axis{Default: a.Default, Options: options}, nil
}

func (d *dependenciesPayload) toCatalog() (domain.DependencyCatalog, error) {
	categories := make([]domain.Category, 0, len(d.Values))
	for i, c := range d.Values {
		deps := make([]domain.Dependency, 0, len(c.Values))
		for j, v := range c.Values {
			if v.ID == "" {
				return domain.DependencyCatalog{}, missingField(fmt.Sprintf("dependencies.values[%d].values[%d].id", i, j))
			}
			deps = append(deps, domain.Dependency{ID: v.ID, Name: v.Name, Description: v.Description})
		}
		categories = append(categories, domain.Category{Name: c.Name, Dependencies: deps})
	}
	return domain.DependencyCatalog{Categories: categories}, nil
}

func (t *textPayload) toDefaultText() domain.DefaultText {
	if t == nil {
		return domain.DefaultText{}
	}
	return domain.DefaultText{Default: t.Default}
}

func missingField(field string) error {
	return zerr.With(zerr.Wrap(domain.ErrDecode, "missing required field "+field), "field", field)
}
