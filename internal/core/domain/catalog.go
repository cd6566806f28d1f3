package domain

// Option is a single selectable value of a catalog axis.
type Option struct {
	ID   string
	Name string
}

// Axis is one configurable dimension of project generation.
type Axis struct {
	Default string
	Options []Option
}

// Contains reports whether id is one of the axis options.
func (a Axis) Contains(id string) bool {
	return indexOf(a.Options, id) >= 0
}

// DefaultFirst returns the axis options with the default promoted to the front.
func (a Axis) DefaultFirst() []Option {
	return PromoteDefault(a.Options, a.Default)
}

// Dependency is a selectable starter offered by the catalog.
type Dependency struct {
	ID          string
	Name        string
	Description string
}

// Category groups dependencies for presentation.
type Category struct {
	Name         string
	Dependencies []Dependency
}

// DependencyCatalog is the categorized list of dependencies.
// Dependency ids are flat: unique across the whole catalog, independent of category.
type DependencyCatalog struct {
	Categories []Category
}

// FlatDependency is a dependency together with the category it is listed under.
type FlatDependency struct {
	Dependency
	Category string
}

// Flatten returns every dependency in catalog order, keeping the first occurrence of an id.
func (c DependencyCatalog) Flatten() []FlatDependency {
	seen := make(map[string]struct{})
	var flat []FlatDependency
	for _, category := range c.Categories {
		for _, dep := range category.Dependencies {
			if _, ok := seen[dep.ID]; ok {
				continue
			}
			seen[dep.ID] = struct{}{}
			flat = append(flat, FlatDependency{Dependency: dep, Category: category.Name})
		}
	}
	return flat
}

// Contains reports whether a dependency with the given id exists in any category.
func (c DependencyCatalog) Contains(id string) bool {
	for _, category := range c.Categories {
		for _, dep := range category.Dependencies {
			if dep.ID == id {
				return true
			}
		}
	}
	return false
}

// DefaultText is a free-text field default such as the project name.
type DefaultText struct {
	Default string
}

// Catalog is the snapshot of everything the Initializr service can generate.
// It is fetched once per run and never modified afterwards.
type Catalog struct {
	ProjectType  Axis
	Language     Axis
	BootVersion  Axis
	Packaging    Axis
	JavaVersion  Axis
	Dependencies DependencyCatalog

	Name        DefaultText
	Description DefaultText
	GroupID     DefaultText
	ArtifactID  DefaultText
}

// PromoteDefault returns a copy of options in which the default has been swapped into
// position 0. Only the two affected elements move; an unknown default leaves the order as is.
func PromoteDefault(options []Option, defaultID string) []Option {
	out := make([]Option, len(options))
	copy(out, options)

	idx := indexOf(out, defaultID)
	if idx > 0 {
		out[0], out[idx] = out[idx], out[0]
	}
	return out
}

func indexOf(options []Option, id string) int {
	for i, opt := range options {
		if opt.ID == id {
			return i
		}
	}
	return -1
}
