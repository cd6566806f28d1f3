package domain

// ListItem selects which part of the catalog the list command prints.
type ListItem string

const (
	// ListJava lists runtime versions.
	ListJava ListItem = "java"
	// ListBoot lists framework versions.
	ListBoot ListItem = "boot"
	// ListType lists project types.
	ListType ListItem = "type"
	// ListLanguage lists languages.
	ListLanguage ListItem = "language"
	// ListPackaging lists packaging types.
	ListPackaging ListItem = "packaging"
	// ListDeps lists dependencies by category.
	ListDeps ListItem = "deps"
)

// Axis returns the catalog axis for the item. ok is false for ListDeps and unknown items.
func (i ListItem) Axis(c *Catalog) (Axis, bool) {
	switch i {
	case ListJava:
		return c.JavaVersion, true
	case ListBoot:
		return c.BootVersion, true
	case ListType:
		return c.ProjectType, true
	case ListLanguage:
		return c.Language, true
	case ListPackaging:
		return c.Packaging, true
	default:
		return Axis{}, false
	}
}
