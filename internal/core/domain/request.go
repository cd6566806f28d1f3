package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// MavenProjectType is the project type id of a Maven build.
const MavenProjectType = "maven-project"

// RequestParams is the mutable draft collected while configuring a project.
// It only becomes usable once turned into a Request by NewRequest.
type RequestParams struct {
	ProjectType  string
	Language     string
	BootVersion  string
	GroupID      string
	ArtifactID   string
	Name         string
	Description  string
	Packaging    string
	JavaVersion  string
	Dependencies []string
}

// Request is the finalized, immutable set of generation parameters.
type Request struct {
	projectType  string
	language     string
	bootVersion  string
	groupID      string
	artifactID   string
	name         string
	description  string
	packaging    string
	javaVersion  string
	dependencies []string
}

// NewRequest validates params against the dependency catalog and freezes them.
func NewRequest(params RequestParams, deps DependencyCatalog) (Request, error) {
	axes := []struct {
		field string
		value string
	}{
		{"type", params.ProjectType},
		{"language", params.Language},
		{"bootVersion", params.BootVersion},
		{"packaging", params.Packaging},
		{"javaVersion", params.JavaVersion},
		{"name", params.Name},
		{"description", params.Description},
	}
	for _, axis := range axes {
		if strings.TrimSpace(axis.value) == "" {
			return Request{}, zerr.With(zerr.Wrap(ErrUnresolvedAxis, "cannot build request"), "field", axis.field)
		}
	}

	if err := Validate(params.GroupID, IdentifierRules...); err != nil {
		return Request{}, zerr.With(WrapCause(err, ErrValidation), "field", "groupId")
	}
	if err := Validate(params.ArtifactID, IdentifierRules...); err != nil {
		return Request{}, zerr.With(WrapCause(err, ErrValidation), "field", "artifactId")
	}

	seen := make(map[string]struct{}, len(params.Dependencies))
	for _, id := range params.Dependencies {
		if _, dup := seen[id]; dup {
			return Request{}, zerr.With(zerr.Wrap(ErrDuplicateDependency, "cannot build request"), "dependency", id)
		}
		seen[id] = struct{}{}
		if !deps.Contains(id) {
			return Request{}, zerr.With(zerr.Wrap(ErrUnknownDependency, "cannot build request"), "dependency", id)
		}
	}

	return Request{
		projectType:  params.ProjectType,
		language:     params.Language,
		bootVersion:  params.BootVersion,
		groupID:      params.GroupID,
		artifactID:   params.ArtifactID,
		name:         params.Name,
		description:  params.Description,
		packaging:    params.Packaging,
		javaVersion:  params.JavaVersion,
		dependencies: slices.Clone(params.Dependencies),
	}, nil
}

// ProjectType returns the build system id, e.g. "maven-project".
func (r Request) ProjectType() string { return r.projectType }

// Language returns the language id.
func (r Request) Language() string { return r.language }

// BootVersion returns the normalized framework version.
func (r Request) BootVersion() string { return r.bootVersion }

// GroupID returns the group id.
func (r Request) GroupID() string { return r.groupID }

// ArtifactID returns the artifact id.
func (r Request) ArtifactID() string { return r.artifactID }

// Name returns the display name.
func (r Request) Name() string { return r.name }

// Description returns the project description.
func (r Request) Description() string { return r.description }

// Packaging returns the packaging id.
func (r Request) Packaging() string { return r.packaging }

// JavaVersion returns the runtime version id.
func (r Request) JavaVersion() string { return r.javaVersion }

// Dependencies returns a copy of the selected dependency ids.
func (r Request) Dependencies() []string { return slices.Clone(r.dependencies) }

// DependencyList returns the selected dependency ids joined by commas.
func (r Request) DependencyList() string { return strings.Join(r.dependencies, ",") }

// BaseDir returns the directory the generated project is unpacked into.
func (r Request) BaseDir() string { return r.artifactID }
