package initializr

import (
	"net/url"

	"go.trai.ch/xspring/internal/core/domain"
)

// Query serializes every field of req into the generation endpoint's query parameters.
func Query(req domain.Request) url.Values {
	q := url.Values{}
	q.Set("type", req.ProjectType())
	q.Set("language", req.Language())
	q.Set("bootVersion", req.BootVersion())
	q.Set("groupId", req.GroupID())
	q.Set("artifactId", req.ArtifactID())
	q.Set("name", req.Name())
	q.Set("description", req.Description())
	q.Set("packaging", req.Packaging())
	q.Set("javaVersion", req.JavaVersion())
	q.Set("dependencies", req.DependencyList())
	q.Set("baseDir", req.BaseDir())
	return q
}
