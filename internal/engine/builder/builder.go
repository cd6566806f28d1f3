// Package builder walks the catalog axes and assembles a finalized generation request.
package builder

import (
	"context"
	"strings"

	"go.trai.ch/xspring/internal/core/domain"
	"go.trai.ch/xspring/internal/core/ports"
	"go.trai.ch/zerr"
)

// DependencyPageSize is the number of dependencies shown at once.
const DependencyPageSize = 5

const (
	labelProjectType = "Project Type:"
	labelLanguage    = "Language:"
	labelBootVersion = "Spring Boot Version:"
	labelGroupID     = "Group ID:"
	labelArtifactID  = "Artifact ID:"
	labelName        = "Project Name:"
	labelDescription = "Project Description:"
	labelPackaging   = "Packaging:"
	labelJavaVersion = "Java Version:"
	labelDeps        = "Dependencies:"
)

// QuickOptions controls the abbreviated configuration path.
type QuickOptions struct {
	// UseMaven forces a Maven project regardless of the catalog default.
	UseMaven bool
	// Extended skips the name and description prompts and uses the catalog defaults.
	Extended bool
}

// Builder collects selections through a Prompter and turns them into a domain.Request.
// The draft never leaves the builder: any prompt error discards it.
type Builder struct {
	prompter ports.Prompter
	observer ports.Observer
}

// New creates a Builder.
func New(prompter ports.Prompter, observer ports.Observer) *Builder {
	return &Builder{
		prompter: prompter,
		observer: observer,
	}
}

// Full prompts for every axis in a fixed order:
// type, language, boot version, group id, artifact id, name, description,
// packaging, java version, dependencies.
func (b *Builder) Full(ctx context.Context, catalog *domain.Catalog) (domain.Request, error) {
	var params domain.RequestParams
	var err error

	if params.ProjectType, err = b.choose(ctx, "type", labelProjectType, catalog.ProjectType.Options,
		catalog.ProjectType.Default); err != nil {
		return domain.Request{}, err
	}
	if params.Language, err = b.choose(ctx, "language", labelLanguage, catalog.Language.Options,
		catalog.Language.Default); err != nil {
		return domain.Request{}, err
	}
	if params.BootVersion, err = b.choose(ctx, "bootVersion", labelBootVersion, catalog.BootVersion.DefaultFirst(),
		catalog.BootVersion.Default); err != nil {
		return domain.Request{}, err
	}
	if err = b.identifiers(ctx, catalog, &params); err != nil {
		return domain.Request{}, err
	}
	if err = b.texts(ctx, catalog, &params); err != nil {
		return domain.Request{}, err
	}
	if params.Packaging, err = b.choose(ctx, "packaging", labelPackaging, catalog.Packaging.Options,
		catalog.Packaging.Default); err != nil {
		return domain.Request{}, err
	}
	if params.JavaVersion, err = b.choose(ctx, "javaVersion", labelJavaVersion, catalog.JavaVersion.DefaultFirst(),
		catalog.JavaVersion.Default); err != nil {
		return domain.Request{}, err
	}
	if params.Dependencies, err = b.dependencies(ctx, catalog.Dependencies); err != nil {
		return domain.Request{}, err
	}

	return b.finalize(params, catalog)
}

// Quick prompts only for the identifiers, and for name and description unless opts.Extended
// is set. Every other axis takes the catalog default and no dependencies are selected.
func (b *Builder) Quick(ctx context.Context, catalog *domain.Catalog, opts QuickOptions) (domain.Request, error) {
	params := domain.RequestParams{
		ProjectType: catalog.ProjectType.Default,
		Language:    catalog.Language.Default,
		BootVersion: catalog.BootVersion.Default,
		Name:        catalog.Name.Default,
		Description: catalog.Description.Default,
		Packaging:   catalog.Packaging.Default,
		JavaVersion: catalog.JavaVersion.Default,
	}
	if opts.UseMaven {
		params.ProjectType = domain.MavenProjectType
	}

	if err := b.identifiers(ctx, catalog, &params); err != nil {
		return domain.Request{}, err
	}
	if !opts.Extended {
		if err := b.texts(ctx, catalog, &params); err != nil {
			return domain.Request{}, err
		}
	}

	return b.finalize(params, catalog)
}

func (b *Builder) identifiers(ctx context.Context, catalog *domain.Catalog, params *domain.RequestParams) error {
	var err error
	if params.GroupID, err = b.identifier(ctx, "groupId", labelGroupID, catalog.GroupID.Default); err != nil {
		return err
	}
	params.ArtifactID, err = b.identifier(ctx, "artifactId", labelArtifactID, catalog.ArtifactID.Default)
	return err
}

func (b *Builder) texts(ctx context.Context, catalog *domain.Catalog, params *domain.RequestParams) error {
	var err error
	if params.Name, err = b.textOrDefault(ctx, "name", labelName, catalog.Name.Default); err != nil {
		return err
	}
	params.Description, err = b.textOrDefault(ctx, "description", labelDescription, catalog.Description.Default)
	return err
}

// choose presents options in the given order with the cursor on defaultID.
func (b *Builder) choose(
	ctx context.Context,
	field, label string,
	options []domain.Option,
	defaultID string,
) (string, error) {
	if len(options) == 0 {
		return "", zerr.With(zerr.Wrap(domain.ErrNoOptions, "cannot prompt"), "field", field)
	}

	cursor := 0
	for i, opt := range options {
		if opt.ID == defaultID {
			cursor = i
			break
		}
	}

	opt, err := b.prompter.Select(ctx, domain.SelectPrompt{
		Label:   label,
		Options: options,
		Cursor:  cursor,
	})
	if err != nil {
		return "", err
	}

	b.selected(field, opt.ID)
	return opt.ID, nil
}

// identifier re-prompts until the answer passes domain.IdentifierRules.
func (b *Builder) identifier(ctx context.Context, field, label, placeholder string) (string, error) {
	prompt := domain.TextPrompt{Label: label, Placeholder: placeholder}
	for {
		answer, err := b.prompter.Text(ctx, prompt)
		if err != nil {
			return "", err
		}

		if err := domain.Validate(answer, domain.IdentifierRules...); err != nil {
			prompt.Reason = err.Error()
			b.observe(domain.EventValidationFailed, "answer rejected", map[string]any{
				"field":  field,
				"reason": prompt.Reason,
			})
			continue
		}

		b.selected(field, answer)
		return answer, nil
	}
}

// textOrDefault treats an empty answer as a request for the catalog default.
func (b *Builder) textOrDefault(ctx context.Context, field, label, fallback string) (string, error) {
	answer, err := b.prompter.Text(ctx, domain.TextPrompt{
		Label:          label,
		Placeholder:    fallback,
		DefaultOnEmpty: true,
	})
	if err != nil {
		return "", err
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = fallback
	}

	b.selected(field, answer)
	return answer, nil
}

func (b *Builder) dependencies(ctx context.Context, catalog domain.DependencyCatalog) ([]string, error) {
	options := catalog.Flatten()
	if len(options) == 0 {
		return nil, nil
	}

	chosen, err := b.prompter.MultiSelect(ctx, domain.MultiSelectPrompt{
		Label:    labelDeps,
		Options:  options,
		PageSize: DependencyPageSize,
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(chosen))
	deps := make([]string, 0, len(chosen))
	for _, id := range chosen {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		deps = append(deps, id)
	}

	b.selected("dependencies", strings.Join(deps, ","))
	return deps, nil
}

func (b *Builder) finalize(params domain.RequestParams, catalog *domain.Catalog) (domain.Request, error) {
	params.BootVersion = domain.NormalizeVersion(params.BootVersion)

	req, err := domain.NewRequest(params, catalog.Dependencies)
	if err != nil {
		return domain.Request{}, err
	}

	b.observe(domain.EventRequestFinalized, "request finalized", map[string]any{
		"base_dir":     req.BaseDir(),
		"dependencies": len(req.Dependencies()),
	})
	return req, nil
}

func (b *Builder) selected(field, value string) {
	b.observe(domain.EventSelection, "selection accepted", map[string]any{
		"field": field,
		"value": value,
	})
}

func (b *Builder) observe(kind domain.EventKind, msg string, fields map[string]any) {
	if b.observer == nil {
		return
	}
	b.observer.Observe(domain.NewEvent(kind, msg, fields))
}
