package app

import (
	"bufio"
	"fmt"
	"io"

	"go.trai.ch/xspring/internal/core/domain"
	"go.trai.ch/zerr"
)

// renderList writes one line per option, marking the default, or the dependency
// catalog grouped by category.
func renderList(w io.Writer, catalog *domain.Catalog, item domain.ListItem) error {
	buf := bufio.NewWriter(w)

	if item == domain.ListDeps {
		for i, category := range catalog.Dependencies.Categories {
			if i > 0 {
				_, _ = fmt.Fprintln(buf)
			}
			_, _ = fmt.Fprintf(buf, "%s\n", category.Name)
			for _, dep := range category.Dependencies {
				_, _ = fmt.Fprintf(buf, "  %s - %s\n", dep.ID, dep.Name)
			}
		}
		return flush(buf)
	}

	axis, ok := item.Axis(catalog)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrUnknownListItem, "cannot list"), "item", string(item))
	}
	for _, opt := range axis.Options {
		line := opt.ID
		if opt.Name != "" && opt.Name != opt.ID {
			line += " - " + opt.Name
		}
		if opt.ID == axis.Default {
			line += " (default)"
		}
		_, _ = fmt.Fprintln(buf, line)
	}
	return flush(buf)
}

func flush(buf *bufio.Writer) error {
	if err := buf.Flush(); err != nil {
		return zerr.Wrap(err, "failed to write listing")
	}
	return nil
}
