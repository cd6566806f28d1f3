package logger

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/xspring/internal/core/domain"
	"go.trai.ch/xspring/internal/core/ports"
)

// NewObserver returns an observer that records events through log.
// The slog-backed Logger observes events itself; any other logger gets them
// as flattened debug lines.
func NewObserver(log ports.Logger) ports.Observer {
	if obs, ok := log.(ports.Observer); ok {
		return obs
	}
	return debugObserver{log: log}
}

type debugObserver struct {
	log ports.Logger
}

func (o debugObserver) Observe(event domain.Event) {
	var b strings.Builder
	b.WriteString(event.Message)
	b.WriteString(" event=" + string(event.Kind))
	for _, key := range slices.Sorted(maps.Keys(event.Fields)) {
		fmt.Fprintf(&b, " %s=%v", key, event.Fields[key])
	}
	o.log.Debug(b.String())
}
