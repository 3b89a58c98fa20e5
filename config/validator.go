package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/ttrplan/railmap"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks every field and reports all violations at once.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil config", ErrInvalid)
	}
	var errs []string

	if cfg.Version == "" {
		errs = append(errs, "version is required")
	}
	p := cfg.Planner
	if !(p.PointImportance >= 0 && p.PointImportance <= railmap.MaxPointImportance) {
		errs = append(errs, fmt.Sprintf("planner.point_importance %g outside [0, %g]",
			p.PointImportance, railmap.MaxPointImportance))
	}
	if p.Trains <= 0 {
		errs = append(errs, fmt.Sprintf("planner.trains must be positive, got %d", p.Trains))
	}
	if p.MaxWaypoints < 2 {
		errs = append(errs, fmt.Sprintf("planner.max_waypoints must be at least 2, got %d", p.MaxWaypoints))
	}
	if p.MaxDualColor < 0 {
		errs = append(errs, fmt.Sprintf("planner.max_dual_color must not be negative, got %d", p.MaxDualColor))
	}
	if cfg.Server.Addr == "" {
		errs = append(errs, "server.addr is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalid, strings.Join(errs, "\n  - "))
	}

	return nil
}
