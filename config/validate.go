// config/validate.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package config

import (
	"errors"
	"fmt"
)

var ErrInvalid = errors.New("invalid aerodrome config")

// Validate checks that the cross-references in every aerodrome of c are in
// range.
func (c *Config) Validate() error {
	var errs []error
	for i := range c.Aerodromes {
		if err := c.Aerodromes[i].Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Validate checks that the node and map indices used by the aerodrome
// refer to things it defines. Each problem found is reported wrapping
// ErrInvalid.
func (a *Aerodrome) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %s: %w", a.ICAO, fmt.Sprintf(format, args...), ErrInvalid))
	}
	nn := len(a.Nodes)

	for _, n := range a.Nodes {
		if n.Parent < -1 || n.Parent >= nn {
			bad("node %s: parent %d out of range", n.ID, n.Parent)
		}
	}

	for _, p := range a.Profiles {
		if len(p.Nodes) > nn {
			bad("profile %q: %d node conditions for %d nodes", p.Name, len(p.Nodes), nn)
		}
		for _, pr := range p.Presets {
			for _, pn := range pr.Nodes {
				if pn.Node < 0 || pn.Node >= nn {
					bad("profile %q: preset %q: node %d out of range", p.Name, pr.Name, pn.Node)
				}
			}
		}
	}

	for i, m := range a.Maps {
		if len(m.Nodes) > nn {
			bad("map %d: %d node displays for %d nodes", i, len(m.Nodes), nn)
		}
	}

	for _, v := range a.Views {
		if v.Map < 0 || v.Map >= len(a.Maps) {
			bad("view %q: map %d out of range", v.Name, v.Map)
		}
	}

	return errors.Join(errs...)
}
