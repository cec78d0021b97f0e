// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPanel is returned when a panel identifier outside the fixed
// enumeration is supplied. It is a caller/configuration error.
var ErrUnknownPanel = errors.New("unknown panel")

// Panel is a fixed top-level category. It partitions both the on-disk vault
// layout and the folder hierarchy of the catalog index.
type Panel string

const (
	// PanelCertification holds certification documents.
	PanelCertification Panel = "certification"

	// PanelHeader holds letterhead and header templates.
	PanelHeader Panel = "header"

	// PanelEmployeeInterface holds documents shared with employees.
	PanelEmployeeInterface Panel = "employee_interface"

	// PanelOther holds everything else.
	PanelOther Panel = "other"
)

var panelDisplayNames = map[Panel]string{
	PanelCertification:     "Certification",
	PanelHeader:            "Header",
	PanelEmployeeInterface: "Employee Interface",
	PanelOther:             "Other",
}

// Panels returns every known panel in display order.
func Panels() []Panel {
	return []Panel{PanelCertification, PanelHeader, PanelEmployeeInterface, PanelOther}
}

// ParsePanel converts s into a [Panel]. Matching is case-insensitive and
// surrounding whitespace is ignored. Returns [ErrUnknownPanel] for any value
// outside the enumeration.
func ParsePanel(s string) (Panel, error) {
	p := Panel(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPanel, s)
	}
	return p, nil
}

// Valid reports whether p is one of the four known panels.
func (p Panel) Valid() bool {
	_, ok := panelDisplayNames[p]
	return ok
}

// DisplayName returns the human-facing name used for the panel root folder.
// Unknown panels are returned verbatim.
func (p Panel) DisplayName() string {
	if name, ok := panelDisplayNames[p]; ok {
		return name
	}
	return string(p)
}

func (p Panel) String() string {
	return string(p)
}
