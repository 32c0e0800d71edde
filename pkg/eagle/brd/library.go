package brd

import (
	"fmt"
	"io"
)

// Library is a versioned, named collection of packages. The library
// owns its package list; a package keeps a back-reference so its
// emission can read the version, nothing more.
type Library struct {
	Name        string
	URN         string
	Description string
	Version     int

	packages *orderedMap[*Package]
}

// NewLibrary creates an empty version-1 library.
func NewLibrary(name, urn string) *Library {
	return &Library{Name: name, URN: urn, Version: 1, packages: newOrderedMap[*Package]()}
}

// Add appends a package and records this library as its owner. A
// package can belong to at most one library; package names must be
// unique within the library.
func (l *Library) Add(p *Package) error {
	if p.library != nil && p.library != l {
		return fmt.Errorf("%w: package %q already belongs to library %q", ErrInvalidArgument, p.Name, p.library.Name)
	}
	if !l.packages.add(p.Name, p) {
		return fmt.Errorf("%w: duplicate package name %q in library %q", ErrInvalidArgument, p.Name, l.Name)
	}
	p.library = l
	return nil
}

// Package returns the named package.
func (l *Library) Package(name string) (*Package, error) {
	p, ok := l.packages.get(name)
	if !ok {
		return nil, fmt.Errorf("%w: no package %q in library %q", ErrNotFound, name, l.Name)
	}
	return p, nil
}

// Packages returns the packages in insertion order.
func (l *Library) Packages() []*Package { return l.packages.values() }

// WriteXML emits the library block with its packages in the order they
// were added.
func (l *Library) WriteXML(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "<library name=\"%s\" urn=\"%s\">\n", l.Name, l.URN); err != nil {
		return err
	}
	if l.Description != "" {
		if _, err := fmt.Fprintf(w, "<description>%s</description>\n", l.Description); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "<packages>\n"); err != nil {
		return err
	}
	for _, p := range l.packages.values() {
		if err := p.WriteXML(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</packages>\n</library>\n")
	return err
}
