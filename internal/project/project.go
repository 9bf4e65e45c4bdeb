// Package project defines the declarative model of a research project and
// the YAML document schema it is read from.
package project

import (
	"github.com/naccdata/fwprov/internal/util/naming"
)

// Document is the YAML shape of one project description. A project file is
// a YAML stream holding one document per project.
type Document struct {
	Name      string      `yaml:"project"`
	Centers   []CenterDoc `yaml:"centers,omitempty"`
	Datatypes []string    `yaml:"datatypes,omitempty"`
	Published bool        `yaml:"published"`
	Primary   bool        `yaml:"primary,omitempty"`
}

// CenterDoc is the YAML shape of one participating center.
type CenterDoc struct {
	// CenterID is the center's protected identifier. It is carried through
	// loading but never sent to the remote platform.
	CenterID int    `yaml:"center-id,omitempty"`
	Name     string `yaml:"name"`
	Active   bool   `yaml:"is-active"`
}

// Center is a participating center of a project. Inactive centers keep
// their group and accepted project but receive no ingest projects.
type Center struct {
	ID     int
	Name   string
	Active bool
}

// GroupID returns the Flywheel group identifier for the center.
func (c Center) GroupID() string {
	return naming.Slug(c.Name)
}

// Project is an immutable description of a research project. Values are
// built once from a Document and only traversed afterwards.
type Project struct {
	Name      string
	Centers   []Center
	Datatypes []string
	Published bool
	// Primary marks the primary project of the coordinating center. The
	// primary project claims the bare "accepted" and "ingest-*" IDs inside
	// shared center groups; other projects get a slug suffix.
	Primary bool
}

// FromDocument builds a Project from a parsed YAML document. Center order
// and datatype order are preserved; they determine creation order.
func FromDocument(doc Document) *Project {
	centers := make([]Center, 0, len(doc.Centers))
	for _, c := range doc.Centers {
		centers = append(centers, Center{ID: c.CenterID, Name: c.Name, Active: c.Active})
	}
	return &Project{
		Name:      doc.Name,
		Centers:   centers,
		Datatypes: doc.Datatypes,
		Published: doc.Published,
		Primary:   doc.Primary,
	}
}
