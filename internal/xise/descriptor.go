package xise

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// Namespace is the XML namespace of every element and attribute in a descriptor.
const Namespace = "http://www.xilinx.com/XMLSchema"

// ImplementationAssociation marks a file entry as part of the build.
const ImplementationAssociation = "Implementation"

type xmlProject struct {
	Files      *xmlFiles      `xml:"http://www.xilinx.com/XMLSchema files"`
	Properties *xmlProperties `xml:"http://www.xilinx.com/XMLSchema properties"`
}

type xmlFiles struct {
	Files []xmlFile `xml:"http://www.xilinx.com/XMLSchema file"`
}

type xmlFile struct {
	Name         string           `xml:"http://www.xilinx.com/XMLSchema name,attr"`
	Type         *string          `xml:"http://www.xilinx.com/XMLSchema type,attr"`
	Associations []xmlAssociation `xml:"http://www.xilinx.com/XMLSchema association"`
}

type xmlAssociation struct {
	Name  string `xml:"http://www.xilinx.com/XMLSchema name,attr"`
	SeqID string `xml:"http://www.xilinx.com/XMLSchema seqID,attr"`
}

type xmlProperties struct {
	Properties []xmlProperty `xml:"http://www.xilinx.com/XMLSchema property"`
}

type xmlProperty struct {
	Name  string `xml:"http://www.xilinx.com/XMLSchema name,attr"`
	Value string `xml:"http://www.xilinx.com/XMLSchema value,attr"`
}

// File is one file entry of a descriptor, in on-disk order.
type File struct {
	Name         string
	Kind         FileKind
	Associations []Association
}

// Association links a file to a design view.
type Association struct {
	Name  string
	SeqID string
}

// Property is one project setting.
type Property struct {
	Name  string
	Value string
}

// Entry is a file taking part in the implementation, with its sibling order.
type Entry struct {
	SeqID int
	Kind  FileKind
	Name  string
}

// Descriptor is a decoded project file.
type Descriptor struct {
	Files      []File
	Properties []Property
}

// Decode parses descriptor XML. Entries without a type attribute are rejected.
func Decode(data []byte) (*Descriptor, error) {
	var raw xmlProject
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	d := &Descriptor{}
	if raw.Files != nil {
		for i, f := range raw.Files.Files {
			if f.Type == nil {
				return nil, fmt.Errorf("file entry %d (%q) has no type", i, f.Name)
			}
			file := File{Name: f.Name, Kind: FileKind(*f.Type)}
			for _, a := range f.Associations {
				file.Associations = append(file.Associations, Association{Name: a.Name, SeqID: a.SeqID})
			}
			d.Files = append(d.Files, file)
		}
	}
	if raw.Properties != nil {
		for _, p := range raw.Properties.Properties {
			d.Properties = append(d.Properties, Property{Name: p.Name, Value: p.Value})
		}
	}
	return d, nil
}

// ReadDescriptor reads and decodes the descriptor at path. Every failure,
// including a missing file, is returned as a *ParseError.
func ReadDescriptor(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	d, err := Decode(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return d, nil
}

// ImplementationEntries returns the files carrying an Implementation
// association, sorted by ascending seqID. Files without one are ignored.
func (d *Descriptor) ImplementationEntries() ([]Entry, error) {
	var entries []Entry
	for _, f := range d.Files {
		for _, a := range f.Associations {
			if a.Name != ImplementationAssociation {
				continue
			}
			seq, err := strconv.Atoi(a.SeqID)
			if err != nil {
				return nil, fmt.Errorf("file %q: invalid seqID %q: %w", f.Name, a.SeqID, err)
			}
			entries = append(entries, Entry{SeqID: seq, Kind: f.Kind, Name: f.Name})
			break
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].SeqID < entries[j].SeqID })
	return entries, nil
}

// FilesOfKind returns the names of every file entry of the given kind,
// regardless of association. The empty kind matches every entry.
func (d *Descriptor) FilesOfKind(kind FileKind) []string {
	var names []string
	for _, f := range d.Files {
		if kind == "" || f.Kind == kind {
			names = append(names, f.Name)
		}
	}
	return names
}

// PropertyMap returns the properties keyed by name. A later duplicate wins.
func (d *Descriptor) PropertyMap() map[string]string {
	props := make(map[string]string, len(d.Properties))
	for _, p := range d.Properties {
		props[p.Name] = p.Value
	}
	return props
}

// ProjectFiles extracts the names of the files of the given kind from the
// descriptor at path, failing with *MissingFilesError when fewer than
// minimum are listed.
func ProjectFiles(path string, kind FileKind, minimum int) ([]string, error) {
	d, err := ReadDescriptor(path)
	if err != nil {
		return nil, err
	}
	files := d.FilesOfKind(kind)
	if len(files) < minimum {
		return nil, &MissingFilesError{Path: path, Kind: kind, Minimum: minimum, Found: files}
	}
	return files, nil
}

// IsNotExist reports whether err says a descriptor file does not exist.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
