// internal/align/formats.go
package align

import "sort"

// Format describes one output format the external aligner can produce.
// Headered formats carry a single leading header line per invocation;
// SuppressHeaderOpt is the tool option that drops it.
type Format struct {
	Name              string
	Extension         string
	Headered          bool
	SuppressHeaderOpt string
}

var formats = map[string]Format{
	"tsv":      {Name: "tsv", Extension: "tsv", Headered: true, SuppressHeaderOpt: "--no-header"},
	"csv":      {Name: "csv", Extension: "csv", Headered: true, SuppressHeaderOpt: "--no-header"},
	"pairwise": {Name: "pairwise", Extension: "aln"},
	"xml":      {Name: "xml", Extension: "xml"},
}

// LookupFormat resolves a format identifier.
func LookupFormat(name string) (Format, bool) {
	f, ok := formats[name]
	return f, ok
}

// FormatNames lists the known identifiers, sorted, for usage text.
func FormatNames() []string {
	names := make([]string, 0, len(formats))
	for n := range formats {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
