// Package unit maps measurement unit names to the short suffixes used when
// rendering metric values.
package unit

import "sort"

// Name identifies a measurement unit, e.g. "bytes" or "context switches".
type Name string

// Unknown is the catch-all unit and suffix.
const Unknown Name = "?"

// UnknownSuffix is returned for units missing from the suffix table.
const UnknownSuffix = "?"

// builtin documents every unit used by the compiled-in statistics.
var builtin = map[Name]string{
	Unknown:                  UnknownSuffix,
	"blocks":                 "blocks",
	"bytes":                  "bytes",
	"calls":                  "calls",
	"connections":            "conn",
	"context switches":       "csws",
	"corruptions":            "corrupt",
	"current consensus term": "terms",
	"deletes":                "dels",
	"entries":                "entries",
	"failures":               "fails",
	"files":                  "files",
	"hits":                   "hits",
	"indicator":              "y/n",
	"iterators":              "iters",
	"keys":                   "keys",
	"messages":               "msgs",
	"microseconds":           "us",
	"milliseconds":           "ms",
	"nanoseconds":            "ns",
	"nr":                     "nr",
	"operations":             "ops",
	"parsers":                "parsers",
	"processors":             "procs",
	"properties":             "props",
	"queries":                "qry",
	"reads":                  "reads",
	"rejections":             "reject",
	"requests":               "reqs",
	"rows":                   "rows",
	"rpcs":                   "rpcs",
	"seeks":                  "seeks",
	"syncs":                  "syncs",
	"tasks":                  "tasks",
	"threads":                "threads",
	"transactions":           "txns",
	"writes":                 "writes",
}

// Builtin returns a copy of the compiled-in suffix table.
func Builtin() map[Name]string {
	out := make(map[Name]string, len(builtin))
	for k, v := range builtin {
		out[k] = v
	}
	return out
}

// IsBuiltin reports whether name is in the compiled-in table.
func IsBuiltin(name Name) bool {
	_, ok := builtin[name]
	return ok
}

// Entry is one row of a suffix table.
type Entry struct {
	Unit   Name
	Suffix string
}

// sortedEntries returns table rows ordered by unit name.
func sortedEntries(table map[Name]string) []Entry {
	out := make([]Entry, 0, len(table))
	for k, v := range table {
		out = append(out, Entry{Unit: k, Suffix: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Unit < out[j].Unit })
	return out
}
