// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package codemod

import (
	"fmt"
	"regexp"
	"strings"
)

// 📦 ImportStatement is a named import clause bound to a single module specifier
type ImportStatement struct {
	Names     []string // Imported names in source order, trimmed
	Specifier string   // Module specifier without quotes
	Quote     byte     // Quote character used around the specifier
	Semicolon bool     // Whether the statement ends with ';'
	Start     int      // Byte offset of "import"
	End       int      // Byte offset just past the statement
	ListStart int      // Byte offset just past '{'
	ListEnd   int      // Byte offset of '}'
}

// 🔍 Has reports whether name is one of the imported names
func (s ImportStatement) Has(name string) bool {
	for _, n := range s.Names {
		if n == name {
			return true
		}
	}
	return false
}

// 📝 String re-emits the statement
func (s ImportStatement) String() string {
	semi := ""
	if s.Semicolon {
		semi = ";"
	}
	return fmt.Sprintf("import { %s } from %c%s%c%s", strings.Join(s.Names, ", "), s.Quote, s.Specifier, s.Quote, semi)
}

// namedImportPattern returns a matcher for `import { ... } from '<specifier>'`
func namedImportPattern(specifier string) *regexp.Regexp {
	return regexp.MustCompile(`import\s*\{([^}]*)\}\s*from\s*(['"])` + regexp.QuoteMeta(specifier) + `['"](;?)`)
}

// nameEntry is one comma separated entry of a name list
type nameEntry struct {
	start, end         int // entry bounds, comma excluded
	nameStart, nameEnd int // name bounds with blanks and comments excluded, -1 when empty
	comma              int // offset of the comma closing the entry, -1 for the last entry
}

func (e nameEntry) name(list string) string {
	if e.nameStart < 0 {
		return ""
	}
	return list[e.nameStart:e.nameEnd]
}

// scanEntries splits a name list on commas, skipping // and /* */ comments
func scanEntries(list string) []nameEntry {
	var entries []nameEntry
	cur := nameEntry{start: 0, nameStart: -1, nameEnd: -1}
	for i := 0; i < len(list); i++ {
		switch {
		case strings.HasPrefix(list[i:], "//"):
			if nl := strings.IndexByte(list[i:], '\n'); nl >= 0 {
				i += nl - 1
			} else {
				i = len(list) - 1
			}
		case strings.HasPrefix(list[i:], "/*"):
			if end := strings.Index(list[i+2:], "*/"); end >= 0 {
				i += end + 3
			} else {
				i = len(list) - 1
			}
		case list[i] == ',':
			cur.end, cur.comma = i, i
			entries = append(entries, cur)
			cur = nameEntry{start: i + 1, nameStart: -1, nameEnd: -1}
		case isSpace(list[i]):
		default:
			if cur.nameStart < 0 {
				cur.nameStart = i
			}
			cur.nameEnd = i + 1
		}
	}
	cur.end, cur.comma = len(list), -1
	return append(entries, cur)
}

// splitNames returns the names of a list, dropping empty entries left by trailing commas
func splitNames(list string) []string {
	var names []string
	for _, e := range scanEntries(list) {
		if name := e.name(list); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// removeEntry cuts the first entry naming name out of list, keeping the
// surrounding layout and comments. It reports false when no entry matches.
func removeEntry(list, name string) (string, bool) {
	entries := scanEntries(list)
	for i, e := range entries {
		if e.name(list) != name {
			continue
		}
		if e.comma >= 0 {
			return list[:e.start] + list[e.comma+1:], true
		}
		if i == 0 {
			return list[:e.start] + list[e.end:], true
		}
		prev := entries[i-1]
		return list[:prev.comma] + list[e.nameEnd:], true
	}
	return list, false
}

// 🔎 FindImports returns every named import clause bound to specifier, in source order
func FindImports(content, specifier string) []ImportStatement {
	matches := namedImportPattern(specifier).FindAllStringSubmatchIndex(content, -1)
	stmts := make([]ImportStatement, 0, len(matches))
	for _, m := range matches {
		stmts = append(stmts, ImportStatement{
			Names:     splitNames(content[m[2]:m[3]]),
			Specifier: specifier,
			Quote:     content[m[4]],
			Semicolon: m[7] > m[6],
			Start:     m[0],
			End:       m[1],
			ListStart: m[2],
			ListEnd:   m[3],
		})
	}
	return stmts
}

// 🔍 HasNamedImport reports whether content imports name from specifier,
// wherever name sits in the list
func HasNamedImport(content, specifier, name string) bool {
	for _, stmt := range FindImports(content, specifier) {
		if stmt.Has(name) {
			return true
		}
	}
	return false
}

// ✂️ RemoveNamedImport drops name from every clause bound to specifier, leaving
// the rest of the clause text as written.
// A clause left empty is removed along with its line terminator.
func RemoveNamedImport(content, specifier, name string) string {
	stmts := FindImports(content, specifier)
	if len(stmts) == 0 {
		return content
	}

	var b strings.Builder
	last := 0
	for _, stmt := range stmts {
		if !stmt.Has(name) {
			continue
		}
		b.WriteString(content[last:stmt.Start])
		last = stmt.End

		list := content[stmt.ListStart:stmt.ListEnd]
		for removed := true; removed; {
			list, removed = removeEntry(list, name)
		}

		if len(splitNames(list)) == 0 {
			last += lineTerminatorLen(content[last:])
			continue
		}

		b.WriteString(content[stmt.Start:stmt.ListStart])
		b.WriteString(list)
		b.WriteString(content[stmt.ListEnd:stmt.End])
	}
	b.WriteString(content[last:])
	return b.String()
}

// lineTerminatorLen returns the length of the trailing blanks and newline at the start of s, or 0
func lineTerminatorLen(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	switch {
	case strings.HasPrefix(s[i:], "\r\n"):
		return i + 2
	case strings.HasPrefix(s[i:], "\n"):
		return i + 1
	case i == len(s):
		return i
	}
	return 0
}

// ➕ InjectImport prepends `import { name } from '<specifier>';` unless content
// already imports name from specifier
func InjectImport(content, specifier, name string) (string, bool) {
	if HasNamedImport(content, specifier, name) {
		return content, false
	}
	stmt := ImportStatement{Names: []string{name}, Specifier: specifier, Quote: '\'', Semicolon: true}
	return stmt.String() + "\n" + content, true
}
