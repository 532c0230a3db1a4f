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
	"strings"
)

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// isTagBoundary reports whether c can follow an element name or attribute inside a tag
func isTagBoundary(c byte) bool {
	return isSpace(c) || c == '/' || c == '>' || c == '{'
}

// ✂️ StripAttribute removes every occurrence of attribute (e.g. `component="div"`)
// from opening tags of element, together with the whitespace that separates it
// from the previous token. It returns the new content and the number of removals.
func StripAttribute(content, element, attribute string) (string, int) {
	if element == "" || attribute == "" {
		return content, 0
	}

	open := "<" + element
	var b strings.Builder
	last := 0
	count := 0

	for i := 0; i < len(content); {
		idx := strings.Index(content[i:], open)
		if idx < 0 {
			break
		}
		start := i + idx
		nameEnd := start + len(open)
		if nameEnd < len(content) && !isTagBoundary(content[nameEnd]) {
			i = nameEnd
			continue
		}

		cuts, end := scanTag(content, nameEnd, attribute)
		for _, c := range cuts {
			b.WriteString(content[last:c[0]])
			last = c[1]
			count++
		}
		i = end
	}

	if count == 0 {
		return content, 0
	}
	b.WriteString(content[last:])
	return b.String(), count
}

// scanTag walks an opening tag starting just after its element name and returns
// the [start, end) ranges to cut plus the offset where scanning should resume.
// Braces and quotes are tracked so `>` or attribute text inside an expression
// container is ignored.
func scanTag(content string, from int, attribute string) ([][2]int, int) {
	var cuts [][2]int
	depth := 0
	var quote byte
	wsStart := -1

	for j := from; j < len(content); j++ {
		c := content[j]

		if quote != 0 {
			if c == '\\' && depth > 0 {
				j++
				continue
			}
			if c == quote {
				quote = 0
			}
			continue
		}

		switch {
		case c == '"' || c == '\'' || (c == '`' && depth > 0):
			quote = c
			wsStart = -1
		case c == '{':
			depth++
			wsStart = -1
		case c == '}':
			if depth > 0 {
				depth--
			}
			wsStart = -1
		case depth > 0:
			// inside an expression container
		case c == '>':
			return cuts, j + 1
		case isSpace(c):
			if wsStart < 0 {
				wsStart = j
			}
		default:
			after := j + len(attribute)
			if wsStart >= 0 && strings.HasPrefix(content[j:], attribute) && (after == len(content) || isTagBoundary(content[after])) {
				cuts = append(cuts, [2]int{wsStart, after})
				j = after - 1
			}
			wsStart = -1
		}
	}

	return cuts, len(content)
}
