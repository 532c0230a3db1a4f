/*
Package codemod implements the text transforms that move the Box component
import off the UI kit and onto a project-local module.

	+----------------+     +----------------+     +----------------+
	| Import rewrite | --> | Import inject  | --> | JSX attr strip |
	| (@mui/material)|     | (relative path)|     | (<Box ...>)    |
	+----------------+     +----------------+     +----------------+

🎯 Purpose:
- Detect a named import of the target symbol from the UI kit specifier
- Drop the symbol from every import clause bound to that specifier
- Prepend an import of the symbol from the project-local module
- Strip a fixed attribute from every opening tag of the target element

📝 Notes:
The transforms work on text, not on a syntax tree. Import clauses are parsed
just enough to split the name list on commas; JSX opening tags are scanned
with brace and quote tracking so expression containers are left alone.
Multi-line name lists are re-emitted on a single line.

🔍 Example:

	res, err := codemod.Transform("src/pages/Home.tsx", content, codemod.DefaultOptions())
	if res.Modified {
		// persist res.Content
	}
*/
package codemod
