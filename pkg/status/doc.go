/*
Package status manages source file access and status tracking for boxmigrate.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |                         |
	+-----+-----+             +-----+-----+
	|   Files   |             |  Tracking |
	| (glob/io) |             | (per file)|
	+-----------+             +-----------+

🎯 Purpose:
- Selects source files with doublestar globs
- Reads and writes files relative to the project directory
- Records where each file ended up in the run

🔄 File lifecycle:

	unknown -> scanned -> skipped
	                   -> pending (dry run)
	                   -> written

The number of files in StatusWritten is the migrated count reported to the user.
*/
package status
