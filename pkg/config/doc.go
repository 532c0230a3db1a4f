/*
Package config manages configuration parsing and validation for boxmigrate.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+-----+ +----+----+ +-----+-----+
	|   YAML    | |   HCL   | |   JSON    |
	|  Parser   | | Parser  | |  Parser   |
	+-----------+ +---------+ +-----------+

🎯 Purpose:
- Provides the Box migration defaults
- Lets a project override any of them from a config file
- Validates and normalizes paths before any file is touched

🔄 Flow:
1. Start from Default()
2. Overlay the values present in the file
3. Validate, clean paths and fill the write mode

📝 HCL files can refer to the defaults:

	target_module = "${defaults.root}/ui/Box"
	write_mode    = "any"
*/
package config
