/*
Package operation provides the migrate and scan runs over a source tree.

	+-------------+
	|  Operation  |
	| (migrate /  |
	|    scan)    |
	+------+------+
	       |
	+------+------+
	|   codemod   |
	| (Transform) |
	+------+------+
	       |
	+------+------+
	|   status    |
	| (files, io) |
	+-------------+

🎯 Purpose:
- Selects source files through status.FileManager
- Runs codemod.Transform on each file in path order
- Applies the configured write mode
- Reports each file and the final summary via log.Logger

🔄 Flow:
1. Glob the configured root, minus ignore patterns
2. Skip the shared Box module itself
3. Transform, then write (migrate) or collect (scan)
4. Stop at the first failing file

🔍 Example:

	op, err := operation.NewMigrateOperation(opts)
	if err != nil {
		return err
	}
	err = operation.NewRunner(logger).Run(ctx, "migrate", op)

A scan never writes. With fail-on-pending it returns an error wrapping
ErrPending when files would still be written.
*/
package operation
