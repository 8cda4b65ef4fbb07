// Package layout decides which of the known installation layouts holds story
// data: the master database at the directory itself, the master database under
// the persistent data folder, or loose files under the deep extracted path.
//
// Resolution is pure existence checks. The database is never opened here.
package layout
