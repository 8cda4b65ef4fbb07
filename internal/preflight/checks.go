package preflight

import (
	"context"
	"fmt"
	"os"
	"slices"

	"golang.org/x/sys/unix"
)

// mainStoryTable is the table the database enumeration strategy reads.
const mainStoryTable = "main_story_data"

// CheckDirectoryAccess verifies that the directory exists and can be listed.
// Write access is never required.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read ok)", path)}
}

// CheckMasterDB verifies that the master database is readable and carries
// the main story table.
func CheckMasterDB(ctx context.Context, path string, tables TableLister) Result {
	const name = "Master database"

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.Mode().IsRegular() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not a regular file)", path)}
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	if tables == nil {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read ok)", path)}
	}

	names, err := tables.Tables(ctx, path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: unreadable: %v)", path, err)}
	}
	if !slices.Contains(names, mainStoryTable) {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: table %s missing)", path, mainStoryTable)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d tables, %s present)", path, len(names), mainStoryTable)}
}
