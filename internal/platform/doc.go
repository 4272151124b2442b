// Package platform provides cross-platform filesystem operations for the
// builder: permission management and symlink creation. On Unix it uses chmod
// and native symlinks directly. On Windows permissions are a no-op and
// symlinks fall back to file copying with a .target sidecar when developer
// mode is unavailable.
package platform
