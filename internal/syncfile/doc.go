// Package syncfile handles parsing and validation of the xcsync.yaml sync
// manifest: the declarative file that names the Xcode project, the build
// scheme and destination, and the source files that must be registered in
// the project. Validation is backed by the JSON Schema in the schema/
// subdirectory.
package syncfile
