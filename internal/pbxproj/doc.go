// Package pbxproj patches an Xcode project.pbxproj in place. The file is
// treated as opaque text: records are inserted at the well-known section
// markers rather than through a structural parse, matching what Xcode
// itself tolerates. The package covers exactly what the sync flow needs:
// registering source files in the PBXFileReference and PBXBuildFile
// sections and the Sources build phase.
package pbxproj
