// Package platform provides small filesystem helpers shared by the rest of
// the tool: file copying (used for project file backups) and existence checks.
package platform
