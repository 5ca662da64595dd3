package syncfile

import "fmt"

// Starter returns the contents of a starter sync manifest for `xcsync init`.
func Starter(projectDir, projectName string) string {
	return fmt.Sprintf(`# xcsync sync manifest.
# Declares the Xcode project and the source files that must be registered
# in it before building. Run "xcsync sync" to apply.
project_dir: %s
project_name: %s

# scheme: %s
# destination: "%s"

files:
  - path: V5/Config/V5Config.swift
  - path: V5/Services/V5AudioService.swift
  - path: V5/Services/V5WebSocketService.swift
  - path: V5/Views/V5MainView.swift
`, projectDir, projectName, projectName, DefaultDestination)
}
