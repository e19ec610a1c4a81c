// Package extension locates the X-TICKET Chrome extension on the operator's
// desktop and rewrites the files that tell it which server to talk to.
package extension

const (
	// DesktopDir is the desktop folder under the user's home directory
	DesktopDir = "Desktop"

	// ProgramFolder is the folder on the desktop that holds the Dalseo programs
	ProgramFolder = "달서프로그램"

	// ExtensionFolder is the unpacked Chrome extension inside ProgramFolder
	ExtensionFolder = "X-TICKET_크롬_확장프로그램"

	// ContentConfigFile is loaded by the content scripts
	ContentConfigFile = "config.content.js"

	// ModuleConfigFile is imported by the ES module scripts
	ModuleConfigFile = "config.module.js"

	// ManifestFile is the extension manifest
	ManifestFile = "manifest.json"

	// ServerPort is the port the Dalseo API server listens on
	ServerPort = "8081"

	// AdminURL is the X-TICKET admin page the extension must always reach
	AdminURL = "https://admin3.xticket.kr:9090/main/mainWrap.do"

	// HostPermissionsKey is the manifest field listing permitted URL patterns
	HostPermissionsKey = "host_permissions"

	// DefaultIPPrefix pre-fills the address form
	DefaultIPPrefix = "100.7.163."
)
