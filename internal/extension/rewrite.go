package extension

import (
	"fmt"
	"os"

	"github.com/dalseo/xticket-ip/pkg/util"
	"github.com/samber/oops"
)

// ServerURL returns the base URL of the Dalseo API server at ip.
func ServerURL(ip string) string {
	return fmt.Sprintf("http://%s:%s", ip, ServerPort)
}

// ContentScriptLine is the whole content of config.content.js for ip.
func ContentScriptLine(ip string) string {
	return fmt.Sprintf("const DALSEO_SERVER_API_BASE_URL = '%s';", ServerURL(ip))
}

// ModuleLine is the whole content of config.module.js for ip.
func ModuleLine(ip string) string {
	return fmt.Sprintf("export const DALSEO_SERVER_API_BASE_URL = '%s';", ServerURL(ip))
}

// RewriteConfig overwrites the named script config with exactly line.
// The file must already exist.
func RewriteConfig(loc Location, name, line string) error {
	path := loc.Artifact(name)
	if !util.FileExists(path) {
		return &Error{Kind: KindArtifactMissing, Path: path}
	}

	if err := util.OverwriteFile(path, []byte(line)); err != nil {
		if os.IsNotExist(err) {
			return &Error{Kind: KindArtifactMissing, Path: path, Err: err}
		}
		return &Error{Kind: KindIOFailure, Path: path, Err: oops.Wrapf(err, "failed to write %s", name)}
	}
	return nil
}
