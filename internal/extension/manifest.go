package extension

import (
	"os"

	"github.com/dalseo/xticket-ip/pkg/util"
	"github.com/samber/oops"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// HostPermissions is the host_permissions value written for ip: the admin
// page first, then every path on the API server.
func HostPermissions(ip string) []string {
	return []string{AdminURL, ServerURL(ip) + "/*"}
}

// RewriteManifest replaces host_permissions in manifest.json and writes the
// document back pretty-printed. Every other field keeps its value and position.
// Extra entries that were in host_permissions are dropped.
func RewriteManifest(loc Location, ip string) error {
	path := loc.Artifact(ManifestFile)
	if !util.FileExists(path) {
		return &Error{Kind: KindArtifactMissing, Path: path}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return &Error{Kind: KindIOFailure, Path: path, Err: oops.Wrapf(err, "failed to read %s", ManifestFile)}
	}

	updated, err := setHostPermissions(content, HostPermissions(ip))
	if err != nil {
		return &Error{Kind: KindIOFailure, Path: path, Err: err}
	}

	if err := util.OverwriteFile(path, util.PrettyJSON(updated)); err != nil {
		return &Error{Kind: KindIOFailure, Path: path, Err: oops.Wrapf(err, "failed to write %s", ManifestFile)}
	}
	return nil
}

func setHostPermissions(content []byte, perms []string) ([]byte, error) {
	if !gjson.ValidBytes(content) {
		return nil, oops.Errorf("%s is not valid JSON", ManifestFile)
	}
	if !gjson.ParseBytes(content).IsObject() {
		return nil, oops.Errorf("%s must contain a JSON object", ManifestFile)
	}

	updated, err := sjson.SetBytes(content, HostPermissionsKey, perms)
	if err != nil {
		return nil, oops.Wrapf(err, "failed to set %s", HostPermissionsKey)
	}
	return updated, nil
}

// ManifestInfo is the part of manifest.json the tool reports on.
type ManifestInfo struct {
	Name            string
	Version         string
	HostPermissions []string
}

// ReadManifest parses the fields of manifest.json shown to the operator.
func ReadManifest(loc Location) (*ManifestInfo, error) {
	path := loc.Artifact(ManifestFile)
	if !util.FileExists(path) {
		return nil, &Error{Kind: KindArtifactMissing, Path: path}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: KindIOFailure, Path: path, Err: oops.Wrapf(err, "failed to read %s", ManifestFile)}
	}
	if !gjson.ValidBytes(content) || !gjson.ParseBytes(content).IsObject() {
		return nil, &Error{Kind: KindIOFailure, Path: path, Err: oops.Errorf("%s is not a JSON object", ManifestFile)}
	}

	info := &ManifestInfo{
		Name:    gjson.GetBytes(content, "name").String(),
		Version: gjson.GetBytes(content, "version").String(),
	}
	for _, p := range gjson.GetBytes(content, HostPermissionsKey).Array() {
		info.HostPermissions = append(info.HostPermissions, p.String())
	}
	return info, nil
}
