package extension

import (
	"regexp"

	"github.com/dalseo/xticket-ip/pkg/util"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Configurator points the extension at a server. It holds the directory
// resolved at startup and nothing else.
type Configurator struct {
	loc Location
}

// NewConfigurator returns a Configurator for loc.
func NewConfigurator(loc Location) *Configurator {
	return &Configurator{loc: loc}
}

// Location returns the extension directory being configured.
func (c *Configurator) Location() Location {
	return c.loc
}

type step struct {
	name  string
	apply func(ip string) error
}

func (c *Configurator) steps() []step {
	return []step{
		{ContentConfigFile, func(ip string) error { return RewriteConfig(c.loc, ContentConfigFile, ContentScriptLine(ip)) }},
		{ModuleConfigFile, func(ip string) error { return RewriteConfig(c.loc, ModuleConfigFile, ModuleLine(ip)) }},
		{ManifestFile, func(ip string) error { return RewriteManifest(c.loc, ip) }},
	}
}

// Apply rewrites config.content.js, config.module.js and manifest.json in
// that order. The first failure stops the remaining writes; files already
// rewritten stay rewritten.
func (c *Configurator) Apply(ip string) error {
	if err := ValidateIP(ip); err != nil {
		return err
	}
	for _, s := range c.steps() {
		if err := s.apply(ip); err != nil {
			return err
		}
	}
	return nil
}

// ArtifactNames lists the rewritten files in write order.
func (c *Configurator) ArtifactNames() []string {
	return lo.Map(c.steps(), func(s step, _ int) string { return s.name })
}

// ArtifactState describes one file as found on disk.
type ArtifactState struct {
	Name      string `json:"name"`
	Present   bool   `json:"present"`
	ServerURL string `json:"server_url,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Snapshot is the current configuration of the extension.
type Snapshot struct {
	Dir             string          `json:"dir"`
	Artifacts       []ArtifactState `json:"artifacts"`
	ExtensionName   string          `json:"extension_name,omitempty"`
	Version         string          `json:"version,omitempty"`
	HostPermissions []string        `json:"host_permissions"`
}

var serverURLRe = regexp.MustCompile(`DALSEO_SERVER_API_BASE_URL\s*=\s*['"]([^'"]*)['"]`)

// Inspect reads the current state of every artifact. A missing or unreadable
// file is reported on its ArtifactState rather than failing the whole call.
func (c *Configurator) Inspect() *Snapshot {
	snap := &Snapshot{Dir: c.loc.Dir(), HostPermissions: []string{}}

	for _, name := range []string{ContentConfigFile, ModuleConfigFile} {
		snap.Artifacts = append(snap.Artifacts, c.inspectScript(name))
	}

	manifest := ArtifactState{Name: ManifestFile}
	info, err := ReadManifest(c.loc)
	switch {
	case err == nil:
		manifest.Present = true
		snap.ExtensionName = info.Name
		snap.Version = info.Version
		if len(info.HostPermissions) > 0 {
			snap.HostPermissions = info.HostPermissions
		}
		manifest.ServerURL = lo.FindOrElse(info.HostPermissions, "", func(p string) bool { return p != AdminURL })
	case IsKind(err, KindArtifactMissing):
	default:
		manifest.Present = true
		manifest.Error = err.Error()
	}
	snap.Artifacts = append(snap.Artifacts, manifest)

	return snap
}

func (c *Configurator) inspectScript(name string) ArtifactState {
	state := ArtifactState{Name: name}
	path := c.loc.Artifact(name)
	if !util.FileExists(path) {
		return state
	}
	state.Present = true

	content, err := util.ReadFileString(path)
	if err != nil {
		state.Error = oops.Wrapf(err, "failed to read %s", name).Error()
		return state
	}
	if m := serverURLRe.FindStringSubmatch(content); m != nil {
		state.ServerURL = m[1]
	}
	return state
}
