package extension

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyWritesAllArtifacts(t *testing.T) {
	loc := newTestLocation(t, allArtifacts())
	c := NewConfigurator(loc)

	require.NoError(t, c.Apply("100.7.163.55"))

	assert.Equal(t, "const DALSEO_SERVER_API_BASE_URL = 'http://100.7.163.55:8081';", readArtifact(t, loc, ContentConfigFile))
	assert.Equal(t, "export const DALSEO_SERVER_API_BASE_URL = 'http://100.7.163.55:8081';", readArtifact(t, loc, ModuleConfigFile))
	m := decodeManifest(t, loc)
	assert.Equal(t,
		[]any{"https://admin3.xticket.kr:9090/main/mainWrap.do", "http://100.7.163.55:8081/*"},
		m["host_permissions"])
}

func TestApplyStopsAtFirstMissingArtifact(t *testing.T) {
	files := allArtifacts()
	delete(files, ModuleConfigFile)
	loc := newTestLocation(t, files)
	c := NewConfigurator(loc)

	err := c.Apply("10.0.0.1")
	require.Error(t, err)
	assert.Equal(t, KindArtifactMissing, KindOf(err))
	assert.Contains(t, err.Error(), ModuleConfigFile)

	// Written before the failure, not rolled back
	assert.Equal(t, ContentScriptLine("10.0.0.1"), readArtifact(t, loc, ContentConfigFile))
	// Never reached
	assert.Equal(t, testManifest, readArtifact(t, loc, ManifestFile))
	_, statErr := os.Stat(loc.Artifact(ModuleConfigFile))
	assert.True(t, os.IsNotExist(statErr))
}

func TestApplyRejectsInvalidAddress(t *testing.T) {
	files := allArtifacts()
	loc := newTestLocation(t, files)
	c := NewConfigurator(loc)

	err := c.Apply("1.2.3")
	require.Error(t, err)
	assert.Equal(t, KindInvalidIPFormat, KindOf(err))

	for name, content := range files {
		assert.Equal(t, content, readArtifact(t, loc, name), name)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	loc := newTestLocation(t, allArtifacts())
	c := NewConfigurator(loc)

	require.NoError(t, c.Apply("10.0.0.1"))
	first := map[string]string{}
	for _, name := range c.ArtifactNames() {
		first[name] = readArtifact(t, loc, name)
	}

	require.NoError(t, c.Apply("10.0.0.1"))
	for _, name := range c.ArtifactNames() {
		assert.Equal(t, first[name], readArtifact(t, loc, name), name)
	}
}

func TestArtifactNamesOrder(t *testing.T) {
	c := NewConfigurator(Location{})
	assert.Equal(t, []string{ContentConfigFile, ModuleConfigFile, ManifestFile}, c.ArtifactNames())
}

func TestInspectAfterApply(t *testing.T) {
	loc := newTestLocation(t, allArtifacts())
	c := NewConfigurator(loc)
	require.NoError(t, c.Apply("172.16.5.4"))

	snap := c.Inspect()
	assert.Equal(t, loc.Dir(), snap.Dir)
	assert.Equal(t, "X-TICKET", snap.ExtensionName)
	assert.Equal(t, "1.2.0", snap.Version)
	assert.Equal(t, HostPermissions("172.16.5.4"), snap.HostPermissions)

	require.Len(t, snap.Artifacts, 3)
	assert.Equal(t, ArtifactState{Name: ContentConfigFile, Present: true, ServerURL: "http://172.16.5.4:8081"}, snap.Artifacts[0])
	assert.Equal(t, ArtifactState{Name: ModuleConfigFile, Present: true, ServerURL: "http://172.16.5.4:8081"}, snap.Artifacts[1])
	assert.Equal(t, ArtifactState{Name: ManifestFile, Present: true, ServerURL: "http://172.16.5.4:8081/*"}, snap.Artifacts[2])
}

func TestInspectReportsMissingAndBrokenFiles(t *testing.T) {
	loc := newTestLocation(t, map[string]string{
		ContentConfigFile: "// nothing configured yet",
		ManifestFile:      `{"name": `,
	})

	snap := NewConfigurator(loc).Inspect()
	require.Len(t, snap.Artifacts, 3)

	assert.True(t, snap.Artifacts[0].Present)
	assert.Empty(t, snap.Artifacts[0].ServerURL)

	assert.False(t, snap.Artifacts[1].Present)

	assert.True(t, snap.Artifacts[2].Present)
	assert.NotEmpty(t, snap.Artifacts[2].Error)
	assert.Empty(t, snap.HostPermissions)
}

func TestInspectKeepsVersionAsWritten(t *testing.T) {
	for _, version := range []string{"1.0", "2", "1.2.3.4"} {
		t.Run(version, func(t *testing.T) {
			loc := newTestLocation(t, map[string]string{
				ManifestFile: `{"name":"X-TICKET","version":"` + version + `"}`,
			})
			assert.Equal(t, version, NewConfigurator(loc).Inspect().Version)
		})
	}
}
