package recent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyRegistry = `<application>
  <component name="RecentProjectsManager">
    <option name="recentPaths">
      <list>
        <option value="$USER_HOME$/src/alpha" />
        <option value="$USER_HOME$/src/beta" />
      </list>
    </option>
  </component>
</application>`

const modernRegistry = `<application>
  <component name="RecentProjectsManager">
    <option name="additionalInfo">
      <map>
        <entry key="$USER_HOME$/src/gamma">
          <value>
            <RecentProjectMetaInfo opened="true" />
          </value>
        </entry>
        <entry key="/opt/work/delta">
          <value>
            <RecentProjectMetaInfo />
          </value>
        </entry>
      </map>
    </option>
  </component>
</application>`

const mixedRegistry = `<application>
  <component name="RecentProjectsManager">
    <option name="recentPaths">
      <list>
        <option value="$USER_HOME$/src/alpha" />
      </list>
    </option>
    <option name="additionalInfo">
      <map>
        <entry key="$USER_HOME$/src/alpha" />
        <entry key="$USER_HOME$/src/beta" />
      </map>
    </option>
  </component>
</application>`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recentProjects.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseRegistry_LegacyLayout(t *testing.T) {
	paths, err := ParseRegistry(writeFixture(t, legacyRegistry))
	require.NoError(t, err)
	assert.Equal(t, []string{"~/src/alpha", "~/src/beta"}, paths)
}

func TestParseRegistry_ModernLayout(t *testing.T) {
	paths, err := ParseRegistry(writeFixture(t, modernRegistry))
	require.NoError(t, err)
	assert.Equal(t, []string{"~/src/gamma", "/opt/work/delta"}, paths)
}

func TestParseRegistry_SchemasMerge(t *testing.T) {
	// The same path recorded in both layouts collapses to one entry.
	paths, err := ParseRegistry(writeFixture(t, mixedRegistry))
	require.NoError(t, err)
	assert.Equal(t, []string{"~/src/alpha", "~/src/beta"}, paths)
}

func TestParseRegistry_EmptyDocument(t *testing.T) {
	paths, err := ParseRegistry(writeFixture(t, `<application></application>`))
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestParseRegistry_UnrelatedOptionsIgnored(t *testing.T) {
	doc := `<application>
  <component name="SomethingElse">
    <option name="additionalInfo">
      <map>
        <entry key="/should/not/appear" />
      </map>
    </option>
  </component>
</application>`
	paths, err := ParseRegistry(writeFixture(t, doc))
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestParseRegistry_MalformedXML(t *testing.T) {
	_, err := ParseRegistry(writeFixture(t, `<application><unclosed`))
	assert.Error(t, err)
}

func TestParseRegistry_MissingFile(t *testing.T) {
	_, err := ParseRegistry(filepath.Join(t.TempDir(), "nope.xml"))
	assert.Error(t, err)
}
