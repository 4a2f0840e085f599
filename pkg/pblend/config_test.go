package pblend

import(
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	c := NewConfig()
	assert.Equal(t, 5, c.MaxLevels)
	assert.Equal(t, 5, c.FilterSizeImage)
	assert.Equal(t, 3, c.FilterSizeMask)
	assert.InDelta(t, 127.0/255.0, c.MaskThreshold, 1e-12)
}

func TestConfigYamlRoundTrip(t *testing.T) {
	c := NewConfig()
	c.MaxLevels = 7
	c.FilterSizeMask = 5
	c.OutputFile = "out.png"

	c2, err := newConfigFromYaml([]byte(c.AsYaml()))
	require.NoError(t, err)
	assert.Equal(t, c, c2)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "blend.yaml")
	yaml := "maxlevels: 3\nfiltersizeimage: 7\n"
	require.NoError(t, os.WriteFile(filename, []byte(yaml), 0644))

	c, err := LoadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, 3, c.MaxLevels)
	assert.Equal(t, 7, c.FilterSizeImage)

	// Fields the file is silent on keep their defaults
	assert.Equal(t, 3, c.FilterSizeMask)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
