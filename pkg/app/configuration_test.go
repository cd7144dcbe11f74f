package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfiguration_loadFrom(t *testing.T) {
	var instance Configuration
	err := instance.loadFrom(strings.NewReader("preventAutoSave: true\npreferencesFile: foo.json\nlicenseFile: bar.html\n"))
	require.NoError(t, err)

	assert.Equal(t, Configuration{
		PreventAutoSave: true,
		PreferencesFile: "foo.json",
		LicenseFile:     "bar.html",
	}, instance)
}

func TestConfiguration_loadFrom_empty(t *testing.T) {
	instance := NewConfiguration()
	require.NoError(t, instance.loadFrom(strings.NewReader("")))
	assert.Equal(t, NewConfiguration(), instance)
}

func TestConfiguration_loadFrom_unknownField(t *testing.T) {
	var instance Configuration
	err := instance.loadFrom(strings.NewReader("checkInterval: 5s\n"))
	assert.Error(t, err)
}

func TestConfiguration_saveTo(t *testing.T) {
	instance := Configuration{ActionLogFile: "actions.log"}
	buf := new(bytes.Buffer)
	require.NoError(t, instance.saveTo(buf))

	assert.Equal(t, "preventAutoSave: false\nactionLogFile: actions.log\n", buf.String())
}

func TestConfiguration_saveToFile_roundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sub", "configuration.yml")
	instance := Configuration{AllowMultipleInstances: true, PreferencesFile: "p.json"}

	require.NoError(t, instance.saveToFile(fn))

	var loaded Configuration
	require.NoError(t, loaded.loadFromFile(fn, false))
	assert.Equal(t, instance, loaded)
}

func TestConfiguration_loadFromFile_absent(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "absent.yml")
	var instance Configuration

	assert.NoError(t, instance.loadFromFile(fn, true))
	err := instance.loadFromFile(fn, false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfiguration_licenseFile(t *testing.T) {
	assert.Equal(t, "license.html", Configuration{LicenseFile: "license.html"}.licenseFile())
	assert.Equal(t, filepath.Join("resources", "oss_license.html"), lastTwo(Configuration{}.licenseFile()))
}

func lastTwo(fn string) string {
	return filepath.Join(filepath.Base(filepath.Dir(fn)), filepath.Base(fn))
}
