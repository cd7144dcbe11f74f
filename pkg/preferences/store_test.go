package preferences

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t testing.TB, content *string) *Store {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "auto-mute.json")
	if content != nil {
		require.NoError(t, os.WriteFile(fn, []byte(*content), 0644))
	}
	return NewStore(fn)
}

func content(v string) *string {
	return &v
}

func TestStore_Load_absent(t *testing.T) {
	instance := newTestStore(t, nil)

	actual, err := instance.Load()
	require.NoError(t, err)

	assert.Equal(t, Preferences{Mute: true, Volume: false, Target: true}, actual)
	assert.False(t, actual.IsLogging())
}

func TestStore_Load_partial(t *testing.T) {
	instance := newTestStore(t, content(`{"mute": false}`))

	actual, err := instance.Load()
	require.NoError(t, err)

	assert.Equal(t, Preferences{Mute: false, Volume: false, Target: true}, actual)
}

func TestStore_Load_unknownKeysAreIgnored(t *testing.T) {
	instance := newTestStore(t, content(`{"volume": true, "foo": 1}`))

	actual, err := instance.Load()
	require.NoError(t, err)

	assert.Equal(t, Preferences{Mute: true, Volume: true, Target: true}, actual)
}

func TestStore_Load_complete(t *testing.T) {
	instance := newTestStore(t, content(`{"mute": false, "volume": true, "target": false, "logging": true}`))

	actual, err := instance.Load()
	require.NoError(t, err)

	assert.Equal(t, Preferences{Mute: false, Volume: true, Target: false, Logging: Bool(true)}, actual)
	assert.True(t, actual.IsLogging())
}

func TestStore_Load_malformed(t *testing.T) {
	instance := newTestStore(t, content(`{"mute": `))

	_, err := instance.Load()
	assert.ErrorContains(t, err, "cannot load preferences file")
}

func TestStore_Save_roundTrip(t *testing.T) {
	cases := map[string]Preferences{
		"defaults":   Default(),
		"allOff":     {Mute: false, Volume: false, Target: false},
		"logging":    {Mute: true, Volume: true, Target: false, Logging: Bool(true)},
		"loggingOff": {Mute: false, Volume: true, Target: true, Logging: Bool(false)},
	}
	for name, expected := range cases {
		t.Run(name, func(t *testing.T) {
			instance := newTestStore(t, nil)

			require.NoError(t, instance.Save(expected))
			actual, err := instance.Load()
			require.NoError(t, err)

			assert.Equal(t, expected, actual)
		})
	}
}

func TestStore_Save_loggingOnlyWhenSet(t *testing.T) {
	instance := newTestStore(t, nil)

	require.NoError(t, instance.Save(Default()))
	raw, err := os.ReadFile(instance.File)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mute": true, "volume": false, "target": true}`, string(raw))

	require.NoError(t, instance.Save(Default().WithChecks(false, true, false)))
	raw, err = os.ReadFile(instance.File)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mute": false, "volume": true, "target": false}`, string(raw))
}

func TestStore_Save_keepsLoggingOnSettingsChange(t *testing.T) {
	instance := newTestStore(t, content(`{"mute": true, "volume": false, "target": true, "logging": true}`))

	loaded, err := instance.Load()
	require.NoError(t, err)

	require.NoError(t, instance.Save(loaded.WithChecks(false, true, false)))

	raw, err := os.ReadFile(instance.File)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mute": false, "volume": true, "target": false, "logging": true}`, string(raw))
}

func TestDefaultFile(t *testing.T) {
	assert.Equal(t, ".json", filepath.Ext(DefaultFile()))
	assert.Equal(t, DefaultFile(), NewStore("").File)
}
