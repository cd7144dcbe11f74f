package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Set(t *testing.T) {
	cases := map[string]Role{
		"console":        RoleConsole,
		" Console ":      RoleConsole,
		"0":              RoleConsole,
		"multimedia":     RoleMultimedia,
		"communications": RoleCommunications,
		"communication":  RoleCommunications,
	}
	for plain, expected := range cases {
		t.Run(plain, func(t *testing.T) {
			var actual Role
			require.NoError(t, actual.Set(plain))
			assert.Equal(t, expected, actual)
		})
	}

	var actual Role
	assert.EqualError(t, actual.Set("foo"), "illegal-audio-role: foo")
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "console", RoleConsole.String())
	assert.Equal(t, "multimedia", RoleMultimedia.String())
	assert.Equal(t, "communications", RoleCommunications.String())
	assert.Equal(t, "illegal-audio-role-66", Role(66).String())
	assert.Equal(t, "console,multimedia,communications", AllRoles.String())
}

func TestRole_UnmarshalText(t *testing.T) {
	for _, role := range AllRoles {
		text, err := role.MarshalText()
		require.NoError(t, err)

		var actual Role
		require.NoError(t, actual.UnmarshalText(text))
		assert.Equal(t, role, actual)
	}

	_, err := Role(66).MarshalText()
	assert.Error(t, err)
}
