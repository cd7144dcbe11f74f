package audio

import (
	"fmt"
	"strings"
)

// Role selects which default endpoint is requested. On most systems all
// roles resolve to the same device.
type Role uint8

const (
	RoleConsole        = Role(0)
	RoleMultimedia     = Role(1)
	RoleCommunications = Role(2)

	RoleDefault = RoleConsole
)

var (
	AllRoles = Roles{
		RoleConsole,
		RoleMultimedia,
		RoleCommunications,
	}
)

func (this *Role) Set(plain string) error {
	switch strings.TrimSpace(strings.ToLower(plain)) {
	case "console", "0":
		*this = RoleConsole
		return nil
	case "multimedia", "1":
		*this = RoleMultimedia
		return nil
	case "communications", "communication", "2":
		*this = RoleCommunications
		return nil
	default:
		return fmt.Errorf("illegal-audio-role: %s", plain)
	}
}

func (this Role) String() string {
	v, err := this.MarshalText()
	if err != nil {
		return fmt.Sprintf("illegal-audio-role-%d", this)
	}
	return string(v)
}

func (this Role) MarshalText() (text []byte, err error) {
	switch this {
	case RoleConsole:
		return []byte("console"), nil
	case RoleMultimedia:
		return []byte("multimedia"), nil
	case RoleCommunications:
		return []byte("communications"), nil
	default:
		return nil, fmt.Errorf("illegal audio role: %d", this)
	}
}

func (this *Role) UnmarshalText(text []byte) error {
	return this.Set(string(text))
}

type Roles []Role

func (this Roles) Strings() []string {
	result := make([]string, len(this))
	for i, v := range this {
		result[i] = v.String()
	}
	return result
}

func (this Roles) String() string {
	return strings.Join(this.Strings(), ",")
}
