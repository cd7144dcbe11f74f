package shell

import "fmt"

type State uint8

const (
	StateHidden          = State(0)
	StateSettingsVisible = State(1)
)

func (this State) String() string {
	switch this {
	case StateHidden:
		return "hidden"
	case StateSettingsVisible:
		return "settingsVisible"
	default:
		return fmt.Sprintf("illegal-state-%d", this)
	}
}
