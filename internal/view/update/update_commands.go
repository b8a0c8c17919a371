package update

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Commands collects what a single model update produces. Direct commands and
// messages keep the order they were added in, component commands follow them.
type Commands struct {
	direct     []tea.Cmd
	components []tea.Cmd
}

func NewUpdateCommands() *Commands {
	return &Commands{
		direct:     make([]tea.Cmd, 0, 4),
		components: make([]tea.Cmd, 0, 4),
	}
}

func (u *Commands) AppendCommand(command tea.Cmd) {
	if command != nil {
		u.direct = append(u.direct, command)
	}
}

func (u *Commands) AppendMessage(message tea.Msg) {
	u.direct = append(u.direct, func() tea.Msg {
		return message
	})
}

// AppendComponent keeps the command returned by a component update.
func (u *Commands) AppendComponent(command tea.Cmd) {
	if command != nil {
		u.components = append(u.components, command)
	}
}

func (u *Commands) Len() int {
	return len(u.direct) + len(u.components)
}

func (u *Commands) Batch() tea.Cmd {
	if u.Len() == 0 {
		return nil
	}
	all := make([]tea.Cmd, 0, u.Len())
	all = append(all, u.direct...)
	all = append(all, u.components...)
	return tea.Batch(all...)
}
