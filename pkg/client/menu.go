package client

// Action is what the game loop must do after a menu interaction.
type Action int

const (
	ActionNone Action = iota
	ActionReady
	ActionDisconnect
	ActionQuit
)

// MenuItem is one entry of the in-game menu.
type MenuItem string

const (
	ItemStartGame    MenuItem = "Start Game"
	ItemDisconnect   MenuItem = "Disconnect"
	ItemInstructions MenuItem = "Instructions"
	ItemQuit         MenuItem = "Quit"
)

// MenuItems lists the entries in display order.
var MenuItems = []MenuItem{ItemStartGame, ItemDisconnect, ItemInstructions, ItemQuit}

const Instructions = `W/S forward/back  A/D strafe  SPACE up  CTRL down
Mouse (right button held) to look
Fly close to the boids to capture them
M menu  T instructions  ESC quit`

// Menu holds the visibility state of the overlay screens.
type Menu struct {
	Visible          bool
	ShowInstructions bool
	playing          bool
}

func NewMenu() *Menu {
	return &Menu{Visible: true}
}

// Toggle shows or hides the menu (M key).
func (m *Menu) Toggle() { m.Visible = !m.Visible }

// ToggleInstructions shows or hides the help text (T key).
func (m *Menu) ToggleInstructions() { m.ShowInstructions = !m.ShowInstructions }

// Playing reports whether Start Game was chosen and not yet undone.
func (m *Menu) Playing() bool { return m.playing }

// Select handles a click on item.
func (m *Menu) Select(item MenuItem) Action {
	switch item {
	case ItemStartGame:
		if m.playing {
			m.Visible = false
			return ActionNone
		}
		m.playing = true
		m.Visible = false
		return ActionReady
	case ItemDisconnect:
		m.playing = false
		return ActionDisconnect
	case ItemInstructions:
		m.ToggleInstructions()
	case ItemQuit:
		return ActionQuit
	}
	return ActionNone
}
