// Package nav holds the navigation state of the shell: which screen is
// active and the transitions between screens.
package nav

import "strings"

// ScreenID identifies one of the shell's screens.
type ScreenID int

const (
	Landing ScreenID = iota
	Menu
	Users
	Admin
	Analytics
	Settings
)

var screenNames = [...]string{
	Landing:   "landing",
	Menu:      "menu",
	Users:     "users",
	Admin:     "admin",
	Analytics: "analytics",
	Settings:  "settings",
}

func (s ScreenID) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return screenNames[s]
}

// Valid reports whether s is one of the defined screens.
func (s ScreenID) Valid() bool {
	return s >= Landing && s <= Settings
}

// IsDetail reports whether s is one of the pages reachable from the menu.
func (s ScreenID) IsDetail() bool {
	return s >= Users && s <= Settings
}

// Parse maps a screen name to its ScreenID. Unknown names yield Landing
// and false.
func Parse(name string) (ScreenID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id, n := range screenNames {
		if n == name {
			return ScreenID(id), true
		}
	}
	return Landing, false
}

// All returns every screen in declaration order.
func All() []ScreenID {
	return []ScreenID{Landing, Menu, Users, Admin, Analytics, Settings}
}

// Details returns the screens listed on the menu.
func Details() []ScreenID {
	return []ScreenID{Users, Admin, Analytics, Settings}
}
