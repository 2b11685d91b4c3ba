package session

import (
	"errors"
	"fmt"
)

type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabCalendar  Tab = "calendar"
	TabClients   Tab = "clients"
	TabWorkers   Tab = "workers"
	TabSettings  Tab = "settings"
)

var ErrUnknownTab = errors.New("unknown tab")

func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case TabDashboard, TabCalendar, TabClients, TabWorkers, TabSettings:
		return Tab(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// NavigationItem is one entry of the bottom navigation bar.
type NavigationItem struct {
	Tab   Tab
	Label string
	Path  string
}

func Navigation() []NavigationItem {
	return []NavigationItem{
		{Tab: TabDashboard, Label: "Home", Path: "/"},
		{Tab: TabCalendar, Label: "Calendar", Path: "/calendar"},
		{Tab: TabClients, Label: "Clients", Path: "/clients"},
		{Tab: TabWorkers, Label: "Workers", Path: "/workers"},
		{Tab: TabSettings, Label: "Settings", Path: "/settings"},
	}
}
