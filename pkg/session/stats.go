package session

import (
	"net/http"
	"sync"

	"github.com/bookwell/bookwell/internal/event_bus"
	"github.com/bookwell/bookwell/internal/rest"
)

// TabStats counts how often each tab was opened across all sessions.
type TabStats struct {
	mu    sync.Mutex
	views map[Tab]int
}

type TabStatsDTO struct {
	Views map[string]int `json:"views"`
}

func NewTabStats() *TabStats {
	return &TabStats{views: make(map[Tab]int)}
}

// Subscribe starts counting tab selections published on eventBus.
func (t *TabStats) Subscribe(eventBus *event_bus.EventBus) (unsubscribe func()) {
	return event_bus.SubscribeTyped(eventBus, event_bus.TabSelected, func(e event_bus.EventT[event_bus.TabSelectedEvent]) error {
		tab, err := ParseTab(e.Data.To)
		if err != nil {
			return err
		}
		t.record(tab)
		return nil
	})
}

func (t *TabStats) record(tab Tab) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.views[tab]++
}

// Snapshot returns the count for every tab, zero for tabs never opened.
func (t *TabStats) Snapshot() map[Tab]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[Tab]int, len(t.views))
	for _, item := range Navigation() {
		out[item.Tab] = t.views[item.Tab]
	}
	return out
}

// Get godoc
// @Summary Tab usage
// @Description Number of times each tab was selected since start
// @Tags Session
// @Produce json
// @Success 200 {object} TabStatsDTO
// @Router /api/stats/tabs [get]
func (t *TabStats) Get(w http.ResponseWriter, r *http.Request) {
	snapshot := t.Snapshot()
	dto := TabStatsDTO{Views: make(map[string]int, len(snapshot))}
	for tab, n := range snapshot {
		dto.Views[string(tab)] = n
	}
	rest.WriteJSON(w, http.StatusOK, dto)
}
