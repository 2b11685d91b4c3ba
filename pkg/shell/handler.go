package shell

import (
	"net/http"

	"github.com/bookwell/bookwell/internal/config"
	"github.com/bookwell/bookwell/internal/rest"
	"github.com/bookwell/bookwell/pkg/session"
)

type SplashDTO struct {
	LaunchShowDuration int64  `json:"launchShowDuration"`
	BackgroundColor    string `json:"backgroundColor"`
	ShowSpinner        bool   `json:"showSpinner"`
}

type NavigationItemDTO struct {
	Id    string `json:"id"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

type InfoDTO struct {
	AppId      string              `json:"appId"`
	AppName    string              `json:"appName"`
	WebDir     string              `json:"webDir"`
	ServerUrl  string              `json:"serverUrl,omitempty"`
	Cleartext  bool                `json:"cleartext"`
	Splash     SplashDTO           `json:"splash"`
	Navigation []NavigationItemDTO `json:"navigation"`
}

type Handler struct {
	info InfoDTO
}

func NewHandler(cfg config.Shell) *Handler {
	return &Handler{info: InfoToDTO(cfg, session.Navigation())}
}

// Get godoc
// @Summary Shell metadata
// @Description Packaging settings of the mobile wrapper and the bottom navigation items
// @Tags Shell
// @Produce json
// @Success 200 {object} InfoDTO
// @Router /api/shell [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, h.info)
}

func InfoToDTO(cfg config.Shell, nav []session.NavigationItem) InfoDTO {
	items := make([]NavigationItemDTO, 0, len(nav))
	for _, item := range nav {
		items = append(items, NavigationItemDTO{
			Id:    string(item.Tab),
			Label: item.Label,
			Path:  item.Path,
		})
	}
	return InfoDTO{
		AppId:     cfg.AppId,
		AppName:   cfg.AppName,
		WebDir:    cfg.WebDir,
		ServerUrl: cfg.ServerUrl,
		Cleartext: cfg.Cleartext,
		Splash: SplashDTO{
			LaunchShowDuration: cfg.Splash.LaunchShowDuration.Milliseconds(),
			BackgroundColor:    cfg.Splash.BackgroundColor,
			ShowSpinner:        cfg.Splash.ShowSpinner,
		},
		Navigation: items,
	}
}
