package dashboard

import (
	"github.com/bookwell/bookwell/pkg/appointment"
)

// TodayProvider is satisfied by calendar.Service.
type TodayProvider interface {
	Today() appointment.DateKey
}

type Service struct {
	index *appointment.Index
	today TodayProvider
}

func NewService(index *appointment.Index, today TodayProvider) *Service {
	return &Service{index: index, today: today}
}

func (s *Service) View() View {
	return Build(s.index.All(), s.today.Today())
}
