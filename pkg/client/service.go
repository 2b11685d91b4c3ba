package client

// ListView is what the clients tab renders for a search term.
type ListView struct {
	Term    string
	Clients []Client
	Counts  StatusCounts
}

func (v ListView) Empty() bool {
	return len(v.Clients) == 0
}

type Service struct {
	clients []Client
}

func NewService(clients []Client) *Service {
	return &Service{clients: clients}
}

// List filters by term. Counts always cover the full, unfiltered list.
func (s *Service) List(term string) ListView {
	return ListView{
		Term:    term,
		Clients: Filter(s.clients, term),
		Counts:  CountByStatus(s.clients),
	}
}
