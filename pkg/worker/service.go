package worker

type ListView struct {
	Term    string
	Workers []Worker
	Counts  StatusCounts
}

func (v ListView) Empty() bool {
	return len(v.Workers) == 0
}

type Service struct {
	workers []Worker
}

func NewService(workers []Worker) *Service {
	return &Service{workers: workers}
}

func (s *Service) List(term string) ListView {
	return ListView{
		Term:    term,
		Workers: Filter(s.workers, term),
		Counts:  CountByStatus(s.workers),
	}
}
