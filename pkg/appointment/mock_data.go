package appointment

// MockEvents returns the demo schedule. A fresh slice is built on every call.
func MockEvents() []Event {
	return []Event{
		{
			ID:       "1",
			Title:    "Consultation",
			Client:   "Sarah Johnson",
			Worker:   "Dr. Smith",
			Date:     "2025-01-17",
			Time:     "10:00",
			Duration: 60,
			Status:   StatusConfirmed,
		},
		{
			ID:       "2",
			Title:    "Therapy Session",
			Client:   "Mike Chen",
			Worker:   "Lisa Wilson",
			Date:     "2025-01-17",
			Time:     "14:30",
			Duration: 90,
			Status:   StatusPending,
		},
		{
			ID:       "3",
			Title:    "Follow-up",
			Client:   "Emma Davis",
			Worker:   "Dr. Smith",
			Date:     "2025-01-18",
			Time:     "09:00",
			Duration: 30,
			Status:   StatusConfirmed,
		},
	}
}
