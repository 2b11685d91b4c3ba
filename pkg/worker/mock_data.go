package worker

func MockWorkers() []Worker {
	return []Worker{
		{
			ID:                "1",
			Name:              "Dr. Smith",
			Email:             "dr.smith@clinic.com",
			Phone:             "+1 (555) 111-2222",
			Specialization:    "General Consultation",
			Rating:            4.8,
			TotalClients:      45,
			TodayAppointments: 6,
			WeeklyHours:       35,
			Status:            StatusAvailable,
		},
		{
			ID:                "2",
			Name:              "Lisa Wilson",
			Email:             "lisa.wilson@clinic.com",
			Phone:             "+1 (555) 222-3333",
			Specialization:    "Therapy & Counseling",
			Rating:            4.9,
			TotalClients:      32,
			TodayAppointments: 4,
			WeeklyHours:       40,
			Status:            StatusBusy,
		},
		{
			ID:                "3",
			Name:              "Michael Davis",
			Email:             "m.davis@clinic.com",
			Phone:             "+1 (555) 333-4444",
			Specialization:    "Physiotherapy",
			Rating:            4.7,
			TotalClients:      28,
			TodayAppointments: 3,
			WeeklyHours:       30,
			Status:            StatusAvailable,
		},
		{
			ID:                "4",
			Name:              "Sarah Lee",
			Email:             "sarah.lee@clinic.com",
			Phone:             "+1 (555) 444-5555",
			Specialization:    "Nutrition Counseling",
			Rating:            4.6,
			TotalClients:      22,
			TodayAppointments: 0,
			WeeklyHours:       25,
			Status:            StatusOffline,
		},
	}
}
