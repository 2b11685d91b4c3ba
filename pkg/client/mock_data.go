package client

import "github.com/bookwell/bookwell/pkg/appointment"

func date(s string) *appointment.DateKey {
	k := appointment.DateKey(s)
	return &k
}

func MockClients() []Client {
	return []Client{
		{
			ID:                "1",
			Name:              "Sarah Johnson",
			Email:             "sarah@email.com",
			Phone:             "+1 (555) 123-4567",
			LastAppointment:   date("2025-01-10"),
			NextAppointment:   date("2025-01-17"),
			TotalAppointments: 5,
			Status:            StatusActive,
		},
		{
			ID:                "2",
			Name:              "Mike Chen",
			Email:             "mike.chen@email.com",
			Phone:             "+1 (555) 234-5678",
			LastAppointment:   date("2025-01-12"),
			NextAppointment:   date("2025-01-17"),
			TotalAppointments: 3,
			Status:            StatusActive,
		},
		{
			ID:                "3",
			Name:              "Emma Davis",
			Email:             "emma.davis@email.com",
			Phone:             "+1 (555) 345-6789",
			LastAppointment:   date("2025-01-15"),
			NextAppointment:   date("2025-01-18"),
			TotalAppointments: 8,
			Status:            StatusActive,
		},
		{
			ID:                "4",
			Name:              "Robert Wilson",
			Email:             "robert.w@email.com",
			Phone:             "+1 (555) 456-7890",
			LastAppointment:   date("2024-12-20"),
			TotalAppointments: 2,
			Status:            StatusInactive,
		},
		{
			ID:                "5",
			Name:              "Jessica Brown",
			Email:             "jessica.brown@email.com",
			Phone:             "+1 (555) 567-8901",
			TotalAppointments: 0,
			Status:            StatusNew,
		},
	}
}
