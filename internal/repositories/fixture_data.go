package repositories

import (
	"time"

	"seasfinance/internal/domain/models"
)

func demoEmployees() []models.Employee {
	return []models.Employee{
		{
			ID:              "6f1c2a7e-0d5b-4e43-9a59-1b0f3c1e7a01",
			EmployeeID:      "EMP-LZ9X2M4K-DEMO1",
			EmployeeName:    "John Smith",
			Department:      "Engineering",
			LCAT:            "Solution Architect/Engineering Lead (SA/Eng Lead)",
			EducationLevel:  "Master's Degree",
			YearsExperience: 12,
			Role:            models.RoleManager,
			Status:          models.StatusActive,
			EmployeeType:    models.TypeEmployee,
			PricedSalary:    140000,
			CurrentSalary:   145000,
			HoursPerMonth:   160,
			BillRate:        95,
			StartDate:       models.NewDate(2023, time.January, 15),
			Notes:           "Team lead for core platform",
			MonthlyData: []models.MonthlyRecord{
				{Month: "2024-01", Hours: 168, Revenue: 15960, ActualHours: 165, ActualRevenue: 15675},
				{Month: "2024-02", Hours: 160, Revenue: 15200, ActualHours: 158, ActualRevenue: 15010},
			},
		},
		{
			ID:              "6f1c2a7e-0d5b-4e43-9a59-1b0f3c1e7a02",
			EmployeeID:      "EMP-MN8V3L7P-DEMO2",
			EmployeeName:    "Sarah Johnson",
			Department:      "SEAS IT",
			LCAT:            "AI Engineering Lead (AI Lead)",
			EducationLevel:  "PhD",
			YearsExperience: 9,
			Role:            models.RoleEmployee,
			Status:          models.StatusActive,
			EmployeeType:    models.TypeEmployee,
			PricedSalary:    130000,
			CurrentSalary:   135000,
			HoursPerMonth:   160,
			BillRate:        85,
			StartDate:       models.NewDate(2023, time.March, 1),
			Notes:           "ML model development specialist",
			MonthlyData: []models.MonthlyRecord{
				{Month: "2024-01", Hours: 160, Revenue: 13600, ActualHours: 162, ActualRevenue: 13770},
				{Month: "2024-02", Hours: 160, Revenue: 13600, ActualHours: 155, ActualRevenue: 13175},
			},
		},
		{
			ID:                   "6f1c2a7e-0d5b-4e43-9a59-1b0f3c1e7a03",
			EmployeeID:           "EMP-QR4T8W2N-DEMO3",
			EmployeeName:         "Miguel Torres",
			Department:           "Data Science",
			LCAT:                 "Senior Software Engineer (Sr. SWE)",
			EducationLevel:       "Bachelor's Degree",
			YearsExperience:      7,
			Role:                 models.RoleEmployee,
			Status:               models.StatusActive,
			EmployeeType:         models.TypeSubcontractor,
			SubcontractorCompany: "Northwind Analytics",
			PricedSalary:         118000,
			CurrentSalary:        120000,
			HoursPerMonth:        160,
			BillRate:             88,
			StartDate:            models.NewDate(2023, time.June, 5),
			MonthlyData: []models.MonthlyRecord{
				{Month: "2024-01", Hours: 160, Revenue: 14080, ActualHours: 160, ActualRevenue: 14080},
			},
		},
	}
}

func demoIndirectCosts() []models.IndirectCost {
	return []models.IndirectCost{
		{Month: "2024-01", FringeAmount: 7500, OverheadAmount: 12000, GAAmount: 2500, ProfitAmount: 1500, TotalAmount: 23500, Notes: "Demo monthly indirect costs"},
		{Month: "2024-02", FringeAmount: 7344, OverheadAmount: 11520, GAAmount: 2448, ProfitAmount: 1440, TotalAmount: 22752},
	}
}

func demoODCItems() []models.ODCItem {
	return []models.ODCItem{
		{ID: "0b8d6c1a-4f7e-4a3b-8e21-5c9d2f6a1b01", Month: "2024-01", Category: "Travel", Description: "Client site visit", Amount: 2500, Notes: "Flight and hotel"},
		{ID: "0b8d6c1a-4f7e-4a3b-8e21-5c9d2f6a1b02", Month: "2024-01", Category: "Software", Description: "Development tools license", Amount: 1200, Notes: "Annual subscription"},
		{ID: "0b8d6c1a-4f7e-4a3b-8e21-5c9d2f6a1b03", Month: "2024-01", Category: "Equipment", Description: "Laptop for new hire", Amount: 3200, Notes: "MacBook Pro"},
	}
}
