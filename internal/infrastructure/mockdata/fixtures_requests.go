// Package mockdata produces the demo datasets: a fixed set of records
// mirroring a realistic service-desk snapshot, and a generator for
// synthetic records of arbitrary size.
package mockdata

import (
	"time"

	"github.com/esit-pro/service-desk/internal/domain/servicerequest"
	vo "github.com/esit-pro/service-desk/internal/domain/servicerequest/valueobjects"
)

// FixedServiceRequests returns the 15-record demo set. Timestamps are
// relative to now so the data always looks current.
func FixedServiceRequests(now time.Time) []*servicerequest.ServiceRequest {
	return []*servicerequest.ServiceRequest{
		{
			ID:          "ticket-1",
			Title:       "Network Outage in Accounting Department",
			Description: "The accounting department is experiencing a complete network outage affecting 8 workstations. Users cannot access shared drives or internet. Started approximately 30 minutes ago.",
			ImageURL:    "https://images.unsplash.com/photo-1558494949-ef010cbdcc31?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
			Category:    "Network",
			Tags:        []string{"outage", "critical", "accounting"},
			Priority:    5,
			Status:      vo.StatusInProgress,
			CreatedAt:   now.Add(-2 * time.Hour),
			UpdatedAt:   now,
		},
		{
			ID:          "ticket-2",
			Title:       "Email Configuration for New Employee",
			Description: "New marketing coordinator Jane Smith starts on Monday. Please set up email account, add to appropriate distribution lists, and configure on her laptop.",
			Category:    "User Management",
			Tags:        []string{"new-hire", "email", "onboarding"},
			Priority:    3,
			Status:      vo.StatusNew,
			CreatedAt:   now.Add(-24 * time.Hour),
			UpdatedAt:   now,
		},
		{
			ID:          "ticket-3",
			Title:       "Printer Offline in Conference Room",
			Description: "The HP LaserJet in the main conference room is showing offline status. Cannot print documents for client meeting scheduled at 2pm today.",
			ImageURL:    "https://images.unsplash.com/photo-1612815154858-60aa4c59eaa6?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
			Category:    "Hardware",
			Tags:        []string{"printer", "conference-room"},
			Priority:    4,
			Status:      vo.StatusInProgress,
			CreatedAt:   now.Add(-3 * time.Hour),
			UpdatedAt:   now,
		},
		{
			ID:          "ticket-4",
			Title:       "VPN Access for Remote Worker",
			Description: "Developer Tom Johnson needs VPN access set up for remote work starting next week. He will be working from home permanently and needs full access to development servers.",
			Category:    "Security",
			Tags:        []string{"vpn", "remote-work", "access"},
			Priority:    3,
			Status:      vo.StatusWaitingOnClient,
			CreatedAt:   now.Add(-2 * 24 * time.Hour),
			UpdatedAt:   now,
		},
		{
			ID:          "ticket-5",
			Title:       "CRM Software Crashing on Sales Team Computers",
			Description: "Multiple sales team members reporting CRM application crashes when generating reports. Error log attached. Issue began after yesterday's software update.",
			ImageURL:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
			Category:    "Software",
			Tags:        []string{"crm", "crash", "sales"},
			Priority:    4,
			Status:      vo.StatusInProgress,
			CreatedAt:   now.Add(-18 * time.Hour),
			UpdatedAt:   now,
		},
		{
			ID:          "ticket-6",
			Title:       "Server Room A/C Maintenance",
			Description: "Schedule preventive maintenance for server room air conditioning system. Last service was 6 months ago, and we're observing slightly higher temperatures than normal.",
			Category:    "Facilities",
			Tags:        []string{"server-room", "maintenance", "cooling"},
			Priority:    3,
			Status:      vo.StatusNew,
			CreatedAt:   now.Add(-5 * 24 * time.Hour),
			UpdatedAt:   now,
		},
		{
			ID:          "ticket-7",
			Title:       "Windows Update Breaking Custom Application",
			Description: "Recent Windows security update KB5025885 is causing our inventory tracking application to fail at startup. Affects 3 warehouse computers. Need rollback or fix ASAP.",
			Category:    "Software",
			Tags:        []string{"windows", "update", "compatibility"},
			Priority:    4,
			Status:      vo.StatusInProgress,
			CreatedAt:   now.Add(-36 * time.Hour),
			UpdatedAt:   now,
		},
		{
			ID:          "ticket-8",
			Title:       "Backup Recovery Test",
			Description: "Quarterly backup recovery test needed. Please restore last week's accounting database backup to test environment and verify data integrity.",
			Category:    "Data Management",
			Tags:        []string{"backup", "testing", "compliance"},
			Priority:    3,
			Status:      vo.StatusNew,
			CreatedAt:   now.Add(-3 * 24 * time.Hour),
			UpdatedAt:   now,
		},
		{
			ID:          "ticket-9",
			Title:       "CEO Laptop Replacement",
			Description: "CEO needs new laptop prepared before international trip next week. Transfer all data, email, and applications from current device. High-priority executive request.",
			ImageURL:    "https://images.unsplash.com/photo-1593642702749-b7d2a804fbcf?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
			Category:    "Hardware",
			Tags:        []string{"executive", "laptop", "migration"},
			Priority:    5,
			Status:      vo.StatusInProgress,
			CreatedAt:   now.Add(-4 * 24 * time.Hour),
			UpdatedAt:   now,
		},
		{
			ID:          "ticket-10",
			Title:       "WiFi Signal Weak in East Wing",
			Description: "Multiple complaints about poor WiFi connectivity in east wing offices. Signal drops frequently and speeds are below acceptable levels for video conferencing.",
			Category:    "Network",
			Tags:        []string{"wifi", "connectivity", "signal"},
			Priority:    3,
			Status:      vo.StatusNew,
			CreatedAt:   now.Add(-7 * 24 * time.Hour),
			UpdatedAt:   now,
		},
		{
			ID:          "ticket-11",
			Title:       "Phishing Training for Accounting Team",
			Description: "Schedule security awareness and phishing identification training for accounting department following recent attempt. Need 1-hour slot for 12 employees.",
			Category:    "Security",
			Tags:        []string{"training", "phishing", "security"},
			Priority:    2,
			Status:      vo.StatusWaitingOnClient,
			CreatedAt:   now.Add(-10 * 24 * time.Hour),
			UpdatedAt:   now,
		},
		{
			ID:          "ticket-12",
			Title:       "Office 365 License Renewal",
			Description: "Our Office 365 Business Premium licenses expire in 30 days. Please process renewal for 75 users and confirm updated billing with finance department.",
			Category:    "Licensing",
			Tags:        []string{"office365", "renewal", "licenses"},
			Priority:    3,
			Status:      vo.StatusNew,
			CreatedAt:   now.Add(-6 * 24 * time.Hour),
			UpdatedAt:   now,
		},
		{
			ID:          "ticket-13",
			Title:       "Conference Room Video System Not Working",
			Description: "Video conferencing system in main boardroom not connecting to calls. External clients unable to join scheduled demo at 9am. System was working yesterday.",
			ImageURL:    "https://images.unsplash.com/photo-1505373877841-8d25f7d46678?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80",
			Category:    "Hardware",
			Tags:        []string{"conference", "video", "urgent"},
			Priority:    5,
			Status:      vo.StatusInProgress,
			CreatedAt:   now.Add(-1 * time.Hour),
			UpdatedAt:   now,
		},
		{
			ID:          "ticket-14",
			Title:       "Data Migration to New CRM",
			Description: "Plan and schedule customer data migration from legacy CRM to new Salesforce instance. Approximately 50,000 customer records and associated history need transfer.",
			Category:    "Data Management",
			Tags:        []string{"migration", "crm", "salesforce"},
			Priority:    4,
			Status:      vo.StatusNew,
			CreatedAt:   now.Add(-14 * 24 * time.Hour),
			UpdatedAt:   now,
		},
		{
			ID:          "ticket-15",
			Title:       "Shared Drive Permissions Audit",
			Description: "Conduct audit of permissions on all shared network drives following department reorganization. Ensure proper access controls and remove permissions for departed employees.",
			Category:    "Security",
			Tags:        []string{"audit", "permissions", "compliance"},
			Priority:    2,
			Status:      vo.StatusNew,
			CreatedAt:   now.Add(-21 * 24 * time.Hour),
			UpdatedAt:   now,
		},
	}
}
