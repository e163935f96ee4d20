package mockdata

import (
	"time"

	"github.com/esit-pro/service-desk/internal/domain/message"
	vo "github.com/esit-pro/service-desk/internal/domain/message/valueobjects"
)

// FixedClientMessages returns the 20-record demo inbox. The first eleven
// correspond to converted service requests; the rest are still in triage.
func FixedClientMessages(now time.Time) []*message.ClientMessage {
	return []*message.ClientMessage{
		{
			ID:               "msg-1",
			ClientID:         "client-accounting",
			ClientName:       "Sarah Johnson",
			ClientEmail:      "sjohnson@acme-accounting.com",
			Subject:          "URGENT: Network Down in Accounting",
			Content:          "Our entire accounting department is unable to access the network. This is preventing us from processing end-of-month reports which are due today. None of the 8 workstations can connect to shared drives or internet. Please send someone ASAP.",
			Received:         now.Add(-2 * time.Hour),
			IsRead:           true,
			IsFlagged:        true,
			Category:         vo.CategorySupport,
			Status:           vo.MessageStatusConverted,
			RelatedServiceID: "ticket-1",
		},
		{
			ID:               "msg-2",
			ClientID:         "client-marketing",
			ClientName:       "Mark Wilson",
			ClientEmail:      "mwilson@company.com",
			Subject:          "Email Setup for New Hire",
			Content:          "Our new marketing coordinator Jane Smith starts next Monday. Can you please set up her email account and make sure it's configured on her new laptop? She'll need to be added to the marketing@company.com and press@company.com distribution lists as well.",
			Attachments:      []string{"jane_smith_onboarding.pdf"},
			Received:         now.Add(-26 * time.Hour),
			IsRead:           true,
			Category:         vo.CategorySupport,
			Status:           vo.MessageStatusConverted,
			RelatedServiceID: "ticket-2",
		},
		{
			ID:               "msg-3",
			ClientID:         "client-sales",
			ClientName:       "Alicia Rodriguez",
			ClientEmail:      "arodriguez@company.com",
			Subject:          "Conference Room Printer Not Working",
			Content:          "The printer in the main conference room isn't working. I've tried restarting it but it still shows as offline. We have an important client presentation at 2pm today and need to print handouts. Please help!",
			Received:         now.Add(-3 * time.Hour),
			IsRead:           true,
			IsFlagged:        true,
			Category:         vo.CategorySupport,
			Status:           vo.MessageStatusConverted,
			RelatedServiceID: "ticket-3",
		},
		{
			ID:               "msg-4",
			ClientID:         "client-dev",
			ClientName:       "Tom Johnson",
			ClientEmail:      "tjohnson@company.com",
			Subject:          "Remote Work VPN Access",
			Content:          "I'll be transitioning to full remote work starting next Monday. Can you please set up VPN access for me? I'll need to connect to all development servers and resources. What information do you need from me to get this set up?",
			Received:         now.Add(-2 * 24 * time.Hour),
			IsRead:           true,
			Category:         vo.CategorySupport,
			Status:           vo.MessageStatusConverted,
			RelatedServiceID: "ticket-4",
		},
		{
			ID:               "msg-5",
			ClientID:         "client-sales",
			ClientName:       "David Chen",
			ClientEmail:      "dchen@company.com",
			Subject:          "CRM Crashing When Generating Reports",
			Content:          "After yesterday's software update, the CRM keeps crashing whenever anyone on the sales team tries to generate a report. This is happening on multiple computers. I've attached the error log. We need this fixed ASAP as month-end reports are due tomorrow.",
			Attachments:      []string{"crm_error_log.txt"},
			Received:         now.Add(-18 * time.Hour),
			IsRead:           true,
			IsFlagged:        true,
			Category:         vo.CategorySupport,
			Status:           vo.MessageStatusConverted,
			RelatedServiceID: "ticket-5",
		},
		{
			ID:               "msg-6",
			ClientID:         "client-facilities",
			ClientName:       "Robert Greene",
			ClientEmail:      "rgreene@company.com",
			Subject:          "Server Room Maintenance Request",
			Content:          "I've noticed the temperature in the server room seems to be running a bit higher than normal. Our logs show it's about 3-4 degrees above optimal. The last A/C maintenance was done about 6 months ago. Can we schedule preventive maintenance soon?",
			Received:         now.Add(-5 * 24 * time.Hour),
			IsRead:           true,
			Category:         vo.CategorySupport,
			Status:           vo.MessageStatusConverted,
			RelatedServiceID: "ticket-6",
		},
		{
			ID:               "msg-7",
			ClientID:         "client-warehouse",
			ClientName:       "Lisa Park",
			ClientEmail:      "lpark@company.com",
			Subject:          "Windows Update Breaking Inventory Application",
			Content:          "After the recent Windows security update, our inventory tracking application won't start at all. This is happening on all three computers in the warehouse. We're having to track everything manually which is causing significant delays. Can you either roll back the update or fix the compatibility issue?",
			Received:         now.Add(-36 * time.Hour),
			IsRead:           true,
			IsFlagged:        true,
			Category:         vo.CategorySupport,
			Status:           vo.MessageStatusConverted,
			RelatedServiceID: "ticket-7",
		},
		{
			ID:               "msg-8",
			ClientID:         "client-exec",
			ClientName:       "Michael Davis",
			ClientEmail:      "ceo@company.com",
			Subject:          "New Laptop Request",
			Content:          "I'll be traveling internationally next week for the European business summit. My current laptop has been having battery issues, and I'd like to have a new one prepared before I leave. Please transfer all my data, email, and applications. I'll need it by Thursday at the latest.",
			Received:         now.Add(-4 * 24 * time.Hour),
			IsRead:           true,
			IsFlagged:        true,
			Category:         vo.CategorySupport,
			Status:           vo.MessageStatusConverted,
			RelatedServiceID: "ticket-9",
		},
		{
			ID:               "msg-9",
			ClientID:         "client-east-wing",
			ClientName:       "Jennifer Kim",
			ClientEmail:      "jkim@company.com",
			Subject:          "Poor WiFi in East Wing Offices",
			Content:          "Everyone in the east wing has been experiencing terrible WiFi connectivity for the past few weeks. Video calls keep dropping, and the internet speed is frustratingly slow. Can someone look into this? We've tried moving closer to access points but it doesn't help much.",
			Received:         now.Add(-7 * 24 * time.Hour),
			IsRead:           true,
			Category:         vo.CategorySupport,
			Status:           vo.MessageStatusConverted,
			RelatedServiceID: "ticket-10",
		},
		{
			ID:               "msg-10",
			ClientID:         "client-accounting",
			ClientName:       "Brian Williams",
			ClientEmail:      "bwilliams@company.com",
			Subject:          "Phishing Attempt Report and Training Request",
			Content:          "We received what looks like a sophisticated phishing email targeting our accounting department. I've forwarded it to security@company.com. Given this attempt, I think it would be wise to schedule a refresher training on identifying phishing attempts for our team. Could you arrange a session for the 12 people in our department?",
			Attachments:      []string{"phishing_email_example.pdf"},
			Received:         now.Add(-10 * 24 * time.Hour),
			IsRead:           true,
			Category:         vo.CategorySupport,
			Status:           vo.MessageStatusConverted,
			RelatedServiceID: "ticket-11",
		},
		{
			ID:               "msg-11",
			ClientID:         "client-conf",
			ClientName:       "Patricia Jones",
			ClientEmail:      "pjones@company.com",
			Subject:          "Boardroom Video System Not Connecting",
			Content:          "The video conferencing system in the main boardroom isn't connecting to any calls. We have an important client demo scheduled for 9am today and external clients can't join. The system was working perfectly yesterday afternoon. Please send someone immediately!",
			Received:         now.Add(-1 * time.Hour),
			IsRead:           true,
			IsFlagged:        true,
			Category:         vo.CategorySupport,
			Status:           vo.MessageStatusConverted,
			RelatedServiceID: "ticket-13",
		},
		{
			ID:          "msg-12",
			ClientID:    "client-billing",
			ClientName:  "Nathan Roberts",
			ClientEmail: "nroberts@company.com",
			Subject:     "Question about software licenses",
			Content:     "We're planning our departmental budget for next quarter and I had a question about our current software licensing costs. Can you provide a breakdown of what we're paying for design software licenses? Also, are there any volume discounts we should be aware of if we add 5 more seats?",
			Received:    now.Add(-8 * time.Hour),
			IsRead:      false,
			Category:    vo.CategoryBilling,
			Status:      vo.MessageStatusNew,
		},
		{
			ID:          "msg-13",
			ClientID:    "client-hr",
			ClientName:  "Emily Wong",
			ClientEmail: "ewong@company.com",
			Subject:     "New Training Portal Feedback",
			Content:     "I've been testing the new employee training portal and have some feedback on usability issues we're encountering. The video playback is stuttering on Chrome browsers, and some users report they can't reset their passwords through the self-service option. Can we schedule a quick call to discuss these issues?",
			Received:    now.Add(-3 * 24 * time.Hour),
			IsRead:      false,
			Category:    vo.CategoryFeedback,
			Status:      vo.MessageStatusNew,
		},
		{
			ID:          "msg-14",
			ClientID:    "client-marketing",
			ClientName:  "James Peterson",
			ClientEmail: "jpeterson@company.com",
			Subject:     "Website update inquiry",
			Content:     "We're planning to update our company website next month and I'd like to know what the process would be for making significant changes. Do you handle this in-house or should we work with an external agency? We'll need new product pages, an updated blog, and possibly e-commerce functionality.",
			Received:    now.Add(-4 * 24 * time.Hour),
			IsRead:      false,
			Category:    vo.CategoryInquiry,
			Status:      vo.MessageStatusNew,
		},
		{
			ID:          "msg-15",
			ClientID:    "client-r&d",
			ClientName:  "Sophia Patel",
			ClientEmail: "spatel@company.com",
			Subject:     "Request for upgraded workstations",
			Content:     "Our R&D team needs upgraded workstations to run the new simulation software we've purchased. The minimum specs required are: 32GB RAM, 8-core processors, and dedicated GPUs with at least 8GB VRAM. Can you provide options and pricing for 6 machines that meet or exceed these specs?",
			Received:    now.Add(-6 * 24 * time.Hour),
			IsRead:      true,
			Category:    vo.CategoryInquiry,
			Status:      vo.MessageStatusInTriage,
			AssignedTo:  "tech-advisor-1",
		},
		{
			ID:          "msg-16",
			ClientID:    "client-legal",
			ClientName:  "Christopher Lee",
			ClientEmail: "clee@company.com",
			Subject:     "Document management system issues",
			Content:     "Our legal team is experiencing slow response times with the document management system. Searches take over a minute to complete and sometimes time out entirely. This is affecting our productivity, especially when working with time-sensitive contracts. Can someone take a look at the server performance?",
			Received:    now.Add(-5 * time.Hour),
			IsRead:      false,
			IsFlagged:   true,
			Category:    vo.CategorySupport,
			Status:      vo.MessageStatusNew,
		},
		{
			ID:          "msg-17",
			ClientID:    "client-finance",
			ClientName:  "Laura Martinez",
			ClientEmail: "lmartinez@company.com",
			Subject:     "Monthly IT services invoice question",
			Content:     "I noticed that this month's invoice includes a charge for \"additional storage allocation\" that wasn't on previous invoices. Can you explain what this is for and whether this will be a recurring charge? I need to update our department budget if this is going to continue.",
			Received:    now.Add(-2 * 24 * time.Hour),
			IsRead:      true,
			Category:    vo.CategoryBilling,
			Status:      vo.MessageStatusInTriage,
			AssignedTo:  "accounts-manager",
		},
		{
			ID:          "msg-18",
			ClientID:    "client-remote",
			ClientName:  "Daniel Taylor",
			ClientEmail: "dtaylor@company.com",
			Subject:     "Remote desktop connection failures",
			Content:     "Since yesterday, I've been unable to connect to my work desktop using the remote desktop tool. I get an error message saying \"Cannot connect to remote computer.\" I've tried restarting my home computer and router, but the issue persists. I have an important deadline tomorrow and need access to files on my work computer.",
			Received:    now.Add(-14 * time.Hour),
			IsRead:      false,
			Category:    vo.CategorySupport,
			Status:      vo.MessageStatusNew,
		},
		{
			ID:          "msg-19",
			ClientID:    "client-sales",
			ClientName:  "Rachel Adams",
			ClientEmail: "radams@company.com",
			Subject:     "Mobile device management app feedback",
			Content:     "I wanted to provide some feedback on the new mobile device management app. While it has useful features, the battery drain is significant - my phone battery life has decreased by about 30% since installing it. Also, several team members have mentioned that it sometimes prevents other apps from sending notifications. Is there an update planned to address these issues?",
			Received:    now.Add(-9 * 24 * time.Hour),
			IsRead:      true,
			Category:    vo.CategoryFeedback,
			Status:      vo.MessageStatusArchived,
		},
		{
			ID:          "msg-20",
			ClientID:    "client-exec",
			ClientName:  "Michelle Thompson",
			ClientEmail: "mthompson@company.com",
			Subject:     "Executive dashboard access",
			Content:     "As the new VP of Operations, I need access to the executive dashboard and reporting tools. My predecessor had custom reports set up that I'd like to continue using. Could you please grant me the appropriate access rights and arrange a brief orientation session to make sure I know how to use all the features?",
			Received:    now.Add(-12 * time.Hour),
			IsRead:      false,
			Category:    vo.CategoryInquiry,
			Status:      vo.MessageStatusNew,
		},
	}
}

// FixedThreads returns the five demo conversation threads. Three are tied
// to converted requests; the last two are open single-message threads.
func FixedThreads(now time.Time) []*message.MessageThread {
	return []*message.MessageThread{
		{
			ID:               "thread-1",
			ServiceRequestID: "ticket-1",
			Messages: []message.ThreadMessage{
				{
					ID:         "thread-1-msg-1",
					Sender:     vo.SenderClient,
					SenderName: "Sarah Johnson",
					Content:    "Our entire accounting department is unable to access the network. This is preventing us from processing end-of-month reports which are due today. None of the 8 workstations can connect to shared drives or internet. Please send someone ASAP.",
					Timestamp:  now.Add(-2 * time.Hour),
					IsRead:     true,
				},
				{
					ID:         "thread-1-msg-2",
					Sender:     vo.SenderProvider,
					SenderName: "Alex Tech Support",
					Content:    "We've received your urgent request about the network outage in the accounting department. I've dispatched our network specialist who should arrive within 30 minutes. In the meantime, have you tried restarting the network switch in your department?",
					Timestamp:  now.Add(-110 * time.Minute),
					IsRead:     true,
				},
				{
					ID:         "thread-1-msg-3",
					Sender:     vo.SenderClient,
					SenderName: "Sarah Johnson",
					Content:    "We tried that already, but it didn't help. We'll wait for your specialist to arrive. Please let them know this is extremely urgent as we have financial reporting deadlines today.",
					Timestamp:  now.Add(-105 * time.Minute),
					IsRead:     true,
				},
				{
					ID:         "thread-1-msg-4",
					Sender:     vo.SenderProvider,
					SenderName: "Network Specialist",
					Content:    "I've arrived at the accounting department and identified the issue. It appears to be a failed network switch. I've brought a replacement and will have it installed and configured within the next 20 minutes. Once that's done, we'll test all workstations to ensure proper connectivity.",
					Timestamp:  now.Add(-80 * time.Minute),
					IsRead:     true,
				},
				{
					ID:         "thread-1-msg-5",
					Sender:     vo.SenderProvider,
					SenderName: "Network Specialist",
					Content:    "Update: The new switch has been installed and configured. All workstations should now have network connectivity. I've tested 3 of the 8 machines and they can access shared drives and internet. Please have your team test the remaining computers and let us know if there are any issues.",
					Timestamp:  now.Add(-45 * time.Minute),
					IsRead:     false,
				},
			},
		},
		{
			ID:               "thread-2",
			ServiceRequestID: "ticket-4",
			Messages: []message.ThreadMessage{
				{
					ID:         "thread-2-msg-1",
					Sender:     vo.SenderClient,
					SenderName: "Tom Johnson",
					Content:    "I'll be transitioning to full remote work starting next Monday. Can you please set up VPN access for me? I'll need to connect to all development servers and resources. What information do you need from me to get this set up?",
					Timestamp:  now.Add(-2 * 24 * time.Hour),
					IsRead:     true,
				},
				{
					ID:         "thread-2-msg-2",
					Sender:     vo.SenderProvider,
					SenderName: "Security Team",
					Content:    "Hi Tom, we'll need the following information to set up your VPN access:\n1. Your home IP address (you can find this by searching \"what is my IP\" on Google)\n2. The make and model of your work laptop\n3. Your mobile phone number for two-factor authentication\nAlso, have you completed the remote work security training module? It's required before we can enable VPN access.",
					Timestamp:  now.Add(-46 * time.Hour),
					IsRead:     true,
				},
				{
					ID:         "thread-2-msg-3",
					Sender:     vo.SenderClient,
					SenderName: "Tom Johnson",
					Content:    "Thanks for the quick response. Here's the information:\n1. Home IP: 187.45.68.92\n2. Laptop: Dell XPS 15 9500\n3. Mobile: 555-123-4567\nI did complete the security training last month, but I can retake it if needed.",
					Timestamp:  now.Add(-44 * time.Hour),
					IsRead:     true,
				},
				{
					ID:         "thread-2-msg-4",
					Sender:     vo.SenderProvider,
					SenderName: "Security Team",
					Content:    "I've verified your security training completion. We'll get your VPN access set up within 24 hours. Once ready, you'll receive an email with installation instructions and your initial credentials. Please note that you'll need to change your password upon first login.",
					Timestamp:  now.Add(-42 * time.Hour),
					IsRead:     true,
				},
				{
					ID:         "thread-2-msg-5",
					Sender:     vo.SenderProvider,
					SenderName: "Security Team",
					Content:    "Your VPN access is now set up. You should have received an email with installation and configuration instructions. Please install the VPN client today and test it before Monday to ensure everything works properly. Let us know if you encounter any issues during setup or testing.",
					Timestamp:  now.Add(-28 * time.Hour),
					IsRead:     false,
				},
			},
		},
		{
			ID:               "thread-3",
			ServiceRequestID: "ticket-13",
			Messages: []message.ThreadMessage{
				{
					ID:         "thread-3-msg-1",
					Sender:     vo.SenderClient,
					SenderName: "Patricia Jones",
					Content:    "The video conferencing system in the main boardroom isn't connecting to any calls. We have an important client demo scheduled for 9am today and external clients can't join. The system was working perfectly yesterday afternoon. Please send someone immediately!",
					Timestamp:  now.Add(-1 * time.Hour),
					IsRead:     true,
				},
				{
					ID:         "thread-3-msg-2",
					Sender:     vo.SenderProvider,
					SenderName: "AV Support",
					Content:    "I'll head to the boardroom right away. Have you tried restarting the system completely? Also, can you confirm if you're getting any specific error message on the screen?",
					Timestamp:  now.Add(-55 * time.Minute),
					IsRead:     true,
				},
				{
					ID:         "thread-3-msg-3",
					Sender:     vo.SenderClient,
					SenderName: "Patricia Jones",
					Content:    "Yes, we've tried turning it off and on again several times. The error message says \"Cannot establish connection to server\" when we try to start or join a meeting. Please hurry, the client will be trying to connect in less than an hour.",
					Timestamp:  now.Add(-50 * time.Minute),
					IsRead:     true,
				},
				{
					ID:         "thread-3-msg-4",
					Sender:     vo.SenderProvider,
					SenderName: "AV Support",
					Content:    "I'm in the boardroom now. It appears the network cable connecting the system to the wall port was damaged. I've replaced it with a new cable and the system is now connecting properly. Can you try joining a test meeting to confirm it works for you?",
					Timestamp:  now.Add(-30 * time.Minute),
					IsRead:     false,
				},
			},
		},
		{
			ID: "thread-4",
			Messages: []message.ThreadMessage{
				{
					ID:         "thread-4-msg-1",
					Sender:     vo.SenderClient,
					SenderName: "Christopher Lee",
					Content:    "Our legal team is experiencing slow response times with the document management system. Searches take over a minute to complete and sometimes time out entirely. This is affecting our productivity, especially when working with time-sensitive contracts. Can someone take a look at the server performance?",
					Timestamp:  now.Add(-5 * time.Hour),
					IsRead:     false,
				},
			},
		},
		{
			ID: "thread-5",
			Messages: []message.ThreadMessage{
				{
					ID:         "thread-5-msg-1",
					Sender:     vo.SenderClient,
					SenderName: "Daniel Taylor",
					Content:    "Since yesterday, I've been unable to connect to my work desktop using the remote desktop tool. I get an error message saying \"Cannot connect to remote computer.\" I've tried restarting my home computer and router, but the issue persists. I have an important deadline tomorrow and need access to files on my work computer.",
					Timestamp:  now.Add(-14 * time.Hour),
					IsRead:     false,
				},
			},
		},
	}
}
