package seed

import "time"

type categorySeed struct {
	Name        string
	Description string
	Color       string
}

type newsSeed struct {
	Title            string
	ShortDescription string
	Content          string
	Category         string
	Age              time.Duration
}

type eventSeed struct {
	Title       string
	Description string
	Location    string
	In          time.Duration
}

type announcementSeed struct {
	Title     string
	Message   string
	Priority  string
	ExpiresIn time.Duration
}

var seedCategories = []categorySeed{
	{Name: "General News", Description: "General news and updates for the community", Color: "#3B82F6"},
	{Name: "Community Events", Description: "Community events and gatherings", Color: "#10B981"},
	{Name: "City Council", Description: "City council meetings and decisions", Color: "#8B5CF6"},
	{Name: "Public Safety", Description: "Public safety announcements and alerts", Color: "#EF4444"},
	{Name: "Infrastructure", Description: "Infrastructure projects and updates", Color: "#F59E0B"},
	{Name: "Housing", Description: "Housing policies and information", Color: "#06B6D4"},
	{Name: "Health & Wellness", Description: "Health and wellness resources", Color: "#EC4899"},
	{Name: "Education", Description: "Education programs and resources", Color: "#6366F1"},
	{Name: "Parks & Recreation", Description: "Parks and recreation activities", Color: "#14B8A6"},
	{Name: "Utilities", Description: "Utilities and services information", Color: "#84CC16"},
}

var seedNews = []newsSeed{
	{
		Title:            "Greenwood City Announces New Park Development Project",
		ShortDescription: "The city council has approved funding for a new community park in the north district, featuring playgrounds, walking trails, and picnic areas.",
		Content:          "<p>Greenwood City is excited to announce the approval of a new community park development project. The park, located in the north district, will span over 15 acres and feature modern playground equipment, walking and jogging trails, picnic areas, and a community garden.</p>",
		Category:         "City Council",
		Age:              2 * 24 * time.Hour,
	},
	{
		Title:            "City Launches New Recycling Program",
		ShortDescription: "Greenwood City introduces an expanded recycling program with new pickup schedules and additional accepted materials.",
		Content:          "<p>Starting next month, Greenwood City will launch an expanded recycling program aimed at reducing waste and promoting environmental sustainability.</p>",
		Category:         "Utilities",
		Age:              5 * 24 * time.Hour,
	},
	{
		Title:            "Community Health Fair Scheduled for This Weekend",
		ShortDescription: "Free health screenings, wellness workshops, and fitness demonstrations at the annual community health fair.",
		Content:          "<p>The annual Greenwood Community Health Fair will take place this Saturday from 9 AM to 3 PM at the Community Center. The event is free and open to all residents.</p>",
		Category:         "Health & Wellness",
		Age:              24 * time.Hour,
	},
	{
		Title:            "New Library Hours Announced",
		ShortDescription: "The Greenwood Public Library extends operating hours to better serve the community, now open seven days a week.",
		Content:          "<p>The Greenwood Public Library has announced extended operating hours to better accommodate residents' schedules.</p>",
		Category:         "Education",
		Age:              3 * 24 * time.Hour,
	},
	{
		Title:            "Road Construction Update: Main Street Improvements",
		ShortDescription: "City provides update on Main Street road improvement project with new completion timeline and traffic updates.",
		Content:          "<p>The Main Street improvement project is progressing on schedule, with completion expected by the end of next month.</p>",
		Category:         "Infrastructure",
		Age:              7 * 24 * time.Hour,
	},
}

var seedEvents = []eventSeed{
	{
		Title:       "Greenwood City Summer Festival 2025",
		Description: "<p>Join us for the annual Summer Festival featuring live music, local food vendors, art exhibitions, and family-friendly activities.</p>",
		Location:    "Greenwood City Park, 123 Park Avenue",
		In:          45 * 24 * time.Hour,
	},
	{
		Title:       "City Council Monthly Meeting",
		Description: "<p>The Greenwood City Council will hold its monthly public meeting. Agenda items include budget discussions, community proposals, and updates on ongoing city projects.</p>",
		Location:    "City Hall Council Chambers, 456 Main Street",
		In:          14 * 24 * time.Hour,
	},
	{
		Title:       "Community Farmers Market",
		Description: "<p>Weekly farmers market featuring fresh produce, local artisans, baked goods, and handmade crafts.</p>",
		Location:    "Greenwood Community Center Parking Lot, 789 Center Drive",
		In:          7 * 24 * time.Hour,
	},
	{
		Title:       "Free Yoga in the Park",
		Description: "<p>Start your weekend with free outdoor yoga classes in the park. Suitable for all levels, from beginners to advanced practitioners.</p>",
		Location:    "Greenwood City Park, Yoga Lawn Area",
		In:          10 * 24 * time.Hour,
	},
	{
		Title:       "Community Cleanup Day",
		Description: "<p>Join your neighbors for a community-wide cleanup day. Help keep Greenwood beautiful by participating in litter collection, park maintenance, and beautification projects.</p>",
		Location:    "Greenwood Community Center, 789 Center Drive",
		In:          21 * 24 * time.Hour,
	},
}

var seedAnnouncements = []announcementSeed{
	{
		Title:     "Water Main Maintenance This Week",
		Message:   "Scheduled water main maintenance may cause low pressure in the downtown area between 10 PM and 4 AM.",
		Priority:  "normal",
		ExpiresIn: 7 * 24 * time.Hour,
	},
	{
		Title:     "Severe Weather Advisory",
		Message:   "The National Weather Service has issued a thunderstorm watch for our area. Secure loose outdoor items and avoid unnecessary travel.",
		Priority:  "urgent",
		ExpiresIn: 2 * 24 * time.Hour,
	},
	{
		Title:     "Holiday Schedule for City Offices",
		Message:   "All city offices will be closed next Monday. Emergency services remain available around the clock.",
		Priority:  "normal",
		ExpiresIn: 10 * 24 * time.Hour,
	},
}
