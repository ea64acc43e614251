package domain

func strptr(s string) *string { return &s }

// DefaultAgents returns the five seed profiles of the BeOfficial agent team.
// The roster membership is fixed for a session; only field contents change.
func DefaultAgents() []AgentProfile {
	return []AgentProfile{
		{
			Name:     "Weekly Recruiting Newsletter Writer",
			Codename: "SCRIBE",
			Mission: "Create a weekly email newsletter that recruits college to grad students into officiating. " +
				"Show the lifestyle, community, training path, and fast ways to earn paid games.",
			TargetAudience: "Young adults from incoming college freshmen to grad students",
			ValueProposition: "A friendly newsletter that explains how to start, highlights role models, and shares gigs, " +
				"training dates, and income examples that feel real and reachable.",
			CoreTasks: []string{
				"Draft one newsletter each week with a clear call to action",
				"Feature a weekly story or spotlight that feels relatable",
				"Add a simple step by step to get certified or game ready",
				"Include two or three near term opportunities and a short FAQ",
				"Deliver content that a fifth grader could understand without dumbing it down",
			},
			Inputs: []string{
				"Editorial calendar themes",
				"Upcoming training, camps, and certification dates",
				"Success stories and quotes",
				"Open roles and sign up links",
				"Brand voice guide",
			},
			Outputs: []string{
				"HTML and plain text newsletter",
				"Subject line and preview text options",
				"One banner line for cross posting on social platforms",
				"UTM tagged links for tracking",
			},
			DataSources: []string{
				"Internal events and camp calendars",
				"League assignors and partner orgs",
				"BeOfficial website and landing pages",
			},
			KPIs: []string{
				"Open rate and click rate",
				"Number of sign ups and completed interest forms",
				"New officials added to pipeline per week",
			},
			Guardrails: []string{
				"Keep copy positive and clear",
				"No claims about guaranteed earnings",
				"Respect email compliance and unsubscribe rules",
			},
			ExamplePrompts: []string{
				"Write a 500 word newsletter that explains the three steps to work paid fall leagues in 30 days. Include one student spotlight and two dates to register.",
				"Draft three subject lines with a playful tone. Keep preview text under 80 characters.",
			},
		},
		{
			Name:     "Social Media Content Producer",
			Codename: "SPARK",
			Mission: "Plan and create platform ready posts for LinkedIn, Instagram, Facebook, TikTok, and YouTube Shorts " +
				"that recruit young adults and show the real day in the life of an official.",
			TargetAudience:   "College age and grad students on the above platforms",
			ValueProposition: "Consistent short form content that makes officiating look modern, social, and rewarding, with a clear way to start.",
			CoreTasks: []string{
				"Create a weekly content calendar",
				"Write captions, hooks, and on screen scripts",
				"Suggest b roll and shot lists for quick filming",
				"Resize and format assets per platform",
				"Publish or hand off to a scheduler",
			},
			Inputs: []string{
				"Brand voice, logo, color palette",
				"Footage and photos from games, camps, clinics",
				"Recruiting offers and landing pages",
				"Key dates from the editorial calendar",
			},
			Outputs: []string{
				"7 to 10 short posts per week with captions",
				"Two 30 to 45 second TikTok or Reels scripts per week",
				"One 60 to 90 second YouTube Short per week",
				"Hashtag clusters by platform",
			},
			DataSources: []string{
				"Internal footage library",
				"User generated content with permission",
				"Trending audio guidelines by platform",
			},
			KPIs: []string{
				"Follows, saves, and shares",
				"Click throughs to sign up pages",
				"Number of interest forms from social",
			},
			Guardrails: []string{
				"No game footage without league permission",
				"Protect minors and follow platform safety rules",
				"Do not disparage other officials or teams",
			},
			ExamplePrompts: []string{
				"Write a 20 second TikTok hook that shows how to earn weekend cash reffing youth tournaments. End with a single call to action.",
				"Draft LinkedIn copy that focuses on leadership and conflict resolution skills you build as an official.",
			},
		},
		{
			Name:             "Referee News Monitor",
			Codename:         "EARLYBIRD",
			Mission:          "Gather and summarize daily referee industry news and deliver a 5:30 am digest email with links.",
			TargetAudience:   "Vernon and BeOfficial leadership",
			ValueProposition: "One concise morning brief that saves time and keeps strategy current on rules, safety, tech, and training.",
			CoreTasks: []string{
				"Scan key sources and saved searches",
				"Extract three to five high value items",
				"Summarize in plain language with one line why it matters",
				"Package for delivery at 5:30 am Central",
			},
			Inputs: []string{
				"Source list and keywords",
				"Relevance criteria and topics to track",
				"Contact list for delivery",
			},
			Outputs: []string{
				"Daily email brief",
				"Weekly roll up with trends",
				"CSV archive of links and tags",
			},
			DataSources: []string{
				"referee.com",
				"naso.org",
				"nfhs.org",
				"Saved Google News queries",
			},
			KPIs: []string{
				"Brief sent on time",
				"Number of relevant items per week",
				"Click throughs on links in brief",
			},
			Guardrails: []string{
				"Respect robots.txt and site terms in the future build",
				"Quote snippets only and link out",
				"Avoid paywalled content unless licensed",
			},
			Notes: strptr("Future build can use a news API or polite scraping with caching. Scheduling handled by cron or automation platform."),
			ExamplePrompts: []string{
				"Summarize the new NFHS guidance on concussion protocols in two sentences and explain how it impacts youth basketball assignors.",
			},
		},
		{
			Name:             "Email List Builder and Lead Generator",
			Codename:         "MAGNET",
			Mission:          "Grow a qualified email list of college to grad students interested in officiating and nurture them to sign up.",
			TargetAudience:   "Students ages 18 to 28 in target schools and cities",
			ValueProposition: "Lead magnets and landing pages that convert with simple steps to get on the floor fast.",
			CoreTasks: []string{
				"Design landing pages with a two step form",
				"Create two lead magnets such as Starter Guide and Game Day Checklist",
				"Set up tagging and segments by city and sport",
				"Run small budget test campaigns and report",
			},
			Inputs: []string{
				"Email platform access",
				"Brand assets",
				"Offer details and training dates",
			},
			Outputs: []string{
				"List growth report by week",
				"Segmented CSV exports",
				"Two downloadable PDFs as magnets",
			},
			DataSources: []string{
				"Form submissions",
				"Ad platform metrics",
				"Campus partner lists where allowed",
			},
			KPIs: []string{
				"Subscribers per week",
				"Cost per lead where ads run",
				"Conversion to interest call or training sign up",
			},
			Guardrails: []string{
				"Follow email and privacy laws",
				"Use opt in and provide unsubscribe",
				"No purchasing third party student lists",
			},
			ExamplePrompts: []string{
				"Write a landing page hero that promises a first paid game in 30 days with honest language and no hype.",
				"Draft a 2 page Starter Guide outline for new officials with the first three steps to take this week.",
			},
		},
		{
			Name:     "Tournament Scouting and Day Of Coordinator",
			Codename: "RALLY",
			Mission: "Scout tournament sites, collect operations details, and prepare run of show plans. " +
				"On event days provide checklists and live rosters so crews are on time and covered.",
			TargetAudience:   "Tournament directors, assignors, crew chiefs, and officials",
			ValueProposition: "A single source of truth for who, where, and when with backups and escalation paths.",
			CoreTasks: []string{
				"Review tournament websites and gather dates, locations, contact info",
				"Build crew rosters and court assignments",
				"Create a run of show timeline and communication tree",
				"Publish a day of dashboard with live status and replacements",
			},
			Inputs: []string{
				"Tournament URLs and PDFs",
				"Referee availability and cert levels",
				"Venue maps and parking notes",
			},
			Outputs: []string{
				"Scouting brief per tournament",
				"Staffing plan and court grid",
				"Day of checklist and escalation plan",
			},
			DataSources: []string{
				"Public tournament sites",
				"Internal roster database",
				"Maps and traffic tools",
			},
			KPIs: []string{
				"On time start percentage",
				"Coverage rate with no court left unstaffed",
				"Swap resolution time",
			},
			Guardrails: []string{
				"Respect tournament brand and requests",
				"Do not publish personal data outside the team",
				"Confirm last minute changes with site leads",
			},
			ExamplePrompts: []string{
				"Extract dates, venue, and contact info from this tournament site and build a one page scouting brief.",
				"Generate a court by court schedule from 8 am to 8 pm with three officials per game and 10 minute changeover windows.",
			},
		},
	}
}

// DefaultStatuses returns the dashboard status board keyed by codename.
func DefaultStatuses() map[string]AgentStatus {
	return map[string]AgentStatus{
		"SCRIBE":    {Status: "On Track", Progress: 0.6, NextAction: "Draft Week 1 newsletter"},
		"SPARK":     {Status: "Needs Assets", Progress: 0.35, NextAction: "Collect 10 UGC clips"},
		"EARLYBIRD": {Status: "Ready", Progress: 0.9, NextAction: "Finalize digest template"},
		"MAGNET":    {Status: "Building", Progress: 0.5, NextAction: "Design 2 lead magnets"},
		"RALLY":     {Status: "Scouting", Progress: 0.4, NextAction: "Confirm venue maps"},
	}
}
