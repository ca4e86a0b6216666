package web

// Site copy rendered by the page templates.

const siteName = "HR Project"

// navItem is one entry of the header navigation
type navItem struct {
	Path  string
	Label string
}

var navigation = []navItem{
	{Path: "/", Label: "Home"},
	{Path: "/about", Label: "About"},
	{Path: "/career", Label: "Career"},
	{Path: "/contact", Label: "Contact"},
}

var (
	homeIntro = `We connect growing companies with people who make a difference.
Our consultants handle recruitment, onboarding and HR operations so your
team can focus on the work that matters.`

	homeServices = []string{
		"Permanent and contract recruitment",
		"Payroll and HR operations",
		"Training and onboarding programs",
	}

	aboutStory = `Founded by HR practitioners, we have spent years helping
organisations of every size find and keep the right people. We believe
hiring is a partnership built on honesty, speed and care for candidates.`

	aboutValues = []string{
		"Candidates first",
		"Transparent process",
		"Long-term partnerships",
	}

	careerIntro = `Interested in joining us? Send your application with your
resume and the position you are applying for. We read every application.`

	contactAddress = "Head Office, Business District"
	contactPhone   = "+91 00000 00000"
	contactEmail   = "info@example.com"
)

// slide is one panel of the /slider showcase
type slide struct {
	Title   string
	Caption string
}

var slides = []slide{
	{Title: "Find talent", Caption: "Shortlists of qualified candidates within days."},
	{Title: "Grow teams", Caption: "Flexible staffing for projects of any size."},
	{Title: "Build careers", Caption: "Guidance for candidates at every stage."},
}
