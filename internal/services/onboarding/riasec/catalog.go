package riasec

// Template is a catalog scenario before option IDs are assigned.
type Template struct {
	ID      string
	Text    string
	Options []OptionTemplate
}

// OptionTemplate is one catalog answer with its score vector.
type OptionTemplate struct {
	Text   string
	Scores Scores
}

func opt(text string, primary, secondary Trait) OptionTemplate {
	return OptionTemplate{Text: text, Scores: Vector(primary, secondary)}
}

// DefaultCatalog returns a fresh copy of the built-in twelve scenarios.
func DefaultCatalog() []Template {
	return []Template{
		{
			ID:   "s1",
			Text: "Your group project is behind schedule and the deadline is in 2 days. What do you do first?",
			Options: []OptionTemplate{
				opt("I decide priorities, assign roles, and keep the team moving.", Enterprising, Conventional),
				opt("I check in with team members and help resolve tension so we can work together.", Social, Artistic),
				opt("I look at what is failing and suggest a fix based on evidence.", Investigative, Realistic),
				opt("I set up a simple plan (tasks, timeline, shared files) so the work is organized.", Conventional, Realistic),
			},
		},
		{
			ID:   "s2",
			Text: "You are volunteering to organize a school charity event. Which role do you naturally grab?",
			Options: []OptionTemplate{
				opt("I'll design the posters, pick a theme, and decorate the venue.", Artistic, Social),
				opt("I'll manage the budget, track sales, and handle logistics.", Conventional, Realistic),
				opt("I'll find sponsors and encourage people to attend.", Enterprising, Social),
				opt("I'll set up equipment (sound/lighting) and handle hands-on setup.", Realistic, Investigative),
			},
		},
		{
			ID:   "s3",
			Text: "A new AI study tool is released. What do you do first?",
			Options: []OptionTemplate{
				opt("I test it systematically to understand how it works and where it fails.", Investigative, Realistic),
				opt("I try it on a small task right away and learn the workflow by doing.", Realistic, Conventional),
				opt("I suggest trying it with a small study group so we can learn together.", Social, Enterprising),
				opt("I experiment with creative prompts and outputs and make it my own.", Artistic, Investigative),
			},
		},
		{
			ID:   "s4",
			Text: "Your class is planning a trip or group activity. What do you contribute first?",
			Options: []OptionTemplate{
				opt("I handle the details: budget, schedule, and any forms or bookings.", Conventional, Realistic),
				opt("I get people to commit, delegate tasks, and keep momentum.", Enterprising, Social),
				opt("I sort out practical logistics like transport and equipment.", Realistic, Conventional),
				opt("I compare options and risks and recommend a plan based on evidence.", Investigative, Realistic),
			},
		},
		{
			ID:   "s5",
			Text: "You are helping improve a classroom or shared space. What do you naturally do first?",
			Options: []OptionTemplate{
				opt("I start assembling/fixing what is needed and rearrange the space hands-on.", Realistic, Conventional),
				opt("I sketch a new layout and choose colors/materials to change the look and feel.", Artistic, Social),
				opt("I coordinate the group, check in, and help people work smoothly together.", Social, Artistic),
				opt("I create a materials list, budget, and step-by-step plan so nothing is missed.", Conventional, Realistic),
			},
		},
		{
			ID:   "s6",
			Text: "Your school wants a new initiative to help students succeed. What is your first move?",
			Options: []OptionTemplate{
				opt("I gather information, look for patterns, and test what might work.", Investigative, Realistic),
				opt("I brainstorm a concept and draft a message/visuals to introduce it.", Artistic, Investigative),
				opt("I talk to students and staff, listen, and build support.", Social, Enterprising),
				opt("I set goals, recruit people, and start organizing the launch steps.", Enterprising, Social),
			},
		},
		{
			ID:   "s7",
			Text: "In a new internship, a key process keeps failing and people are frustrated. What do you do first?",
			Options: []OptionTemplate{
				opt("I fix the practical issue so work can continue.", Realistic, Conventional),
				opt("I troubleshoot systematically to identify the root cause.", Investigative, Realistic),
				opt("I align people on a plan and make decisions so the work can move forward.", Enterprising, Social),
				opt("I document the steps and create a checklist so the process is consistent.", Conventional, Realistic),
			},
		},
		{
			ID:   "s8",
			Text: "You have to present what you learned for an assignment. Which approach do you choose?",
			Options: []OptionTemplate{
				opt("I build a simple demonstration or prototype that shows it working.", Realistic, Investigative),
				opt("I write an explanation with evidence and step-by-step reasoning.", Investigative, Realistic),
				opt("I make a poster/video/story that communicates the idea clearly.", Artistic, Social),
				opt("I run a short session with classmates and answer questions.", Social, Artistic),
			},
		},
		{
			ID:   "s9",
			Text: "A small student club wants to grow and stay active. What do you naturally focus on?",
			Options: []OptionTemplate{
				opt("I handle practical setup for meetings and activities.", Realistic, Conventional),
				opt("I create the brand: name, visuals, and creative content that stands out.", Artistic, Social),
				opt("I focus on community: welcoming people, supporting members, and resolving issues.", Social, Artistic),
				opt("I focus on growth: outreach, partnerships, and convincing people to join.", Enterprising, Social),
			},
		},
		{
			ID:   "s10",
			Text: "You have a lot of messy notes and an exam is coming. What do you do first?",
			Options: []OptionTemplate{
				opt("I organize everything into a clear structure and schedule so I can follow it.", Conventional, Realistic),
				opt("I focus on understanding the hardest concepts and do practice questions.", Investigative, Realistic),
				opt("I create mind maps/diagrams/visual summaries to remember and connect ideas.", Artistic, Investigative),
				opt("I form a study group so we can explain topics and support each other.", Social, Enterprising),
			},
		},
		{
			ID:   "s11",
			Text: "Your club wants to run a campaign for a cause. What role fits you best?",
			Options: []OptionTemplate{
				opt("I design the message and create visuals/content.", Artistic, Social),
				opt("I engage with people: reply, listen, and keep supporters involved.", Social, Artistic),
				opt("I negotiate partnerships, set targets, and drive the campaign to grow.", Enterprising, Social),
				opt("I manage the calendar, track tasks, and keep everything consistent.", Conventional, Realistic),
			},
		},
		{
			ID:   "s12",
			Text: "Your school receives new equipment/software and someone must set it up for everyone to use. What do you do?",
			Options: []OptionTemplate{
				opt("I install/assemble it and handle the hands-on setup.", Realistic, Conventional),
				opt("I test it carefully, identify issues, and get it working reliably.", Investigative, Realistic),
				opt("I write a simple guide/checklist so others can use it consistently.", Conventional, Realistic),
				opt("I lead the rollout: decide a plan, get buy-in, and make sure it is adopted.", Enterprising, Social),
			},
		},
	}
}
