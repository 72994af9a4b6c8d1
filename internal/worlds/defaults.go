package worlds

// Defaults returns the built-in world list. Each call returns a fresh copy.
func Defaults() []PortfolioWorld {
	return []PortfolioWorld{
		{
			ID:      "about",
			Title:   "ABOUT ME",
			Summary: "Who I am, where I come from and what I like to build.",
			Details: []string{
				"Software engineer focused on backend systems and developer tooling.",
				"Happiest when turning a vague problem into a small, sharp program.",
				"Outside work: retro games, pixel art and long walks.",
			},
			Color:    0xffc857,
			Position: Point{X: 240, Y: 420},
			Background: Background{
				Key:        "world-bg-about",
				Path:       "/assets/tiles/about me.webp",
				MobilePath: "/assets/tiles/mobile/about me.webp",
			},
			Structures: &Structures{
				Pipe: Rect{X: 777, Y: 616, Width: 111, Height: 173},
				Blocks: []Rect{
					{X: 90, Y: 440, Width: 20, Height: 63},
					{X: 417, Y: 440, Width: 275, Height: 63},
					{X: 415, Y: 230, Width: 18, Height: 93},
				},
			},
		},
		{
			ID:      "projects",
			Title:   "PROJECTS",
			Summary: "Side projects, open source work and experiments.",
			Details: []string{
				"Portfolio Overworld: this game, a résumé you can walk through.",
				"A terminal dashboard for self-hosted services.",
				"Small libraries for config loading and structured logs.",
			},
			Color:    0x00bfb2,
			Position: Point{X: 520, Y: 320},
			Background: Background{
				Key:        "world-bg-projects",
				Path:       "/assets/tiles/projects.webp",
				MobilePath: "/assets/tiles/mobile/projects.webp",
			},
			Structures: &Structures{
				Pipe: Rect{X: 777, Y: 616, Width: 111, Height: 138},
				Blocks: []Rect{
					{X: 90, Y: 460, Width: 20, Height: 70},
					{X: 417, Y: 460, Width: 275, Height: 70},
					{X: 415, Y: 230, Width: 18, Height: 70},
				},
			},
		},
		{
			ID:      "skills",
			Title:   "SKILLS",
			Summary: "Languages, tools and practices I use every day.",
			Details: []string{
				"Go, TypeScript, SQL and a bit of C.",
				"Linux, containers, CI pipelines and observability stacks.",
				"Testing first, small commits, readable code reviews.",
			},
			Color:    0x4ea8de,
			Position: Point{X: 780, Y: 420},
			Background: Background{
				Key:        "world-bg-skills",
				Path:       "/assets/tiles/skills.webp",
				MobilePath: "/assets/tiles/mobile/skills.webp",
			},
			Structures: &Structures{
				Pipe: Rect{X: 777, Y: 616, Width: 111, Height: 138},
				Blocks: []Rect{
					{X: 90, Y: 460, Width: 20, Height: 70},
					{X: 417, Y: 460, Width: 275, Height: 70},
					{X: 415, Y: 230, Width: 18, Height: 70},
				},
			},
		},
		{
			ID:      "experience",
			Title:   "EXPERIENCE",
			Summary: "Companies, teams and the problems we solved together.",
			Details: []string{
				"Backend engineer: payments platform, queues and reconciliation jobs.",
				"Platform engineer: build tooling, deploy pipelines, on-call.",
				"Intern: internal tools and a first taste of production.",
			},
			Color:    0xff6b6b,
			Position: Point{X: 1040, Y: 320},
			Background: Background{
				Key:        "world-bg-experience",
				Path:       "/assets/tiles/experience.webp",
				MobilePath: "/assets/tiles/mobile/experience.webp",
			},
			Structures: &Structures{
				Pipe: Rect{X: 1130, Y: 613, Width: 78, Height: 343},
				Blocks: []Rect{
					{X: 90, Y: 460, Width: 20, Height: 70},
					{X: 417, Y: 460, Width: 275, Height: 70},
					{X: 415, Y: 220, Width: 18, Height: 70},
				},
			},
		},
		{
			ID:      "contact",
			Title:   "CONTACT",
			Summary: "Ways to reach me. Say hi!",
			Details: []string{
				"Email: hello@example.com",
				"GitHub: github.com/example",
				"LinkedIn: linkedin.com/in/example",
			},
			Color:    0x6a4c93,
			Position: Point{X: 1180, Y: 520},
			Background: Background{
				Key:        "world-bg-contact",
				Path:       "/assets/tiles/contact.webp",
				MobilePath: "/assets/tiles/mobile/contact.webp",
			},
			Structures: &Structures{
				Pipe: Rect{X: 777, Y: 616, Width: 111, Height: 138},
				Blocks: []Rect{
					{X: 90, Y: 460, Width: 20, Height: 70},
					{X: 417, Y: 460, Width: 275, Height: 70},
					{X: 415, Y: 230, Width: 18, Height: 70},
				},
			},
		},
	}
}
