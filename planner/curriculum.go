package planner

import "strings"

// Curriculum categories. CategoryGeneral is the fallback when nothing in the
// goal text matches.
const (
	CategoryBackend     = "backend"
	CategoryFrontend    = "frontend"
	CategoryDataScience = "data-science"
	CategoryMobile      = "mobile"
	CategoryDevOps      = "devops"
	CategoryGeneral     = "general"
)

// CurriculumMonth is one month of a category track: a theme plus the ordered
// task titles taught under it.
type CurriculumMonth struct {
	Theme  string
	Titles []string
}

// priorityKeywords are checked against the goal text before anything else,
// so a goal mentioning "django" lands on the backend track even when an
// explicit category says otherwise.
var priorityKeywords = []struct {
	keyword  string
	category string
}{
	{"django", CategoryBackend},
	{"flask", CategoryBackend},
	{"fastapi", CategoryBackend},
	{"golang", CategoryBackend},
	{"node", CategoryBackend},
	{"spring", CategoryBackend},
	{"sql", CategoryBackend},
	{"api", CategoryBackend},
	{"server", CategoryBackend},
	{"react", CategoryFrontend},
	{"vue", CategoryFrontend},
	{"css", CategoryFrontend},
	{"javascript", CategoryFrontend},
	{"typescript", CategoryFrontend},
	{"web design", CategoryFrontend},
	{"machine learning", CategoryDataScience},
	{"pandas", CategoryDataScience},
	{"data science", CategoryDataScience},
	{"data analysis", CategoryDataScience},
	{"statistics", CategoryDataScience},
	{"android", CategoryMobile},
	{"ios", CategoryMobile},
	{"swift", CategoryMobile},
	{"kotlin", CategoryMobile},
	{"flutter", CategoryMobile},
	{"kubernetes", CategoryDevOps},
	{"docker", CategoryDevOps},
	{"terraform", CategoryDevOps},
	{"aws", CategoryDevOps},
	{"cloud", CategoryDevOps},
}

// MatchCategory resolves the curriculum category for a free-text goal.
// Priority keywords win over the explicit category field; after that the
// explicit field and then the goal text are substring-matched against the
// known category names; everything else falls back to general.
func MatchCategory(goal, explicit string) string {
	lowered := strings.ToLower(goal)
	for _, pk := range priorityKeywords {
		if strings.Contains(lowered, pk.keyword) {
			return pk.category
		}
	}

	names := []string{CategoryBackend, CategoryFrontend, CategoryDataScience, CategoryMobile, CategoryDevOps}
	loweredExplicit := strings.ToLower(strings.TrimSpace(explicit))
	for _, name := range names {
		if loweredExplicit == name {
			return name
		}
	}
	for _, name := range names {
		if strings.Contains(lowered, name) {
			return name
		}
	}
	return CategoryGeneral
}

// Track returns the 12-month curriculum for a category, falling back to the
// general track for unknown names.
func Track(category string) []CurriculumMonth {
	if track, ok := curriculum[category]; ok {
		return track
	}
	return curriculum[CategoryGeneral]
}

// FlattenTitles produces the ordered task-title list the assignment engine
// zips against the schedule.
func FlattenTitles(track []CurriculumMonth) []string {
	var titles []string
	for _, m := range track {
		titles = append(titles, m.Titles...)
	}
	return titles
}

// Themes returns the ordered month themes of a track.
func Themes(track []CurriculumMonth) []string {
	themes := make([]string, 0, len(track))
	for _, m := range track {
		themes = append(themes, m.Theme)
	}
	return themes
}

var curriculum = map[string][]CurriculumMonth{
	CategoryBackend: {
		{Theme: "Programming Fundamentals", Titles: []string{
			"Set up your development environment",
			"Variables, types, and control flow",
			"Functions and error handling basics",
			"Collections: lists, maps, and iteration",
			"Write your first command-line program",
			"Read and write files from code",
		}},
		{Theme: "Data Structures & Algorithms", Titles: []string{
			"Arrays and slices in depth",
			"Hash maps and when to use them",
			"Stacks, queues, and linked lists",
			"Big-O notation and complexity analysis",
			"Sorting algorithms by hand",
			"Solve five easy algorithm problems",
		}},
		{Theme: "Databases & SQL", Titles: []string{
			"Relational model and table design",
			"SELECT, WHERE, and ORDER BY",
			"Joins across multiple tables",
			"Indexes and query performance",
			"Transactions and isolation levels",
			"Model a small e-commerce schema",
		}},
		{Theme: "HTTP & REST APIs", Titles: []string{
			"How HTTP requests and responses work",
			"REST resource design conventions",
			"Build a JSON API endpoint",
			"Request validation and status codes",
			"Pagination and filtering patterns",
			"Document your API",
		}},
		{Theme: "Web Framework Deep Dive", Titles: []string{
			"Routing and middleware concepts",
			"ORM models and migrations",
			"Form handling and validation",
			"Sessions, cookies, and CSRF",
			"Build a CRUD app end to end",
			"Write integration tests for your app",
		}},
		{Theme: "Authentication & Security", Titles: []string{
			"Password hashing done right",
			"Token-based auth with JWT",
			"OAuth login flows",
			"OWASP top ten walkthrough",
			"Rate limiting and abuse prevention",
			"Add auth to your CRUD app",
		}},
		{Theme: "Testing & Code Quality", Titles: []string{
			"Unit testing fundamentals",
			"Table-driven tests and fixtures",
			"Mocking external dependencies",
			"Measuring and using coverage",
			"Refactoring with tests as a net",
			"Set up continuous integration",
		}},
		{Theme: "Caching & Performance", Titles: []string{
			"Caching strategies and invalidation",
			"Redis fundamentals",
			"Profiling a slow endpoint",
			"Database connection pooling",
			"Load testing your API",
			"Optimize your app's hot path",
		}},
		{Theme: "Message Queues & Async Work", Titles: []string{
			"Why background jobs exist",
			"Queues, topics, and delivery guarantees",
			"Build a worker for email sending",
			"Retries, idempotency, and dead letters",
			"Scheduled and periodic jobs",
			"Wire a queue into your app",
		}},
		{Theme: "System Design Basics", Titles: []string{
			"Load balancers and horizontal scaling",
			"Database replication and sharding",
			"CAP theorem in practice",
			"Design a URL shortener",
			"Design a rate limiter",
			"Mock system design interview",
		}},
		{Theme: "Deployment & Operations", Titles: []string{
			"Containerize your application",
			"Environment configuration and secrets",
			"Structured logging and log search",
			"Metrics, alerts, and dashboards",
			"Deploy to a cloud provider",
			"Set up zero-downtime deploys",
		}},
		{Theme: "Capstone Project", Titles: []string{
			"Scope and spec your capstone",
			"Build the data layer",
			"Build the API surface",
			"Harden auth and validation",
			"Polish, document, and deploy",
			"Present and review your year",
		}},
	},
	CategoryFrontend: {
		{Theme: "HTML & CSS Foundations", Titles: []string{
			"Semantic HTML structure",
			"CSS selectors and the cascade",
			"Box model and layout flow",
			"Flexbox layouts",
			"Grid layouts",
			"Build a personal landing page",
		}},
		{Theme: "JavaScript Essentials", Titles: []string{
			"Values, scope, and closures",
			"Arrays and object manipulation",
			"DOM queries and events",
			"Promises and async/await",
			"Fetch and JSON APIs",
			"Build an interactive widget",
		}},
		{Theme: "Responsive Design", Titles: []string{
			"Mobile-first thinking",
			"Media queries in practice",
			"Fluid typography and spacing",
			"Responsive images",
			"Accessibility fundamentals",
			"Make your page responsive",
		}},
		{Theme: "Component Frameworks", Titles: []string{
			"Components and props",
			"State and events",
			"Conditional rendering and lists",
			"Forms and controlled inputs",
			"Component composition patterns",
			"Build a todo application",
		}},
		{Theme: "State Management", Titles: []string{
			"Lifting state and prop drilling",
			"Context and global stores",
			"Derived and computed state",
			"Persisting state locally",
			"Server state and caching",
			"Refactor your todo app's state",
		}},
		{Theme: "Styling at Scale", Titles: []string{
			"CSS architecture approaches",
			"Utility-first workflows",
			"Design tokens and theming",
			"Animations and transitions",
			"Dark mode support",
			"Restyle a past project",
		}},
		{Theme: "Tooling & Build Systems", Titles: []string{
			"Package managers and lockfiles",
			"Bundlers and dev servers",
			"Linters and formatters",
			"TypeScript gradual adoption",
			"Environment-based builds",
			"Migrate a project to TypeScript",
		}},
		{Theme: "Testing the Frontend", Titles: []string{
			"Unit testing components",
			"Testing user interactions",
			"Mocking network calls",
			"End-to-end test basics",
			"Visual regression concepts",
			"Add tests to your todo app",
		}},
		{Theme: "Performance", Titles: []string{
			"Measuring with Lighthouse",
			"Code splitting and lazy loading",
			"Image and font optimization",
			"Rendering performance",
			"Caching and service workers",
			"Optimize a slow page",
		}},
		{Theme: "APIs & Data Fetching", Titles: []string{
			"REST consumption patterns",
			"Error and loading states",
			"Optimistic updates",
			"Authentication from the client",
			"Real-time data basics",
			"Build a dashboard over an API",
		}},
		{Theme: "Design Systems", Titles: []string{
			"Component library anatomy",
			"Documenting components",
			"Versioning shared UI",
			"Accessibility audits",
			"Cross-browser testing",
			"Extract a mini design system",
		}},
		{Theme: "Capstone Project", Titles: []string{
			"Scope and design your capstone",
			"Build the core screens",
			"Wire up live data",
			"Test and harden the app",
			"Optimize and polish",
			"Ship and present your year",
		}},
	},
	CategoryDataScience: {
		{Theme: "Python for Data", Titles: []string{
			"Python environment and notebooks",
			"Core syntax and data types",
			"Functions and comprehensions",
			"Working with files and JSON",
			"NumPy arrays",
			"First exploratory notebook",
		}},
		{Theme: "Data Wrangling", Titles: []string{
			"DataFrames and series",
			"Filtering and transformation",
			"Grouping and aggregation",
			"Joins and reshaping",
			"Handling missing data",
			"Clean a messy public dataset",
		}},
		{Theme: "Statistics Foundations", Titles: []string{
			"Descriptive statistics",
			"Distributions and sampling",
			"Hypothesis testing",
			"Confidence intervals",
			"Correlation vs causation",
			"Analyze an A/B test",
		}},
		{Theme: "Data Visualization", Titles: []string{
			"Chart types and when to use them",
			"Plotting library fundamentals",
			"Multi-panel figures",
			"Interactive charts",
			"Storytelling with data",
			"Build a visual report",
		}},
		{Theme: "SQL for Analysis", Titles: []string{
			"Analytical queries",
			"Window functions",
			"CTEs and subqueries",
			"Query optimization basics",
			"Connecting notebooks to databases",
			"Answer business questions in SQL",
		}},
		{Theme: "Machine Learning Intro", Titles: []string{
			"Supervised learning concepts",
			"Train/test splits and leakage",
			"Linear models",
			"Tree-based models",
			"Evaluation metrics",
			"First end-to-end model",
		}},
		{Theme: "Feature Engineering", Titles: []string{
			"Encoding categorical data",
			"Scaling and normalization",
			"Feature selection",
			"Pipelines",
			"Cross-validation",
			"Improve your model's score",
		}},
		{Theme: "Advanced Models", Titles: []string{
			"Ensembles and boosting",
			"Hyperparameter tuning",
			"Class imbalance strategies",
			"Model interpretation",
			"Neural network basics",
			"Enter a practice competition",
		}},
		{Theme: "Time Series & Text", Titles: []string{
			"Time series decomposition",
			"Forecasting baselines",
			"Text cleaning and tokenization",
			"Bag-of-words and embeddings",
			"Sentiment classification",
			"Forecast or classify a real dataset",
		}},
		{Theme: "Data Engineering Basics", Titles: []string{
			"Batch pipelines",
			"Scheduling and orchestration",
			"Data validation",
			"Storage formats",
			"Reproducible environments",
			"Automate your analysis pipeline",
		}},
		{Theme: "ML in Production", Titles: []string{
			"Serving models behind APIs",
			"Monitoring drift",
			"Experiment tracking",
			"Model versioning",
			"Ethics and bias review",
			"Deploy a model end to end",
		}},
		{Theme: "Capstone Project", Titles: []string{
			"Define your capstone question",
			"Collect and clean the data",
			"Model and iterate",
			"Visualize and interpret",
			"Write up the findings",
			"Present and review your year",
		}},
	},
	CategoryMobile: {
		{Theme: "Mobile Fundamentals", Titles: []string{
			"Platform landscape and tooling",
			"Project structure and builds",
			"Views and layout systems",
			"Handling user input",
			"App lifecycle",
			"Hello-world app on a device",
		}},
		{Theme: "Language Deep Dive", Titles: []string{
			"Core language syntax",
			"Optionals and null safety",
			"Collections and generics",
			"Closures and callbacks",
			"Concurrency primitives",
			"Small console exercises",
		}},
		{Theme: "UI Building Blocks", Titles: []string{
			"Declarative UI basics",
			"Lists and scrolling",
			"Navigation patterns",
			"Theming and styles",
			"Adaptive layouts",
			"Build a notes screen",
		}},
		{Theme: "State & Architecture", Titles: []string{
			"Unidirectional data flow",
			"View models",
			"Dependency injection",
			"App architecture patterns",
			"Error handling strategy",
			"Refactor the notes app",
		}},
		{Theme: "Persistence", Titles: []string{
			"Key-value storage",
			"Local databases",
			"Data migrations",
			"File storage",
			"Caching strategies",
			"Persist the notes app",
		}},
		{Theme: "Networking", Titles: []string{
			"HTTP clients",
			"JSON decoding",
			"Error and retry handling",
			"Authentication tokens",
			"Offline-first sync",
			"Back the notes app with an API",
		}},
		{Theme: "Device Capabilities", Titles: []string{
			"Permissions model",
			"Camera and photos",
			"Location services",
			"Push notifications",
			"Background work",
			"Add a device feature",
		}},
		{Theme: "Testing", Titles: []string{
			"Unit testing view models",
			"UI testing basics",
			"Mocking network layers",
			"Snapshot testing",
			"Test plans and CI",
			"Cover the notes app",
		}},
		{Theme: "Performance & Polish", Titles: []string{
			"Profiling tools",
			"Memory management",
			"Smooth scrolling",
			"App size optimization",
			"Accessibility",
			"Polish pass on your app",
		}},
		{Theme: "Release Engineering", Titles: []string{
			"Signing and provisioning",
			"Store listings",
			"Beta distribution",
			"Crash reporting",
			"Analytics basics",
			"Ship a beta build",
		}},
		{Theme: "Advanced Topics", Titles: []string{
			"Animations",
			"Custom components",
			"Deep linking",
			"Widgets and extensions",
			"Cross-platform tradeoffs",
			"Add one advanced feature",
		}},
		{Theme: "Capstone Project", Titles: []string{
			"Scope your capstone app",
			"Build the core flows",
			"Integrate services",
			"Test and harden",
			"Polish and optimize",
			"Release and present",
		}},
	},
	CategoryDevOps: {
		{Theme: "Linux & Shell", Titles: []string{
			"Filesystem and permissions",
			"Processes and signals",
			"Shell scripting basics",
			"Text processing tools",
			"SSH and remote work",
			"Automate a daily chore",
		}},
		{Theme: "Networking Basics", Titles: []string{
			"TCP/IP and DNS",
			"HTTP and TLS",
			"Firewalls and ports",
			"Load balancing concepts",
			"Debugging with network tools",
			"Trace a request end to end",
		}},
		{Theme: "Version Control & CI", Titles: []string{
			"Git branching models",
			"Code review workflows",
			"CI pipeline anatomy",
			"Build artifacts and caching",
			"Pipeline as code",
			"Stand up CI for a project",
		}},
		{Theme: "Containers", Titles: []string{
			"Images and layers",
			"Writing Dockerfiles",
			"Volumes and networking",
			"Compose for local stacks",
			"Registry workflows",
			"Containerize an application",
		}},
		{Theme: "Orchestration", Titles: []string{
			"Cluster architecture",
			"Deployments and services",
			"Config and secrets",
			"Health checks and probes",
			"Rolling updates",
			"Deploy to a local cluster",
		}},
		{Theme: "Infrastructure as Code", Titles: []string{
			"Declarative infrastructure",
			"State management",
			"Modules and reuse",
			"Plan/apply workflows",
			"Drift detection",
			"Provision a small environment",
		}},
		{Theme: "Cloud Foundations", Titles: []string{
			"Compute, storage, networking",
			"Identity and access management",
			"Managed databases",
			"Cost awareness",
			"Well-architected basics",
			"Deploy a cloud workload",
		}},
		{Theme: "Observability", Titles: []string{
			"Logs, metrics, traces",
			"Dashboards",
			"Alerting and on-call",
			"SLIs and SLOs",
			"Incident response",
			"Instrument a service",
		}},
		{Theme: "Security & Compliance", Titles: []string{
			"Secrets management",
			"Image and dependency scanning",
			"Network policies",
			"Least privilege in practice",
			"Audit logging",
			"Harden your deployment",
		}},
		{Theme: "Reliability Engineering", Titles: []string{
			"Capacity planning",
			"Backups and restores",
			"Chaos experiments",
			"Runbooks",
			"Postmortems",
			"Run a game day",
		}},
		{Theme: "Automation at Scale", Titles: []string{
			"GitOps workflows",
			"Progressive delivery",
			"Policy as code",
			"Self-service platforms",
			"Internal tooling",
			"Automate a release path",
		}},
		{Theme: "Capstone Project", Titles: []string{
			"Design your platform capstone",
			"Build the pipeline",
			"Provision the infrastructure",
			"Add observability",
			"Load test and harden",
			"Document and present",
		}},
	},
	CategoryGeneral: {
		{Theme: "Learning How to Learn", Titles: []string{
			"Set your learning goal and schedule",
			"Spaced repetition basics",
			"Active recall practice",
			"Note-taking systems",
			"Avoiding tutorial paralysis",
			"Plan your first project",
		}},
		{Theme: "Computer Fundamentals", Titles: []string{
			"How computers execute programs",
			"Binary, memory, and storage",
			"Operating system basics",
			"How the internet works",
			"Files, processes, and the shell",
			"Explain a system to a friend",
		}},
		{Theme: "Programming Basics", Titles: []string{
			"Pick a language and set up",
			"Variables and control flow",
			"Functions and decomposition",
			"Collections and loops",
			"Debugging techniques",
			"Build a number-guessing game",
		}},
		{Theme: "Working with Data", Titles: []string{
			"Structured vs unstructured data",
			"Reading and writing files",
			"Parsing JSON and CSV",
			"Simple data transformations",
			"Intro to databases",
			"Analyze your own data",
		}},
		{Theme: "Problem Solving", Titles: []string{
			"Breaking problems down",
			"Pseudocode first",
			"Common algorithm patterns",
			"Reading error messages",
			"Rubber-duck debugging",
			"Solve ten practice problems",
		}},
		{Theme: "Version Control", Titles: []string{
			"Why history matters",
			"Commits and branches",
			"Remotes and collaboration",
			"Merge conflicts calmly",
			"Good commit messages",
			"Publish a project repository",
		}},
		{Theme: "Building Projects", Titles: []string{
			"Scoping a small project",
			"Iterating in small steps",
			"Using libraries",
			"Reading documentation",
			"Asking good questions",
			"Finish and share a project",
		}},
		{Theme: "Web Basics", Titles: []string{
			"Clients and servers",
			"HTML and CSS taste test",
			"APIs from the outside",
			"Hosting a static page",
			"Domains and DNS",
			"Put something online",
		}},
		{Theme: "Code Quality", Titles: []string{
			"Naming and readability",
			"Functions that do one thing",
			"Comments that earn their keep",
			"Intro to testing",
			"Refactoring basics",
			"Clean up an old project",
		}},
		{Theme: "Collaboration", Titles: []string{
			"Open source etiquette",
			"Reading other people's code",
			"Code review give and take",
			"Writing a README",
			"Issue tracking",
			"Contribute one small fix",
		}},
		{Theme: "Choosing a Path", Titles: []string{
			"Survey of specializations",
			"Backend taste test",
			"Frontend taste test",
			"Data taste test",
			"Portfolio planning",
			"Pick your direction",
		}},
		{Theme: "Capstone Project", Titles: []string{
			"Scope your capstone",
			"Build the first version",
			"Gather feedback",
			"Iterate and polish",
			"Write it up",
			"Present and plan next year",
		}},
	},
}
