package deck

// producers maps every registered section to its slide. Kept as an explicit
// table so the mapping stays total over the registry.
var producers = map[SectionID]Producer{
	SectionIntro:        introSlide,
	SectionAgenda:       agendaSlide,
	SectionFrustrations: frustrationsSlide,
	SectionMentalShift:  mentalShiftSlide,
	SectionWorkflow:     workflowSlide,
	SectionEmbedding:    embeddingSlide,
	SectionRouting:      routingSlide,
	SectionDemo:         demoSlide,
	SectionTakeaways:    takeawaysSlide,
}

// Component returns the producer registered for id.
func Component(id SectionID) (Producer, bool) {
	p, ok := producers[id]
	return p, ok
}

// Resolve returns the slide for id. Unknown identifiers fall back to the
// introductory slide.
func Resolve(id SectionID) Slide {
	if p, ok := producers[id]; ok {
		return p()
	}
	return introSlide()
}

func introSlide() Slide {
	return Slide{
		Title:    "LLMs in Production: What Breaks, What Works, and Why",
		Subtitle: "A practical mental model for developers, product, QA and leadership",
		Body: []Block{
			Para("The goal of this session is to build a shared mental model for how Large Language Models behave in real products, not just in ChatGPT."),
			Bullets("•",
				"Why LLMs can feel brilliant and broken at the same time",
				"How coding conventions and workflow make agents dramatically better",
				"What it means to embed probabilistic systems safely into our stack",
			),
			Aside("30-minute session. Deeper discussion after: bring examples, frustrations, and ideas."),
		},
		Notes: []string{
			`Set the tone: this is not another "AI is magic" talk. It is about how to think about LLMs as engineering components.`,
			"Connect to previous sessions: coding conventions, agents, MCP. Explain that this talk gives the underlying mental model that makes those practices make sense.",
			"Emphasise the three aims: technical alignment, cultural mindset shift, and strategic positioning of AI.",
		},
	}
}

func agendaSlide() Slide {
	return Slide{
		Title:    "Agenda",
		Subtitle: "What we'll cover in ~30 minutes",
		Body: []Block{
			Timeline(
				TimelineEntry{Label: "Hook: Why LLMs frustrate us", Time: "0–3 min"},
				TimelineEntry{Label: "The core mental shift: Deterministic vs Probabilistic", Time: "3–8 min"},
				TimelineEntry{Label: "LLMs as a workflow accelerator (coding conventions)", Time: "8–15 min"},
				TimelineEntry{Label: "Embedding LLMs in our products", Time: "15–21 min"},
				TimelineEntry{Label: "Why smaller models + routing wins", Time: "21–25 min"},
				TimelineEntry{Label: "Concrete demo: Digital signage prompt design", Time: "25–28 min"},
				TimelineEntry{Label: "Key takeaways & what AI maturity means for us", Time: "28–30 min"},
			),
		},
		Notes: []string{
			"Walk through the flow so people know where you are. Emphasise that there will be a concrete demo, not only concepts.",
			`Flag the "smaller models + routing" section as something of special interest for the board because it speaks to efficiency and cost control.`,
		},
	}
}

func frustrationsSlide() Slide {
	return Slide{
		Title:    "Why Do LLMs Frustrate Us?",
		Subtitle: "You've probably experienced at least one of these…",
		Body: []Block{
			Bullets("!",
				"It wrote perfect code… then failed on the second attempt with the same prompt",
				"It hallucinated an API, library or function that simply doesn't exist",
				"It 'forgot' a constraint you gave it 10 messages earlier in the same chat",
				"It gave brilliant output today and confusing output tomorrow, same question",
				"It confidently told you something wrong, with zero indication of uncertainty",
			),
			Callout(ToneWarn, "The problem is not the model. The problem is expecting deterministic behaviour from a probabilistic system."),
		},
		Notes: []string{
			`Use this as a relatable hook. Ask for a quick show of hands: "Who has seen one of these in the last week?".`,
			"Close by teasing the key message: the problem is not (only) the model, but the mental model and the way we integrate it.",
		},
	}
}

func mentalShiftSlide() Slide {
	return Slide{
		Title:    "The Core Mental Shift",
		Subtitle: "Deterministic code vs. probabilistic systems",
		Body: []Block{
			Columns(
				Column{
					Heading: "Deterministic Code",
					Tag:     "Code",
					Tone:    ToneNeutral,
					Blocks: []Block{Bullets("→",
						"Same input → always same output",
						"Explicit control flow, traceable step by step",
						"Unit-testable with reliable pass / fail",
						"Precise – errors are deterministic bugs",
						"Best for logic, routing, validation, data",
					)},
				},
				Column{
					Heading: "LLM (Probabilistic)",
					Tag:     "LLM",
					Tone:    ToneAccent,
					Blocks: []Block{Bullets("≈",
						"Same input → distribution of outputs",
						"Implicit statistical reasoning, not explicit logic",
						"Must be validated externally – output is never guaranteed",
						"Approximate – confident ≠ correct",
						"Best for language, generation, fuzzy reasoning",
					)},
				},
			),
			Callout(ToneInfo, "Most LLM frustration = expecting deterministic behaviour from a probabilistic system."),
		},
		Notes: []string{
			"Draw a clear line between traditional software (deterministic) and LLMs (probabilistic). This underpins every other slide.",
			"Make it concrete: in deterministic code, if a test passes today it passes tomorrow. With LLMs, you can only talk about probabilities and guardrails.",
		},
	}
}

func workflowSlide() Slide {
	return Slide{
		Title:    "LLM as a Workflow Accelerator",
		Subtitle: "Augmenting how you work, not replacing what you build",
		Body: []Block{
			Aside("This is the WHY behind our coding conventions for AI agents: explicit types, clear naming, interfaces first, consistent patterns."),
			Cards(
				Card{Title: "Think Before You Prompt", Body: "Clear plan + AI = fast. No plan + AI = fast in the wrong direction. Write plan.md → tasks.md → then prompt."},
				Card{Title: "Structure Beats Chat", Body: "spec.md, prd.md, interfaces.ts first. Give the model a framework – it replicates patterns it can clearly see."},
				Card{Title: "Iterate Small", Body: "'Create the interface' → 'Implement' → 'Write the tests' beats one huge prompt every time."},
				Card{Title: "Log Everything", Body: "Full system prompt, full user message, full raw response. If you don't log, you're guessing – not debugging."},
				Card{Title: "Validate Output", Body: "Never trust blindly. Parse, schema-check, test. LLM output is a first draft – not a finished result."},
				Card{Title: "Manage Context", Body: "Context windows are finite. Summarise earlier turns explicitly. Design for overflow from day one."},
			),
		},
		Notes: []string{
			`Connect directly to your boss's points on coding conventions and workflow. Emphasise that these are not "nice to have"; they are how we make probabilistic systems reliable in practice.`,
			"Highlight the cultural angle: good AI use looks like disciplined engineering, not magic prompts.",
		},
	}
}

func embeddingSlide() Slide {
	return Slide{
		Title:    "Embedding LLMs in Your Product",
		Subtitle: "Using an LLM yourself vs. shipping one inside a product are very different problems",
		Body: []Block{
			Columns(
				Column{
					Heading: "Relevant for Digital Signage",
					Blocks: []Block{Bullets("→",
						"Dynamic promotional copy on displays",
						"Natural language playlist / scheduling",
						"Auto-tagging and categorising media",
						"Chatbot or assistant inside the platform",
						"Summarising content feeds automatically",
					)},
				},
				Column{
					Heading: "Key Engineering Concerns",
					Blocks: []Block{Bullets("→",
						"Latency: 0.5–5s per call. Async, streaming, or pre-generation?",
						"Cost: tokens = money. Bad prompts → cost explosion.",
						"Routing: small model for classification, large for reasoning.",
						"Context limits: design for finite windows and overflow.",
						"Guardrails: validate JSON, sanitise, moderate before display.",
						"Fallbacks: if the API is down, what does the screen show?",
					)},
				},
			),
			Callout(ToneWarn, "Deterministic layers around probabilistic cores = robust, shippable systems."),
		},
		Notes: []string{
			"Shift from personal productivity to product engineering. Stress that once it's in the product, you need SLAs, observability, guardrails and fallbacks.",
			"Tie to your domain (digital signage) so it feels concrete for the board and non-engineers.",
		},
	}
}

func routingSlide() Slide {
	return Slide{
		Title:    "Why Smaller Models + Routing Wins",
		Subtitle: "Architectural thinking beyond experimenting with ChatGPT",
		Body: []Block{
			Columns(
				Column{
					Heading: "90% of tasks don't need GPT‑4 class reasoning",
					Blocks: []Block{Bullets("•",
						"Most of our realistic use cases are classification or extraction.",
						`Example: "Is this asset safe to show?" · "Which campaign bucket does this belong to?" · "Pull product IDs from this text".`,
						"These are fast, cheap, and more stable on small specialised models.",
					)},
				},
				Column{
					Heading: "Routing Architecture",
					Blocks: []Block{
						Numbered(
							"Cheap model for tagging / intent detection / routing.",
							"If task is simple → deterministic logic or small model handles it.",
							"Only send complex generation or reasoning to an expensive model.",
							"Always keep a deterministic fallback path for critical flows.",
						),
						Aside(`Result: lower cost, tighter latency bounds, and predictable behaviour – with the option to "spend" intelligence only where it pays off.`),
					},
				},
			),
		},
		Notes: []string{
			"Aim this at leadership: efficiency and control. Explain that most of our real workloads are simple classification or extraction tasks.",
			"Walk the diagram left to right: request comes in → cheap model tags the intent → router chooses between deterministic logic, small model, or expensive model.",
			"Emphasise the message: AI maturity is about architectures and safety, not about who has access to the latest model.",
		},
	}
}

const demoOutput = `{
  "headline": "30% Off Linen Essentials",
  "body": "Lightweight summer styles crafted for comfort and elegance."
}`

func demoSlide() Slide {
	return Slide{
		Title:    "Concrete Demo: Digital Signage Prompt",
		Subtitle: "Retail screen: generate promotional copy dynamically",
		Body: []Block{
			Columns(
				Column{
					Heading: "Naive Prompt",
					Tone:    ToneBad,
					Blocks: []Block{
						Code(ToneBad, `"Write a promotional message for a summer sale."`),
						Para("Output: generic copy, no structure, impossible to parse."),
						Bullets("✗",
							"Vague & generic",
							"Brand-inconsistent",
							"No structure → can't parse into UI components",
							"Feels unreliable to stakeholders",
						),
					},
				},
				Column{
					Heading: "Structured Prompt",
					Tone:    ToneGood,
					Blocks: []Block{
						Code(ToneGood, `System: "You are a copy generator for retail digital signage. Output valid JSON only. Max 20 words. Tone: energetic but premium. No emojis. Audience: Scandinavian fashion retail."`),
						Code(ToneGood, `User: "30% summer sale, linen shirts."`),
						Para("Output (example):"),
						Code(ToneGood, demoOutput),
					},
				},
			),
			Callout(ToneInfo, "This is not prompt engineering. This is constraint engineering, and now it's a product component."),
		},
		Notes: []string{
			"Talk through the naive vs structured prompt. Emphasise that the right-hand side is constraint engineering: the prompt becomes a product contract, not a one-off chat.",
			"If you demo live, use this slide as the reference and show how the JSON output can be validated and rendered into actual signage.",
		},
	}
}

func takeawaysSlide() Slide {
	return Slide{
		Title:    "Key Takeaways",
		Subtitle: "What to carry out of this room",
		Body: []Block{
			Bullets("•",
				"LLMs are probabilistic engines, not databases, not a reliable function.",
				"Structure, naming, interfaces and plans work because they reduce ambiguity for a probabilistic system.",
				"If you don't log full prompts and full responses, you are guessing, not debugging.",
				"Using an LLM yourself vs. shipping one in a product are fundamentally different engineering problems.",
				"Deterministic layers around probabilistic cores = robust, production-grade systems.",
				"AI maturity ≠ who uses ChatGPT. AI maturity = who integrates probabilistic systems safely into deterministic products.",
			),
			Para("Happy to stay and go deeper: bring your questions, examples, and frustrations."),
		},
		Notes: []string{
			`Use this slide to recap and then explicitly invite questions. Ask the board what "AI maturity" should mean for the company in the next 12–24 months.`,
			"Suggest next steps: internal coding standards for AI, a small cross-functional working group, or a pilot around routing & small models.",
			"Background from the brief: coding conventions that make agents better. Explicit types over inference where possible. Descriptive naming: CalculateAirtimeCredit() produces far better suggestions than Calc(). Define interfaces and contracts first, then let the agent implement against them. Keep patterns consistent; deviations confuse it.",
			`Workflow from the brief: think before you prompt. Iterate, don't big-bang: "Create the interface" → "Implement the service" → "Write the tests". Commit early, commit often; git reset beats manual rollback. Review everything: agents hallucinate imports, API calls and configuration.`,
			"Aims for the session: A) technical alignment, B) cultural mindset shift, C) strategic positioning of AI in the company.",
			"Closing line for the board: AI maturity is not who uses ChatGPT. AI maturity is who integrates probabilistic systems safely into deterministic products.",
		},
	}
}
