package catalog

// Built-in catalog tables. These are data, not logic: the engine never
// branches on specific ids. Operators can extend them with a YAML overlay.

// builtinTopics covers the recurring geopolitical/economic themes the
// compound patterns are built from. Patterns are matched case-insensitively
// as whole words; entries wrapped in slashes are treated as regular
// expressions.
var builtinTopics = []Topic{
	{ID: "tariffs", Category: "trade", Patterns: []string{
		"tariff", "tariffs", "import duty", "import duties", "trade barrier", "customs levy",
	}},
	{ID: "china-tensions", Category: "geopolitics", Patterns: []string{
		"taiwan strait", "south china sea", "beijing", "decoupling",
		"china tensions", "prc", "cross-strait",
	}},
	{ID: "supply-chain", Category: "logistics", Patterns: []string{
		"supply chain", "port congestion", "container shortage",
		"shipping delay", "shipping delays", "freight rates", "logistics disruption",
	}},
	{ID: "sanctions", Category: "trade", Patterns: []string{
		"sanction", "sanctions", "export control", "export controls",
		"embargo", "entity list", "blacklisted",
	}},
	{ID: "energy-prices", Category: "energy", Patterns: []string{
		"oil price", "oil prices", "crude", "opec", "gas price", "gas prices",
		"energy crisis", "brent",
	}},
	{ID: "military-posture", Category: "security", Patterns: []string{
		"troop buildup", "military exercise", "military exercises", "mobilization",
		"missile test", "naval deployment", "live-fire drill", "airspace incursion",
	}},
	{ID: "cyber-operations", Category: "security", Patterns: []string{
		"cyberattack", "cyber attack", "ransomware", "data breach", "malware",
		"/zero[- ]day/", "state-sponsored hackers",
	}},
	{ID: "currency-stress", Category: "finance", Patterns: []string{
		"devaluation", "currency crisis", "capital controls", "/currency (slide|plunge|rout)/",
		"fx intervention",
	}},
	{ID: "central-banks", Category: "finance", Patterns: []string{
		"interest rate", "interest rates", "rate hike", "rate cut",
		"federal reserve", "ecb", "monetary policy",
	}},
	{ID: "inflation", Category: "finance", Patterns: []string{
		"inflation", "consumer prices", "cost of living", "cpi",
	}},
	{ID: "food-security", Category: "resources", Patterns: []string{
		"grain export", "grain exports", "food prices", "crop failure",
		"fertilizer shortage", "famine", "wheat supply",
	}},
	{ID: "semiconductors", Category: "technology", Patterns: []string{
		"semiconductor", "semiconductors", "chip ban", "chipmaker",
		"foundry", "lithography", "chip shortage",
	}},
	{ID: "migration", Category: "societal", Patterns: []string{
		"refugee", "refugees", "migrant crossing", "migrant crossings",
		"asylum seekers", "border surge",
	}},
	{ID: "civil-unrest", Category: "societal", Patterns: []string{
		"protest", "protests", "riot", "riots", "general strike",
		"demonstration", "demonstrations", "curfew",
	}},
	{ID: "diplomatic-moves", Category: "geopolitics", Patterns: []string{
		"summit", "ambassador recalled", "peace talks", "treaty",
		"diplomatic relations", "diplomatic protest", "expelled diplomats",
	}},
	{ID: "maritime-chokepoints", Category: "logistics", Patterns: []string{
		"suez", "panama canal", "strait of hormuz", "red sea shipping",
		"bosphorus", "strait of malacca",
	}},
}

// builtinWeights is the source credibility table. First matching fragment
// wins, so more specific keys must come before their prefixes (apnews
// before ap). Unlisted sources resolve to the default weight 1.0.
var builtinWeights = []WeightEntry{
	{Key: "reuters", Weight: 1.3},
	{Key: "apnews", Weight: 1.25},
	{Key: "associatedpress", Weight: 1.25},
	{Key: "bloomberg", Weight: 1.25},
	{Key: "financialtimes", Weight: 1.25},
	{Key: "bbc", Weight: 1.2},
	{Key: "wallstreetjournal", Weight: 1.2},
	{Key: "wsj", Weight: 1.2},
	{Key: "economist", Weight: 1.2},
	{Key: "nikkei", Weight: 1.15},
	{Key: "aljazeera", Weight: 1.1},
	{Key: "politico", Weight: 1.05},
	{Key: "substack", Weight: 0.85},
	{Key: "blog", Weight: 0.8},
	{Key: "reddit", Weight: 0.7},
	{Key: "xinhua", Weight: 0.7},
	{Key: "globaltimes", Weight: 0.65},
	{Key: "tass", Weight: 0.6},
	{Key: "rt", Weight: 0.6},
}

// builtinPatterns is the compound pattern catalog. Narrative lists are
// parallel across locales; translations live in the locale package.
var builtinPatterns = []CompoundPattern{
	{
		ID:          "trade-war-escalation",
		Name:        "Trade War Escalation",
		Topics:      []string{"tariffs", "china-tensions", "supply-chain", "sanctions"},
		MinTopics:   2,
		BoostFactor: 1.5,
		Narrative: Narrative{
			KeyJudgments: []string{
				"Simultaneous tariff and sanctions activity signals deliberate escalation rather than routine trade friction.",
				"Logistics disruption alongside bilateral tension amplifies economic damage beyond the targeted sectors.",
				"Escalation cycles of this shape historically run for quarters, not weeks.",
			},
			Indicators: []string{
				"New tariff schedules announced by either side within the window.",
				"Export control or entity list expansions targeting strategic sectors.",
				"Carrier advisories or rerouting notices on trans-Pacific lanes.",
			},
			ConfirmationSignals: []string{
				"Retaliatory measures announced within two weeks of the initial action.",
				"Persistence of all contributing topics across consecutive monitoring cycles.",
				"Corporate guidance revisions citing trade policy as a primary risk.",
			},
			Assumptions: []string{
				"Neither side is currently seeking a negotiated off-ramp.",
				"Tariff actions reported in open sources reflect actual customs enforcement.",
			},
			ChangeTriggers: []string{
				"Announced leader-level summit with trade on the agenda.",
				"Suspension or rollback of a previously announced tariff tranche.",
			},
		},
	},
	{
		ID:          "energy-shock",
		Name:        "Energy Supply Shock",
		Topics:      []string{"energy-prices", "maritime-chokepoints", "sanctions", "military-posture"},
		MinTopics:   2,
		BoostFactor: 1.6,
		Narrative: Narrative{
			KeyJudgments: []string{
				"Price moves coinciding with chokepoint risk indicate a physical supply problem, not a financial one.",
				"Sanctions on producers compound chokepoint disruption faster than spare capacity can absorb.",
				"Military posturing near transit routes raises insurance costs before any actual interdiction.",
			},
			Indicators: []string{
				"Crude benchmarks moving more than five percent within the window.",
				"War-risk premium changes for tankers transiting affected straits.",
				"Producer-state sanctions packages under active discussion.",
			},
			ConfirmationSignals: []string{
				"Rerouting announced by major shipping lines.",
				"Strategic reserve releases announced by consuming nations.",
				"Sustained co-occurrence across three or more cycles.",
			},
			Assumptions: []string{
				"Spare production capacity remains near historic lows.",
				"Chokepoint transit data in shipping press is broadly accurate.",
			},
			ChangeTriggers: []string{
				"Naval escort arrangements restoring normal transit volumes.",
				"Producer agreement to offset sanctioned supply.",
			},
		},
	},
	{
		ID:          "tech-decoupling",
		Name:        "Technology Decoupling",
		Topics:      []string{"semiconductors", "sanctions", "china-tensions"},
		MinTopics:   2,
		BoostFactor: 1.4,
		Narrative: Narrative{
			KeyJudgments: []string{
				"Export controls on chips paired with bilateral tension mark a structural split, not a bargaining chip.",
				"Foundry investment announcements follow control regimes with a one-to-two year lag.",
			},
			Indicators: []string{
				"New lithography or EDA tooling restrictions.",
				"Chipmaker earnings calls citing license uncertainty.",
			},
			ConfirmationSignals: []string{
				"Allied governments mirroring the controls.",
				"Announced fab construction explicitly framed as supply security.",
			},
			Assumptions: []string{
				"Leading-edge fabrication remains geographically concentrated.",
				"Control regimes are enforced rather than symbolic.",
			},
			ChangeTriggers: []string{
				"License approvals resuming for previously blocked exports.",
				"A bilateral technology trade framework entering negotiation.",
			},
		},
	},
	{
		ID:          "financial-contagion",
		Name:        "Financial Contagion Risk",
		Topics:      []string{"currency-stress", "central-banks", "inflation"},
		MinTopics:   2,
		BoostFactor: 1.3,
		Narrative: Narrative{
			KeyJudgments: []string{
				"Currency stress during a tightening cycle spreads through dollar-denominated debt channels.",
				"Inflation persistence limits central banks' room to backstop stressed currencies.",
			},
			Indicators: []string{
				"Emerging market currency moves beyond two standard deviations.",
				"Unscheduled central bank meetings or intervention announcements.",
			},
			ConfirmationSignals: []string{
				"IMF program talks entering the news flow.",
				"Capital controls imposed or widened in a stressed economy.",
			},
			Assumptions: []string{
				"Major central banks prioritize domestic mandates over spillover effects.",
				"Reported reserve figures are not materially overstated.",
			},
			ChangeTriggers: []string{
				"Coordinated swap line extensions by major central banks.",
				"A clear disinflation trend restoring policy flexibility.",
			},
		},
	},
	{
		ID:          "gray-zone-pressure",
		Name:        "Gray-Zone Pressure Campaign",
		Topics:      []string{"cyber-operations", "military-posture", "diplomatic-moves", "china-tensions"},
		MinTopics:   3,
		BoostFactor: 1.7,
		Narrative: Narrative{
			KeyJudgments: []string{
				"Coordinated cyber, military, and diplomatic activity below the conflict threshold indicates a deliberate pressure campaign.",
				"Campaigns of this type aim to shift baselines gradually; single-cycle readings understate them.",
			},
			Indicators: []string{
				"Attributed intrusions against critical infrastructure operators.",
				"Exercises rehearsing blockade or interdiction scenarios.",
				"Diplomatic expulsions or recalled ambassadors.",
			},
			ConfirmationSignals: []string{
				"Three or more contributing topics active in consecutive cycles.",
				"Third-party governments issuing coordinated attribution statements.",
			},
			Assumptions: []string{
				"Observed cyber activity is state-directed rather than criminal.",
				"Neither party currently intends kinetic escalation.",
			},
			ChangeTriggers: []string{
				"Establishment of a military-to-military hotline or deconfliction channel.",
				"A sharp kinetic incident moving the situation out of the gray zone.",
			},
		},
	},
	{
		ID:          "humanitarian-spillover",
		Name:        "Humanitarian Spillover",
		Topics:      []string{"food-security", "migration", "civil-unrest"},
		MinTopics:   2,
		BoostFactor: 1.2,
		Narrative: Narrative{
			KeyJudgments: []string{
				"Food price shocks precede unrest in import-dependent states by one to three months.",
				"Migration surges concentrate political stress on transit and destination states simultaneously.",
			},
			Indicators: []string{
				"Staple price riots or bread subsidies under strain.",
				"Border crossing counts rising across consecutive reporting periods.",
			},
			ConfirmationSignals: []string{
				"Emergency appeals from UN food agencies.",
				"Curfews or states of emergency in affected regions.",
			},
			Assumptions: []string{
				"Grain export disruptions persist through the current season.",
				"Neighboring states lack absorption capacity for sustained flows.",
			},
			ChangeTriggers: []string{
				"A harvest materially above forecast in affected regions.",
				"Negotiated export corridor restoring staple flows.",
			},
		},
	},
}

// Builtin returns a fresh copy of the built-in catalog so callers can
// extend it without mutating the package-level tables.
func Builtin() *Catalog {
	c := &Catalog{
		Topics:        make([]Topic, len(builtinTopics)),
		Patterns:      make([]CompoundPattern, len(builtinPatterns)),
		SourceWeights: make([]WeightEntry, len(builtinWeights)),
	}
	copy(c.Topics, builtinTopics)
	copy(c.Patterns, builtinPatterns)
	copy(c.SourceWeights, builtinWeights)
	return c
}
