package refdata

// ProgramTable is the graduate program vocabulary: level tokens,
// program name tokens in match order, the master's-only subset and the
// program -> coarse type mapping.
type ProgramTable struct {
	Levels   []string        // level tokens, whitespace-delimited exact match
	Programs []string        // program tokens in search order, first match wins
	Masters  map[string]bool // programs that only exist at master's level
	TypeOf   map[string]string
}

// ProgramTypes is the closed set of coarse program categories accepted
// at the query boundary.
var ProgramTypes = []string{"CS", "EE", "SE", "IS", "HCI", "MEng"}

// programLevels are matched as whitespace-delimited tokens. Tokens
// starting with 'P' canonicalize to PhD, everything else to MS, so
// lowercase spellings stay out of this list on purpose.
var programLevels = []string{
	"MS", "MSc", "M.S.", "Master", "Masters",
	"PhD", "Phd", "PHD", "Ph.D.", "Ph.D",
}

// programsByType defines the vocabulary grouped by coarse type. Every
// searchable program token must appear in exactly one group; Load
// panics otherwise.
var programsByType = map[string][]string{
	"CS": {
		"Master of Science in Computer Science", "Master of Computer Science",
		"MS in Machine Learning", "MS in CS",
		"Computer Science", "Computer Vision", "Professional CS",
		"MSCS", "MS CS", "MCS", "MSCV", "MSML",
		"EECS", "EE CS", "CSE", "CS", "CV",
		"MSIT-Mob", "MSIT-MOB", "LTI", "MITS", "Robotics", "NLP",
	},
	"EE": {
		"MSECE", "MS ECE", "ECE", "MSEE", "EE",
	},
	"SE": {
		"Software Engineering", "Silicon Valley", "SV-SE",
		"MSSE", "MSE", "SE",
	},
	"IS": {
		"Master of Science in Information", "Information Management",
		"Information System", "MSIS", "MSIM", "IS",
	},
	"HCI": {
		"Human-Computer Interaction", "Human-Centered Design and Engineering",
		"MS in HCI", "MHCI", "MCDE", "HCI",
	},
	"MEng": {
		"MEng", "Meng", "M.Eng",
	},
}

// programSearchOrder lists every program token in match priority.
// Longer and more specific tokens come first so that e.g. "MS CS" is
// claimed before a bare "CS" could be, and "EECS" before "CS".
var programSearchOrder = []string{
	"Master of Science in Computer Science",
	"Master of Computer Science",
	"Master of Science in Information",
	"Human-Centered Design and Engineering",
	"Human-Computer Interaction",
	"MS in Machine Learning",
	"Software Engineering",
	"Information Management",
	"Information System",
	"Computer Science",
	"Computer Vision",
	"Professional CS",
	"Silicon Valley",
	"MS in HCI",
	"MS in CS",
	"MSIT-Mob",
	"MSIT-MOB",
	"Robotics",
	"SV-SE",
	"MSECE",
	"MS ECE",
	"MS CS",
	"MSCS",
	"MSCV",
	"MSML",
	"MSEE",
	"MSSE",
	"MSIS",
	"MSIM",
	"MHCI",
	"MCDE",
	"M.Eng",
	"MEng",
	"Meng",
	"EECS",
	"EE CS",
	"MITS",
	"CSE",
	"ECE",
	"MSE",
	"MCS",
	"HCI",
	"LTI",
	"NLP",
	"CS",
	"CV",
	"EE",
	"SE",
	"IS",
}

// mastersOnly lists programs that only exist at master's level; a
// fragment naming one of these without any level token still resolves
// to MS.
var mastersOnly = []string{
	"Master of Science in Computer Science", "Master of Computer Science",
	"Master of Science in Information",
	"MS in Machine Learning", "MS in CS", "MS in HCI",
	"MSCS", "MS CS", "MCS", "MSCV", "MSML", "MSIT-Mob", "MSIT-MOB",
	"MSEE", "MSECE", "MS ECE",
	"MSSE", "MSE", "MSIS", "MSIM",
	"MHCI", "MCDE",
	"MEng", "Meng", "M.Eng",
	"LTI", "MITS", "Professional CS",
}

func buildProgramTable() ProgramTable {
	typeOf := make(map[string]string)
	for ptype, names := range programsByType {
		for _, name := range names {
			if prev, ok := typeOf[name]; ok {
				panic("refdata: program " + name + " mapped to both " + prev + " and " + ptype)
			}
			typeOf[name] = ptype
		}
	}
	// Every searchable token must have a type; a gap here would surface
	// as an untyped record at query time, so fail at load instead.
	for _, name := range programSearchOrder {
		if _, ok := typeOf[name]; !ok {
			panic("refdata: program " + name + " has no type mapping")
		}
	}

	masters := make(map[string]bool, len(mastersOnly))
	for _, name := range mastersOnly {
		masters[name] = true
	}

	return ProgramTable{
		Levels:   programLevels,
		Programs: programSearchOrder,
		Masters:  masters,
		TypeOf:   typeOf,
	}
}
