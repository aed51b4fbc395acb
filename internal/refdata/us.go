package refdata

// UIDName maps a university abbreviation to its full name.
// Kept as a slice so match order stays deterministic.
type UIDName struct {
	UID  string
	Name string
}

// USUniversities splits the US school list into the top-tier CS schools
// (matched aggressively, including fuzzy fullname matching) and the
// long tail (matched conservatively, exact ids and names only).
type USUniversities struct {
	TopNames   []string  // top-tier full names, substring-matched case-insensitively
	TopUIDs    []UIDName // top-tier abbreviations, whitespace-delimited exact match
	OtherNames []string  // long-tail full names
	OtherUIDs  []UIDName // long-tail abbreviations, word-boundary match
}

var usUniversities = USUniversities{
	TopNames: []string{
		"Massachusetts Institute of Technology",
		"Carnegie Mellon University",
		"Stanford University",
		"University of California Berkeley",
		"University of Illinois Urbana-Champaign",
		"Cornell Tech",
		"Cornell University",
		"University of Washington",
		"Georgia Institute of Technology",
		"Princeton University",
		"University of Texas at Austin",
		"California Institute of Technology",
		"University of Michigan",
		"Columbia University",
		"University of California Los Angeles",
		"University of California San Diego",
		"University of Wisconsin-Madison",
		"Harvard University",
		"University of Pennsylvania",
		"University of Maryland College Park",
		"Purdue University",
		"Rice University",
		"University of Southern California",
		"Yale University",
		"Duke University",
		"University of Massachusetts Amherst",
		"Johns Hopkins University",
		"New York University",
		"University of California Irvine",
		"University of Minnesota Twin Cities",
		"University of Virginia",
		"Northwestern University",
		"Ohio State University",
		"Pennsylvania State University",
		"University of California Davis",
		"University of California Santa Barbara",
		"University of Chicago",
		"University of Colorado Boulder",
		"University of North Carolina at Chapel Hill",
		"Texas A&M University",
		"Arizona State University",
		"Stony Brook University",
		"Virginia Tech",
		"Washington University in St. Louis",
		"Rutgers University",
		"Brown University",
	},
	TopUIDs: []UIDName{
		{"MIT", "Massachusetts Institute of Technology"},
		{"CMU", "Carnegie Mellon University"},
		{"Stanford", "Stanford University"},
		{"UCB", "University of California Berkeley"},
		{"Berkeley", "University of California Berkeley"},
		{"UC Berkeley", "University of California Berkeley"},
		{"UIUC", "University of Illinois Urbana-Champaign"},
		{"UW", "University of Washington"},
		{"UWash", "University of Washington"},
		{"Gatech", "Georgia Institute of Technology"},
		{"GaTech", "Georgia Institute of Technology"},
		{"GT", "Georgia Institute of Technology"},
		{"Princeton", "Princeton University"},
		{"UT Austin", "University of Texas at Austin"},
		{"UTA", "University of Texas at Austin"},
		{"Caltech", "California Institute of Technology"},
		{"UMich", "University of Michigan"},
		{"Michigan", "University of Michigan"},
		{"Columbia", "Columbia University"},
		{"UCLA", "University of California Los Angeles"},
		{"UCSD", "University of California San Diego"},
		{"UCSB", "University of California Santa Barbara"},
		{"UCI", "University of California Irvine"},
		{"UC Davis", "University of California Davis"},
		{"UWM", "University of Wisconsin-Madison"},
		{"UW-Madison", "University of Wisconsin-Madison"},
		{"Madison", "University of Wisconsin-Madison"},
		{"Harvard", "Harvard University"},
		{"UPenn", "University of Pennsylvania"},
		{"Penn", "University of Pennsylvania"},
		{"UMD", "University of Maryland College Park"},
		{"Purdue", "Purdue University"},
		{"Rice", "Rice University"},
		{"USC", "University of Southern California"},
		{"Yale", "Yale University"},
		{"Duke", "Duke University"},
		{"UMass", "University of Massachusetts Amherst"},
		{"JHU", "Johns Hopkins University"},
		{"NYU", "New York University"},
		{"UMN", "University of Minnesota Twin Cities"},
		{"UVA", "University of Virginia"},
		{"NWU", "Northwestern University"},
		{"Northwestern", "Northwestern University"},
		{"OSU", "Ohio State University"},
		{"Ohio State", "Ohio State University"},
		{"PSU", "Pennsylvania State University"},
		{"Penn State", "Pennsylvania State University"},
		{"UChicago", "University of Chicago"},
		{"CU Boulder", "University of Colorado Boulder"},
		{"UNC", "University of North Carolina at Chapel Hill"},
		{"TAMU", "Texas A&M University"},
		{"ASU", "Arizona State University"},
		{"SBU", "Stony Brook University"},
		{"Stony Brook", "Stony Brook University"},
		{"VT", "Virginia Tech"},
		{"WUSTL", "Washington University in St. Louis"},
		{"WashU", "Washington University in St. Louis"},
		{"Rutgers", "Rutgers University"},
		{"Brown", "Brown University"},
		{"Cornell", "Cornell University"},
	},
	OtherNames: []string{
		"Northeastern University",
		"Syracuse University",
		"University of Florida",
		"University of Pittsburgh",
		"Boston University",
		"North Carolina State University",
		"University of Arizona",
		"University of Rochester",
		"Rensselaer Polytechnic Institute",
		"University of Utah",
		"Indiana University Bloomington",
		"Michigan State University",
		"University of Notre Dame",
		"Vanderbilt University",
		"Dartmouth College",
		"Worcester Polytechnic Institute",
		"Oregon State University",
		"University of Connecticut",
		"George Mason University",
		"Santa Clara University",
		"San Jose State University",
		"Rochester Institute of Technology",
		"Illinois Institute of Technology",
		"Stevens Institute of Technology",
		"University of California Santa Cruz",
		"University of California Riverside",
		"Texas Tech University",
		"University of Iowa",
		"Iowa State University",
		"University of Delaware",
		"Drexel University",
		"Case Western Reserve University",
		"Colorado State University",
		"University of Buffalo",
		"Buffalo",
	},
	OtherUIDs: []UIDName{
		{"NEU", "Northeastern University"},
		{"BU", "Boston University"},
		{"NCSU", "North Carolina State University"},
		{"RPI", "Rensselaer Polytechnic Institute"},
		{"IUB", "Indiana University Bloomington"},
		{"MSU", "Michigan State University"},
		{"WPI", "Worcester Polytechnic Institute"},
		{"GMU", "George Mason University"},
		{"SCU", "Santa Clara University"},
		{"SJSU", "San Jose State University"},
		{"RIT", "Rochester Institute of Technology"},
		{"IIT", "Illinois Institute of Technology"},
		{"UCSC", "University of California Santa Cruz"},
		{"UCR", "University of California Riverside"},
		{"UF", "University of Florida"},
		{"Pitt", "University of Pittsburgh"},
		{"UofU", "University of Utah"},
		{"UB", "University of Buffalo"},
		{"CWRU", "Case Western Reserve University"},
	},
}
