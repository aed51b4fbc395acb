package refdata

// Major is an undergraduate major/department reference entry.
type Major struct {
	ID    string // e.g. "CSIE"
	Cname string // Chinese department name, e.g. "資訊工程學系"
	Name  string // English name
	Cabbr string // Chinese abbreviation, e.g. "資工"
	Type  string // coarse discipline bucket, e.g. "CS", "EE"
}

// majors covers the departments that actually show up in study-abroad
// posts. 電機/資工 dominate; the rest exist mostly so the resolver does
// not mistake them for something else.
var majors = []Major{
	{"CSIE", "資訊工程學系", "Computer Science and Information Engineering", "資工", "CS"},
	{"CS", "資訊科學系", "Computer Science", "資科", "CS"},
	{"EE", "電機工程學系", "Electrical Engineering", "電機", "EE"},
	{"COMM", "電信工程學研究所", "Communication Engineering", "電信", "EE"},
	{"GINM", "資訊網路與多媒體研究所", "Networking and Multimedia", "網媒", "CS"},
	{"IM", "資訊管理學系", "Information Management", "資管", "IM"},
	{"EECS", "電機資訊學院", "Electrical Engineering and Computer Science", "電資", "EE"},
	{"ME", "機械工程學系", "Mechanical Engineering", "機械", "ME"},
	{"CE", "化學工程學系", "Chemical Engineering", "化工", "ChemE"},
	{"CIVIL", "土木工程學系", "Civil Engineering", "土木", "CivilE"},
	{"IE", "工業工程學系", "Industrial Engineering", "工工", "IE"},
	{"MATH", "數學系", "Mathematics", "數學", "Math"},
	{"STAT", "統計學系", "Statistics", "統計", "Stat"},
	{"PHYS", "物理學系", "Physics", "物理", "Sci"},
	{"CHEM", "化學系", "Chemistry", "化學", "Sci"},
	{"BA", "企業管理學系", "Business Administration", "企管", "Mgmt"},
	{"FIN", "財務金融學系", "Finance", "財金", "Fin"},
	{"ECON", "經濟學系", "Economics", "經濟", "Econ"},
	{"ACC", "會計學系", "Accounting", "會計", "Mgmt"},
	{"FLL", "外國語文學系", "Foreign Languages and Literatures", "外文", "Hum"},
	{"PSY", "心理學系", "Psychology", "心理", "Sci"},
	{"BIO", "生命科學系", "Life Science", "生科", "Bio"},
	{"ENT", "昆蟲學系", "Entomology", "昆蟲", "Bio"},
	{"MED", "醫學系", "Medicine", "醫學", "Med"},
	{"ARCH", "建築學系", "Architecture", "建築", "Design"},
}
