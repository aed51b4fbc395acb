package refdata

// University is a Taiwan university reference entry.
// IP is the campus network prefix occasionally pasted into posts in
// place of the school name (e.g. posting from a dorm network).
type University struct {
	ID       string // e.g. "NTU"
	Cname    string // full Chinese name, e.g. "國立臺灣大學"
	Name     string // full English name
	Cabbr    string // Chinese abbreviation, e.g. "台大"
	IP       string // campus network prefix, e.g. "140.112"
	Location string
}

// twUniversities is ordered roughly by how often each school shows up
// on the board. Order matters only for deterministic iteration; lookup
// precedence is decided by the resolver, not by this list.
var twUniversities = []University{
	{"NTU", "國立臺灣大學", "National Taiwan University", "台大", "140.112", "Taipei"},
	{"NCTU", "國立交通大學", "National Chiao Tung University", "交大", "140.113", "Hsinchu"},
	{"NTHU", "國立清華大學", "National Tsing Hua University", "清大", "140.114", "Hsinchu"},
	{"NCKU", "國立成功大學", "National Cheng Kung University", "成大", "140.116", "Tainan"},
	{"NCCU", "國立政治大學", "National Chengchi University", "政大", "140.119", "Taipei"},
	{"NCU", "國立中央大學", "National Central University", "中央", "140.115", "Taoyuan"},
	{"NSYSU", "國立中山大學", "National Sun Yat-sen University", "中山", "140.117", "Kaohsiung"},
	{"NCHU", "國立中興大學", "National Chung Hsing University", "中興", "140.120", "Taichung"},
	{"NTNU", "國立臺灣師範大學", "National Taiwan Normal University", "師大", "140.122", "Taipei"},
	{"NTUST", "國立臺灣科技大學", "National Taiwan University of Science and Technology", "台科大", "140.118", "Taipei"},
	{"NTUT", "國立臺北科技大學", "National Taipei University of Technology", "北科大", "140.124", "Taipei"},
	{"CCU", "國立中正大學", "National Chung Cheng University", "中正", "140.123", "Chiayi"},
	{"NTPU", "國立臺北大學", "National Taipei University", "北大", "120.126", "New Taipei"},
	{"NYMU", "國立陽明大學", "National Yang-Ming University", "陽明", "140.129", "Taipei"},
	{"FJU", "輔仁大學", "Fu Jen Catholic University", "輔大", "140.136", "New Taipei"},
	{"TKU", "淡江大學", "Tamkang University", "淡江", "163.13", "New Taipei"},
	{"YZU", "元智大學", "Yuan Ze University", "元智", "140.138", "Taoyuan"},
	{"CYCU", "中原大學", "Chung Yuan Christian University", "中原", "140.135", "Taoyuan"},
	{"FCU", "逢甲大學", "Feng Chia University", "逢甲", "140.134", "Taichung"},
	{"NCNU", "國立暨南國際大學", "National Chi Nan University", "暨南", "163.22", "Nantou"},
}
