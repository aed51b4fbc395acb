package scoring

// Similar-background weights. Each weight is added once when its
// condition holds; an article's score is the best score over its
// program rows.
const (
	weightGPATight    = 6.0 // mean GPA within ±0.2 of the query
	weightGPANear     = 5.0 // mean GPA within ±0.21..0.3
	weightGPALoose    = 2.0 // mean GPA within ±0.31..0.5
	weightLowMinNear  = 4.0 // poster's min GPA is low and close to the query
	weightLowMinBoth  = 4.0 // both poster's min and the query GPA are low
	weightNoGPA       = -0.2
	weightSameUni     = 4.0
	weightUniNotTop3  = 10.0 // shared school outside NTU/NCTU/NTHU
	weightUniNotNext2 = 6.0  // shared school also outside NCCU/NCKU
	weightMajor       = 3.0
	weightMajorRare   = 1.0 // exact major outside the CS/EE mainstream
	weightUniAndMajor = 2.0
	weightProgram     = 6.0
	weightProgramRare = 4.0 // program hit outside CS/EE programs
	weightProgramType = 5.0
	weightPhDLevel    = 10.0
	weightTargetUni   = 15.0
)

// Target-school weights. Program identity dominates; the wanted
// universities come a close second.
const (
	targetWeightProgram     = 50.0
	targetWeightProgramType = 1.0
	targetWeightPhDLevel    = 1.0
	targetWeightUniversity  = 48.0
)

// GPA band half-widths and thresholds.
const (
	gpaTightBand = 0.2
	gpaNearBand  = 0.3
	gpaLooseBand = 0.5
	gpaMinBand   = 0.25
	lowGPA       = 3.01
)
