package domain

// Option pairs a wire value with its display label. Catalogs below are static
// configuration loaded once; callers must not mutate them.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var DistrictOptions = []Option{
	{Value: string(DistrictAblekumaCentral), Label: "Ablekuma Central"},
	{Value: string(DistrictObuasiMunicipal), Label: "Obuasi Municipal"},
	{Value: string(DistrictUpperDenkyiraEast), Label: "Upper Denkyira East"},
}

var CategoryOptions = []Option{
	{Value: "visual_impairment", Label: "Visual Impairment"},
	{Value: "hearing_impairment", Label: "Hearing Impairment"},
	{Value: "physical_disability", Label: "Physical Disability"},
	{Value: "intellectual_disability", Label: "Intellectual Disability"},
	{Value: "psychosocial_disability", Label: "Psychosocial Disability"},
	{Value: "speech_impairment", Label: "Speech Impairment"},
	{Value: "multiple_disabilities", Label: "Multiple Disabilities"},
	{Value: string(CategoryFundDelay), Label: "Disability Fund Delay"},
	{Value: string(CategoryInaccessibleBuilding), Label: "Inaccessible Building"},
	{Value: string(CategoryDiscriminationAbuse), Label: "Discrimination / Abuse"},
	{Value: string(CategoryOther), Label: "Other"},
}

var IssueTypeOptions = []Option{
	{Value: "access_healthcare", Label: "Access to Healthcare"},
	{Value: "access_mental_health", Label: "Access to Mental Health Support"},
	{Value: "discrimination_stigma", Label: "Discrimination or Stigma"},
	{Value: "physical_accessibility", Label: "Physical Accessibility Challenge"},
	{Value: "education", Label: "Education"},
	{Value: "employment_livelihood", Label: "Employment / Livelihood"},
	{Value: "social_protection", Label: "Social Protection (LEAP, Disability Fund)"},
	{Value: "assistive_device", Label: "Assistive Device"},
	{Value: "gender_based_violence", Label: "Gender-Based Violence"},
	{Value: "legal_human_rights", Label: "Legal / Human Rights Issue"},
	{Value: "community_participation", Label: "Community Participation Barrier"},
	{Value: "lack_documentation", Label: "Lack of Documentation"},
	{Value: "other", Label: "Other"},
}

var AssistiveDeviceOptions = []Option{
	{Value: "none", Label: "None"},
	{Value: "white_cane", Label: "White Cane"},
	{Value: "wheelchair", Label: "Wheelchair"},
	{Value: "crutches", Label: "Crutches"},
	{Value: "hearing_aid", Label: "Hearing Aid"},
	{Value: "braille_device", Label: "Braille Device"},
	{Value: "other", Label: "Other"},
}

var RequestTypeOptions = []Option{
	{Value: "assistive_device_support", Label: "Assistive Device Support"},
	{Value: "health_rehabilitation_support", Label: "Health / Rehabilitation Support"},
	{Value: "mental_health_counselling", Label: "Mental Health Counselling"},
	{Value: "financial_assistance", Label: "Financial Assistance"},
	{Value: "legal_social_welfare_support", Label: "Legal / Social Welfare Support"},
	{Value: "education_training", Label: "Education / Training"},
	{Value: "accessibility_improvement", Label: "Accessibility Improvement"},
	{Value: "employment_skills_support", Label: "Employment / Skills Support"},
	{Value: "community_inclusion", Label: "Community Inclusion"},
	{Value: "documentation_assistance", Label: "Documentation Assistance (NHIS, Ghana Card)"},
	{Value: "transportation_assistance", Label: "Transportation Assistance"},
	{Value: "other", Label: "Other"},
}

var StatusOptions = []Option{
	{Value: string(StatusPending), Label: "Pending"},
	{Value: string(StatusInProgress), Label: "In Progress"},
	{Value: string(StatusResolved), Label: "Resolved"},
	{Value: string(StatusRejected), Label: "Rejected"},
}

// StatusOptionsWithEscalated is used where escalated is a selectable state
// (admin views).
var StatusOptionsWithEscalated = []Option{
	{Value: string(StatusEscalated), Label: "Escalated"},
	{Value: string(StatusPending), Label: "Pending"},
	{Value: string(StatusInProgress), Label: "In Progress"},
	{Value: string(StatusResolved), Label: "Resolved"},
	{Value: string(StatusRejected), Label: "Rejected"},
}

// Label returns the district display label, falling back to the raw value.
func (d District) Label() string {
	for _, opt := range DistrictOptions {
		if opt.Value == string(d) {
			return opt.Label
		}
	}
	return string(d)
}
