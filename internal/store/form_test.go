package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zomujo/dial4inclusion/internal/domain"
)

func validGeneralForm() ComplaintForm {
	return ComplaintForm{
		Kind:        KindGeneral,
		PhoneNumber: "0241234567",
		District:    string(domain.DistrictObuasiMunicipal),
		Category:    string(domain.CategoryFundDelay),
		Description: "Fund delayed for two quarters",
	}
}

func validDetailedForm() ComplaintForm {
	form := validGeneralForm()
	form.Kind = KindDetailed
	form.FullName = "Akosua Mensah"
	form.Age = "34"
	form.Gender = "female"
	form.Language = "twi"
	form.AssistiveDevice = "wheelchair"
	form.IssueTypes = []string{"social_protection"}
	form.RequestType = "follow_up"
	return form
}

func TestValidateGeneralForm(t *testing.T) {
	form := validGeneralForm()
	assert.NoError(t, form.validate())
}

func TestValidateRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ComplaintForm)
		message string
	}{
		{"missing phone", func(f *ComplaintForm) { f.PhoneNumber = " " }, "Phone number is required."},
		{"missing district", func(f *ComplaintForm) { f.District = "" }, "Please select a district."},
		{"missing category", func(f *ComplaintForm) { f.Category = "" }, "Please select a category."},
		{"other category without detail", func(f *ComplaintForm) {
			f.Category = string(domain.CategoryOther)
			f.OtherCategory = ""
		}, "Please describe the other category."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validGeneralForm()
			tt.mutate(&form)
			err := form.validate()
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestValidateDetailedForm(t *testing.T) {
	form := validDetailedForm()
	assert.NoError(t, form.validate())
}

func TestValidateDetailedRequirements(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ComplaintForm)
		message string
	}{
		{"missing name", func(f *ComplaintForm) { f.FullName = "" }, "Full name is required for detailed complaints."},
		{"non-numeric age", func(f *ComplaintForm) { f.Age = "abc" }, "A valid age is required for detailed complaints."},
		{"zero age", func(f *ComplaintForm) { f.Age = "0" }, "A valid age is required for detailed complaints."},
		{"missing gender", func(f *ComplaintForm) { f.Gender = "" }, "Gender is required for detailed complaints."},
		{"missing language", func(f *ComplaintForm) { f.Language = "" }, "Language is required for detailed complaints."},
		{"missing device", func(f *ComplaintForm) { f.AssistiveDevice = "" }, "Assistive device is required for detailed complaints."},
		{"other device without detail", func(f *ComplaintForm) { f.AssistiveDevice = "other" }, "Please describe the other assistive device."},
		{"no issue types", func(f *ComplaintForm) { f.IssueTypes = nil }, "Select at least one issue type."},
		{"other issue without detail", func(f *ComplaintForm) { f.IssueTypes = []string{"other"} }, "Please describe the other issue type."},
		{"missing request type", func(f *ComplaintForm) { f.RequestType = "" }, "Request type is required for detailed complaints."},
		{"other request without detail", func(f *ComplaintForm) { f.RequestType = "other" }, "Please describe the other request."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validDetailedForm()
			tt.mutate(&form)
			err := form.validate()
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestPayloadNavigatorDetailedIncludesSubject(t *testing.T) {
	form := validDetailedForm()

	input := form.payload(domain.RoleNavigator)

	assert.Equal(t, "Akosua Mensah", input.FullName)
	assert.Equal(t, 34, input.Age)
	assert.Equal(t, []string{"social_protection"}, input.IssueTypes)
	assert.Equal(t, "follow_up", input.RequestType)
}

func TestPayloadNonNavigatorStaysReduced(t *testing.T) {
	form := validDetailedForm()

	input := form.payload(domain.RoleAdmin)

	assert.Empty(t, input.FullName)
	assert.Zero(t, input.Age)
	assert.Empty(t, input.IssueTypes)
	assert.Equal(t, "0241234567", input.PhoneNumber)
	assert.Equal(t, string(domain.DistrictObuasiMunicipal), input.District)
}

func TestPayloadOmitsOtherCategoryUnlessChosen(t *testing.T) {
	form := validGeneralForm()
	form.OtherCategory = "should be dropped"

	input := form.payload(domain.RoleNavigator)

	assert.Empty(t, input.OtherCategory)
}
