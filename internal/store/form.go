package store

import (
	"strconv"
	"strings"

	"github.com/Zomujo/dial4inclusion/internal/domain"
	"github.com/Zomujo/dial4inclusion/internal/gateway"
	apperrors "github.com/Zomujo/dial4inclusion/pkg/errorutil"
)

// ComplaintKind selects how much of the form is collected.
type ComplaintKind string

const (
	KindGeneral  ComplaintKind = "general"
	KindDetailed ComplaintKind = "detailed"
)

// ComplaintForm is the submission input. Age is a string because it arrives
// as raw form input and is validated here.
type ComplaintForm struct {
	Kind                 ComplaintKind `json:"complaintType"`
	FullName             string        `json:"fullName"`
	Age                  string        `json:"age"`
	Gender               string        `json:"gender"`
	PhoneNumber          string        `json:"phoneNumber"`
	CaregiverPhoneNumber string        `json:"caregiverPhoneNumber"`
	Language             string        `json:"language"`
	AssistiveDevice      string        `json:"assistiveDevice"`
	OtherAssistiveDevice string        `json:"otherAssistiveDevice"`
	Category             string        `json:"category"`
	OtherCategory        string        `json:"otherCategory"`
	IssueTypes           []string      `json:"issueTypes"`
	OtherIssueType       string        `json:"otherIssueType"`
	RequestType          string        `json:"requestType"`
	OtherRequest         string        `json:"otherRequest"`
	District             string        `json:"district"`
	Description          string        `json:"description"`
}

func (f *ComplaintForm) detailed() bool {
	return f.Kind == KindDetailed
}

func (f *ComplaintForm) hasIssueType(value string) bool {
	for _, issue := range f.IssueTypes {
		if issue == value {
			return true
		}
	}
	return false
}

// validate applies the client-side checks performed before any network call.
// Each missing requirement yields its own message so the form can surface it
// inline.
func (f *ComplaintForm) validate() error {
	if strings.TrimSpace(f.PhoneNumber) == "" {
		return apperrors.NewValidationError("Phone number is required.", nil)
	}
	if strings.TrimSpace(f.District) == "" {
		return apperrors.NewValidationError("Please select a district.", nil)
	}
	if strings.TrimSpace(f.Category) == "" {
		return apperrors.NewValidationError("Please select a category.", nil)
	}
	if f.Category == string(domain.CategoryOther) && strings.TrimSpace(f.OtherCategory) == "" {
		return apperrors.NewValidationError("Please describe the other category.", nil)
	}

	if !f.detailed() {
		return nil
	}

	if strings.TrimSpace(f.FullName) == "" {
		return apperrors.NewValidationError("Full name is required for detailed complaints.", nil)
	}
	if age, err := strconv.Atoi(strings.TrimSpace(f.Age)); err != nil || age <= 0 {
		return apperrors.NewValidationError("A valid age is required for detailed complaints.", nil)
	}
	if strings.TrimSpace(f.Gender) == "" {
		return apperrors.NewValidationError("Gender is required for detailed complaints.", nil)
	}
	if strings.TrimSpace(f.Language) == "" {
		return apperrors.NewValidationError("Language is required for detailed complaints.", nil)
	}
	if strings.TrimSpace(f.AssistiveDevice) == "" {
		return apperrors.NewValidationError("Assistive device is required for detailed complaints.", nil)
	}
	if f.AssistiveDevice == "other" && strings.TrimSpace(f.OtherAssistiveDevice) == "" {
		return apperrors.NewValidationError("Please describe the other assistive device.", nil)
	}
	if len(f.IssueTypes) == 0 {
		return apperrors.NewValidationError("Select at least one issue type.", nil)
	}
	if f.hasIssueType("other") && strings.TrimSpace(f.OtherIssueType) == "" {
		return apperrors.NewValidationError("Please describe the other issue type.", nil)
	}
	if strings.TrimSpace(f.RequestType) == "" {
		return apperrors.NewValidationError("Request type is required for detailed complaints.", nil)
	}
	if f.RequestType == "other" && strings.TrimSpace(f.OtherRequest) == "" {
		return apperrors.NewValidationError("Please describe the other request.", nil)
	}
	return nil
}

// payload builds the role-appropriate create payload. Navigators logging a
// detailed complaint on behalf of a reporter include the subject details;
// everyone else sends the reduced self-service shape.
func (f *ComplaintForm) payload(role domain.Role) gateway.SubmitInput {
	input := gateway.SubmitInput{
		PhoneNumber: strings.TrimSpace(f.PhoneNumber),
		District:    f.District,
		Category:    f.Category,
		Description: strings.TrimSpace(f.Description),
	}
	if f.Category == string(domain.CategoryOther) {
		input.OtherCategory = strings.TrimSpace(f.OtherCategory)
	}

	if role != domain.RoleNavigator || !f.detailed() {
		return input
	}

	age, _ := strconv.Atoi(strings.TrimSpace(f.Age))
	input.FullName = strings.TrimSpace(f.FullName)
	input.Age = age
	input.Gender = f.Gender
	input.CaregiverPhoneNumber = strings.TrimSpace(f.CaregiverPhoneNumber)
	input.Language = f.Language
	input.AssistiveDevice = f.AssistiveDevice
	if f.AssistiveDevice == "other" {
		input.OtherAssistiveDevice = strings.TrimSpace(f.OtherAssistiveDevice)
	}
	input.IssueTypes = f.IssueTypes
	if f.hasIssueType("other") {
		input.OtherIssueType = strings.TrimSpace(f.OtherIssueType)
	}
	input.RequestType = f.RequestType
	if f.RequestType == "other" {
		input.OtherRequest = strings.TrimSpace(f.OtherRequest)
	}
	return input
}
