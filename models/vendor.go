// models/vendor.go
package models

// VendorRegistration is the payload assembled across the registration wizard
// and submitted to the upstream in one call.
type VendorRegistration struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	BusinessName string `json:"businessName"`
	Description  string `json:"description"`
	WebsiteURL   string `json:"websiteUrl,omitempty"`

	Address1  string `json:"address1"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	Pincode   string `json:"pincode"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// Vendor is the upstream record created on successful registration.
type Vendor struct {
	ID string `json:"id"`
	VendorRegistration
}

// Wizard step names, in order. Each must be completed before Submit.
const (
	WizardStepProfile  = "profile"
	WizardStepBusiness = "business"
	WizardStepAddress  = "address"
)

// WizardSteps lists the registration steps in the order they are presented.
var WizardSteps = []string{WizardStepProfile, WizardStepBusiness, WizardStepAddress}

// WizardState tracks a session's progress through vendor registration.
type WizardState struct {
	Step      string             `json:"step"`
	Completed map[string]bool    `json:"completed"`
	Draft     VendorRegistration `json:"draft"`
}

// NewWizardState returns an empty wizard positioned at the first step.
func NewWizardState() *WizardState {
	return &WizardState{
		Step:      WizardStepProfile,
		Completed: make(map[string]bool),
	}
}

// Complete reports whether every step has been saved.
func (w *WizardState) Complete() bool {
	for _, step := range WizardSteps {
		if !w.Completed[step] {
			return false
		}
	}
	return true
}

// ImageMeta describes a vendor-uploaded listing image.
type ImageMeta struct {
	ID         string `json:"id"`
	ActivityID string `json:"activityId"`
	Path       string `json:"path"`
	SortOrder  int    `json:"sortOrder"`
}
