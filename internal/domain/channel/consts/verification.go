package consts

// VerificationLabels is the closed set of channel verification badge types
// with their display labels.
var VerificationLabels = map[string]string{
	"government": "Государственный",
	"political":  "Политический",
	"medical":    "Медицинский",
	"news":       "Новостной",
}

// IsValidVerificationType reports whether t belongs to the closed set
func IsValidVerificationType(t string) bool {
	_, ok := VerificationLabels[t]
	return ok
}

// LabelFor returns the display label for a verification type, nil for none
func LabelFor(t *string) *string {
	if t == nil {
		return nil
	}
	label, ok := VerificationLabels[*t]
	if !ok {
		return nil
	}
	return &label
}
