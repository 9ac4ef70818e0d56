package dto

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/aliskhannn/donorlink/internal/model"
)

const dateLayout = "2006-01-02"

var (
	alphaSpace = regexp.MustCompile(`^[a-zA-Z\s]+$`)

	// now is replaced in tests.
	now = time.Now
)

// CreateRequest is the body of POST /api/requests.
type CreateRequest struct {
	PatientName     string  `json:"patient_name" validate:"required,min=2,max=100,alphaspace"`
	OrganNeeded     string  `json:"organ_needed" validate:"required,oneof=blood kidney liver heart lung bone_marrow"`
	BloodTypeNeeded string  `json:"blood_type_needed" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Urgency         string  `json:"urgency" validate:"required,oneof=low medium high critical"`
	City            string  `json:"city" validate:"required,min=2,max=100,alphaspace"`
	PatientAge      *int    `json:"patient_age" validate:"omitempty,min=0,max=120"`
	Description     *string `json:"description" validate:"omitempty,max=1000"`
	RequiredBy      *string `json:"required_by" validate:"omitempty,datetime=2006-01-02,notpast"`
}

// Normalize trims the free text fields.
func (r *CreateRequest) Normalize() {
	r.PatientName = strings.TrimSpace(r.PatientName)
	r.City = strings.TrimSpace(r.City)

	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		r.Description = &d
	}
}

// ToModel converts a validated request.
func (r CreateRequest) ToModel() (model.NewRequest, error) {
	req := model.NewRequest{
		PatientName:     r.PatientName,
		PatientAge:      r.PatientAge,
		OrganNeeded:     r.OrganNeeded,
		BloodTypeNeeded: r.BloodTypeNeeded,
		Urgency:         r.Urgency,
		Description:     r.Description,
		City:            r.City,
	}

	if r.RequiredBy != nil {
		t, err := time.Parse(dateLayout, *r.RequiredBy)
		if err != nil {
			return model.NewRequest{}, errors.New("Please enter a valid date")
		}
		req.RequiredBy = &t
	}

	return req, nil
}

// UpdateStatusRequest is the body of POST /api/matches/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted declined"`
}

// NewValidator returns a validator with the alphaspace and notpast rules
// registered.
func NewValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		return alphaSpace.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("notpast", func(fl validator.FieldLevel) bool {
		d, err := time.Parse(dateLayout, fl.Field().String())
		if err != nil {
			return false
		}

		today := now().Format(dateLayout)
		return d.Format(dateLayout) >= today
	})

	return v
}

var messages = map[string]string{
	"PatientName.required":   "Patient name must be at least 2 characters",
	"PatientName.min":        "Patient name must be at least 2 characters",
	"PatientName.max":        "Patient name must be less than 100 characters",
	"PatientName.alphaspace": "Patient name can only contain letters and spaces",
	"OrganNeeded":            "Please select a valid organ/donation type",
	"BloodTypeNeeded":        "Please select a valid blood type",
	"Urgency":                "Please select a valid urgency level",
	"City.required":          "City must be at least 2 characters",
	"City.min":               "City must be at least 2 characters",
	"City.max":               "City must be less than 100 characters",
	"City.alphaspace":        "City can only contain letters and spaces",
	"PatientAge.min":         "Age must be at least 0",
	"PatientAge.max":         "Age must be less than 120",
	"Description":            "Description must be less than 1000 characters",
	"RequiredBy.datetime":    "Please enter a valid date",
	"RequiredBy.notpast":     "Required date must be in the future",
	"Status":                 "status must be accepted or declined",
}

// Describe turns a validation error into the messages shown on the forms.
func Describe(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}

	out := make([]string, 0, len(errs))
	for _, fe := range errs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg, ok = messages[fe.Field()]
		}
		if !ok {
			msg = fe.Error()
		}
		out = append(out, msg)
	}

	return strings.Join(out, "; ")
}
