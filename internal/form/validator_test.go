package form_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/craviont/craviont-site-api/internal/form"
)

func validContact() form.Values {
	return form.Values{
		form.FieldFullName: "Alex Rivera",
		form.FieldEmail:    "alex@company.com",
		form.FieldPhone:    "9199999999",
		form.FieldMessage:  "Need a site",
	}
}

func validServiceRequest() form.Values {
	return form.Values{
		form.FieldName:        "Alex Rivera",
		form.FieldEmail:       "alex@company.com",
		form.FieldPhone:       "9199999999",
		form.FieldRequirement: "Penetration test for our web app",
		form.FieldService:     "Penetration testing",
	}
}

func TestValidateContactDefaultsCurrency(t *testing.T) {
	v := form.NewValidator()

	record, errs := v.ValidateContact(validContact())
	require.Nil(t, errs)
	require.Equal(t, form.KindContact, record.Kind)
	require.Equal(t, "USD", record.Field(form.FieldCurrency))

	vars := record.TemplateVariables()
	require.Equal(t, map[string]string{
		"name":     "Alex Rivera",
		"email":    "alex@company.com",
		"phone":    "9199999999",
		"currency": "USD",
		"company":  "",
		"budget":   "",
		"message":  "Need a site",
	}, vars)
}

func TestValidateContactKeepsSelectedCurrencyAndOptionalFields(t *testing.T) {
	values := validContact()
	values[form.FieldCurrency] = "INR"
	values[form.FieldCompany] = "Acme"
	values[form.FieldBudget] = "anything <b>goes</b>"

	record, errs := form.NewValidator().ValidateContact(values)
	require.Nil(t, errs)
	require.Equal(t, "INR", record.Field(form.FieldCurrency))
	require.Equal(t, "Acme", record.Field(form.FieldCompany))
	require.Equal(t, "anything <b>goes</b>", record.Field(form.FieldBudget))
}

func TestValidateContactRequiredFieldMessages(t *testing.T) {
	cases := map[string]string{
		form.FieldFullName: "Name is required",
		form.FieldEmail:    "Please enter a valid email address",
		form.FieldPhone:    "Please enter a valid phone number",
		form.FieldMessage:  "Message is required",
	}

	v := form.NewValidator()
	for field, message := range cases {
		t.Run(field, func(t *testing.T) {
			values := validContact()
			values[field] = ""

			_, errs := v.ValidateContact(values)
			require.Equal(t, form.ErrorMap{field: message}, errs)
		})
	}
}

func TestValidateServiceRequestRequiredFieldMessages(t *testing.T) {
	cases := map[string]string{
		form.FieldName:        "Name is required",
		form.FieldEmail:       "Invalid email address",
		form.FieldPhone:       "Valid contact number is required",
		form.FieldRequirement: "Requirement is required",
	}

	v := form.NewValidator()
	for field, message := range cases {
		t.Run(field, func(t *testing.T) {
			values := validServiceRequest()
			delete(values, field)

			_, errs := v.ValidateServiceRequest(values)
			require.Equal(t, form.ErrorMap{field: message}, errs)
		})
	}
}

func TestValidateReportsEveryInvalidField(t *testing.T) {
	v := form.NewValidator()

	_, errs := v.ValidateContact(form.Values{form.FieldEmail: "not-an-email", form.FieldPhone: "123"})
	require.Equal(t, []string{form.FieldEmail, form.FieldFullName, form.FieldMessage, form.FieldPhone}, errs.Fields())

	_, errs = v.ValidateServiceRequest(form.Values{})
	require.Equal(t, []string{form.FieldEmail, form.FieldName, form.FieldPhone, form.FieldRequirement}, errs.Fields())
}

func TestValidatePhoneLength(t *testing.T) {
	v := form.NewValidator()

	for length := 1; length < 10; length++ {
		values := validContact()
		values[form.FieldPhone] = strings.Repeat("9", length)
		_, errs := v.ValidateContact(values)
		require.Contains(t, errs, form.FieldPhone, "length %d", length)
	}

	for _, phone := range []string{"9199999999", "+91 99999 99999"} {
		values := validServiceRequest()
		values[form.FieldPhone] = phone
		_, errs := v.ValidateServiceRequest(values)
		require.Nil(t, errs, phone)
	}
}

func TestValidateEmailSyntax(t *testing.T) {
	v := form.NewValidator()

	for _, email := range []string{"alex", "alex.company.com", "alex@", "@company.com"} {
		values := validContact()
		values[form.FieldEmail] = email
		_, errs := v.ValidateContact(values)
		require.Equal(t, "Please enter a valid email address", errs[form.FieldEmail], email)
	}
}

func TestValidateServiceLabelIsNotValidated(t *testing.T) {
	values := validServiceRequest()
	values[form.FieldService] = ""

	record, errs := form.NewValidator().ValidateServiceRequest(values)
	require.Nil(t, errs)
	require.Equal(t, "", record.ServiceLabel())
	require.Contains(t, record.TemplateVariables(), "service")
}

func TestValidateUnknownKind(t *testing.T) {
	_, errs := form.NewValidator().Validate(form.Kind("newsletter"), form.Values{})
	require.Contains(t, errs, "form")
}

func TestValidationErrorMatchesSentinel(t *testing.T) {
	err := error(&form.ValidationError{Fields: form.ErrorMap{form.FieldEmail: "Invalid email address"}})
	require.True(t, errors.Is(err, form.ErrValidation))
	require.Contains(t, err.Error(), form.FieldEmail)
}

func TestParseKind(t *testing.T) {
	kind, err := form.ParseKind("service-request")
	require.NoError(t, err)
	require.Equal(t, form.KindServiceRequest, kind)

	kind, err = form.ParseKind("Contact")
	require.NoError(t, err)
	require.Equal(t, form.KindContact, kind)

	_, err = form.ParseKind("newsletter")
	require.Error(t, err)
}
