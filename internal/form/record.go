package form

// Record is a submission that passed validation. It is built fresh for every attempt and is not
// retained after dispatch.
type Record struct {
	Kind   Kind
	fields Values
}

// Field returns the normalized value of a field.
func (r Record) Field(name string) string {
	return r.fields[name]
}

// Email returns the submitter's email address.
func (r Record) Email() string {
	return r.fields[FieldEmail]
}

// ServiceLabel returns the selected service of an inquiry, empty for contact submissions.
func (r Record) ServiceLabel() string {
	return r.fields[FieldService]
}

// TemplateVariables maps the record onto the email template variable names.
func (r Record) TemplateVariables() map[string]string {
	switch r.Kind {
	case KindContact:
		return map[string]string{
			"name":     r.fields[FieldFullName],
			"email":    r.fields[FieldEmail],
			"phone":    r.fields[FieldPhone],
			"currency": r.fields[FieldCurrency],
			"company":  r.fields[FieldCompany],
			"budget":   r.fields[FieldBudget],
			"message":  r.fields[FieldMessage],
		}
	case KindServiceRequest:
		return map[string]string{
			"name":        r.fields[FieldName],
			"email":       r.fields[FieldEmail],
			"phone":       r.fields[FieldPhone],
			"requirement": r.fields[FieldRequirement],
			"service":     r.fields[FieldService],
		}
	default:
		return map[string]string{}
	}
}
