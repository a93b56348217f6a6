package entity

// Patient is a registered patient. CPF is the authoritative natural key;
// email is an alternate lookup key and must stay unique across patients.
type Patient struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	CPF   string `json:"cpf"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Merge overwrites the patient's fields with the non-empty fields of in.
// The ID and CPF are never touched.
func (p *Patient) Merge(in Patient) {
	if in.Name != "" {
		p.Name = in.Name
	}
	if in.Email != "" {
		p.Email = in.Email
	}
	if in.Phone != "" {
		p.Phone = in.Phone
	}
}
