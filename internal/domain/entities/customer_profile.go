package entities

// CustomerProfile is a customer's contact card inferred from job records.
// It is never stored on its own.
type CustomerProfile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ProjectCustomers derives one profile per distinct CustomerID, walking jobs
// in order. The first job seen for a customer supplies the contact fields;
// later jobs with the same id never overwrite them.
func ProjectCustomers(jobs []Job) []CustomerProfile {
	seen := make(map[string]struct{}, len(jobs))
	out := make([]CustomerProfile, 0, len(jobs))
	for _, j := range jobs {
		if _, ok := seen[j.CustomerID]; ok {
			continue
		}
		seen[j.CustomerID] = struct{}{}
		out = append(out, CustomerProfile{
			ID:      j.CustomerID,
			Name:    j.CustomerName,
			Email:   j.CustomerEmail,
			Phone:   j.CustomerPhone,
			Address: j.CustomerAddress,
		})
	}
	return out
}
