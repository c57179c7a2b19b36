package model

// ReportEntry lists the violations found on one staged transaction.
// Indice is positional and only meaningful for the report it came from;
// Identificador is the stable key.
type ReportEntry struct {
	Indice        int         `json:"indice"`
	Identificador string      `json:"identificador"`
	Transacao     Transaction `json:"transacao"`
	Erros         []string    `json:"erros"`
}

// Report is the outcome of validating a whole batch.
// Geral holds batch-level problems that belong to no single item.
type Report struct {
	Valido bool          `json:"valido"`
	Erros  []ReportEntry `json:"erros"`
	Geral  []string      `json:"geral,omitempty"`
}

// ErrorCount returns the number of individual violations in the report.
func (r Report) ErrorCount() int {
	n := len(r.Geral)
	for _, e := range r.Erros {
		n += len(e.Erros)
	}
	return n
}
