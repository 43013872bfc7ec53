package model

// AccountKind is the account type decoded from the first character of the
// legacy gebruikersnaam column.
type AccountKind int

const (
	// KindUnknown covers every tag that is neither 'g' nor 'e'. Such rows
	// never produce a transfer.
	KindUnknown AccountKind = iota
	// KindGewis is a GEWIS-linked account; the digits after the tag are an
	// external member identifier (gewisId).
	KindGewis
	// KindExternal is an externally managed account; the row's own id is the
	// target user identifier.
	KindExternal
)

func (k AccountKind) String() string {
	switch k {
	case KindGewis:
		return "gewis"
	case KindExternal:
		return "external"
	}
	return "unknown"
}

// LegacyAccount is one row of the SuSOS gebruiker table, read-only input for
// the transfer generator.
type LegacyAccount struct {
	ID      int
	Label   string
	Balance float64
	Fine    float64
}

// Kind decodes the type tag once at the boundary so the rest of the pipeline
// never re-inspects the raw label.
func (a LegacyAccount) Kind() AccountKind {
	if a.Label == "" {
		return KindUnknown
	}
	switch a.Label[0] {
	case 'g':
		return KindGewis
	case 'e':
		return KindExternal
	}
	return KindUnknown
}

// Number returns the account number text, i.e. the label with its leading
// type tag stripped.
func (a LegacyAccount) Number() string {
	if a.Label == "" {
		return ""
	}
	return a.Label[1:]
}
