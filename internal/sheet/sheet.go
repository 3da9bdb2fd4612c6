// Package sheet provides row-range access to the registration table.
// Ranges use A1 notation without the tab prefix ("A2:J", "A5:J5", "J7");
// the backend scopes them to its own tab or table.
package sheet

// Values is the minimal surface of the spreadsheet values API the store
// needs. No transactions, no indexes: callers scan.
type Values interface {
	// Get returns the populated cells in the range, row-major. Trailing
	// empty cells of a row may be omitted, as the Sheets API does.
	Get(rng string) ([][]string, error)
	// Update overwrites cells starting at the top-left of the range.
	Update(rng string, values [][]string) error
	// Append adds rows after the last populated row of the range.
	Append(rng string, values [][]string) error
}

// Unavailable is a Values that fails every call with the error observed at
// startup. It lets the process come up with a broken sheet config; only the
// store-backed admin commands surface the error.
type Unavailable struct {
	Err error
}

func (u Unavailable) Get(string) ([][]string, error)  { return nil, u.Err }
func (u Unavailable) Update(string, [][]string) error { return u.Err }
func (u Unavailable) Append(string, [][]string) error { return u.Err }
