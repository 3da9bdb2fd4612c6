package sheet

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Google reads and writes one tab of a Google spreadsheet through the
// values API with service-account credentials.
type Google struct {
	svc           *sheets.Service
	spreadsheetID string
	tab           string
}

func NewGoogle(ctx context.Context, credsJSON, spreadsheetID, tab string) (*Google, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON([]byte(credsJSON)),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Google{svc: svc, spreadsheetID: spreadsheetID, tab: tab}, nil
}

func (g *Google) rng(a1 string) string {
	return g.tab + "!" + a1
}

func (g *Google) Get(a1 string) ([][]string, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, g.rng(a1)).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets get %s: %w", a1, err)
	}
	out := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		r := make([]string, 0, len(row))
		for _, cell := range row {
			r = append(r, fmt.Sprint(cell))
		}
		out = append(out, r)
	}
	return out, nil
}

func (g *Google) Update(a1 string, values [][]string) error {
	_, err := g.svc.Spreadsheets.Values.
		Update(g.spreadsheetID, g.rng(a1), valueRange(values)).
		ValueInputOption("RAW").
		Do()
	if err != nil {
		return fmt.Errorf("sheets update %s: %w", a1, err)
	}
	return nil
}

func (g *Google) Append(a1 string, values [][]string) error {
	_, err := g.svc.Spreadsheets.Values.
		Append(g.spreadsheetID, g.rng(a1), valueRange(values)).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Do()
	if err != nil {
		return fmt.Errorf("sheets append %s: %w", a1, err)
	}
	return nil
}

func valueRange(values [][]string) *sheets.ValueRange {
	vr := &sheets.ValueRange{Values: make([][]interface{}, len(values))}
	for i, row := range values {
		out := make([]interface{}, len(row))
		for j, cell := range row {
			out[j] = cell
		}
		vr.Values[i] = out
	}
	return vr
}
