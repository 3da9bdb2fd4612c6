package sheet

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Sqlite emulates the values API on a local table, for development and
// tests where no Google credentials exist. One table, one row per sheet
// row, cells stored as a JSON array.
type Sqlite struct {
	db *gorm.DB
}

type sheetRow struct {
	Num   int    `gorm:"primaryKey;column:num"`
	Cells string // JSON-encoded []string
}

func (sheetRow) TableName() string { return "sheet_rows" }

func OpenSqlite(path string) (*Sqlite, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_journal_mode=WAL&_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// SQLite works best with a single writer; cap the pool accordingly.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := db.AutoMigrate(&sheetRow{}); err != nil {
		return nil, err
	}
	return &Sqlite{db: db}, nil
}

// span is a parsed A1 range. Rows and columns are 1-based; endRow 0 means
// open-ended ("A2:J").
type span struct {
	startCol, startRow int
	endCol, endRow     int
}

func parseA1(a1 string) (span, error) {
	parse := func(ref string) (col, row int, err error) {
		i := 0
		for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
			col = col*26 + int(ref[i]-'A') + 1
			i++
		}
		if col == 0 {
			return 0, 0, fmt.Errorf("bad cell ref %q", ref)
		}
		if i == len(ref) {
			return col, 0, nil // column-only ref, e.g. "J" in "A2:J"
		}
		row, err = strconv.Atoi(ref[i:])
		if err != nil || row < 1 {
			return 0, 0, fmt.Errorf("bad cell ref %q", ref)
		}
		return col, row, nil
	}

	first, rest, hasRest := strings.Cut(a1, ":")
	sc, sr, err := parse(first)
	if err != nil {
		return span{}, err
	}
	if sr == 0 {
		return span{}, fmt.Errorf("range %q has no start row", a1)
	}
	if !hasRest {
		return span{startCol: sc, startRow: sr, endCol: sc, endRow: sr}, nil
	}
	ec, er, err := parse(rest)
	if err != nil {
		return span{}, err
	}
	return span{startCol: sc, startRow: sr, endCol: ec, endRow: er}, nil
}

func decodeCells(raw string) []string {
	var cells []string
	_ = json.Unmarshal([]byte(raw), &cells)
	return cells
}

func encodeCells(cells []string) string {
	b, _ := json.Marshal(cells)
	return string(b)
}

func (s *Sqlite) Get(a1 string) ([][]string, error) {
	sp, err := parseA1(a1)
	if err != nil {
		return nil, err
	}

	q := s.db.Where("num >= ?", sp.startRow)
	if sp.endRow > 0 {
		q = q.Where("num <= ?", sp.endRow)
	}
	var rows []sheetRow
	if err := q.Order("num asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells := decodeCells(r.Cells)
		lo, hi := sp.startCol-1, sp.endCol
		if lo > len(cells) {
			lo = len(cells)
		}
		if hi > len(cells) {
			hi = len(cells)
		}
		sel := cells[lo:hi]
		// the Sheets API omits trailing empty cells; match that
		for len(sel) > 0 && sel[len(sel)-1] == "" {
			sel = sel[:len(sel)-1]
		}
		out = append(out, sel)
	}
	// drop trailing fully-empty rows, again like the API
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return out, nil
}

func (s *Sqlite) Update(a1 string, values [][]string) error {
	sp, err := parseA1(a1)
	if err != nil {
		return err
	}
	for i, vals := range values {
		num := sp.startRow + i

		var r sheetRow
		err := s.db.Where("num = ?", num).First(&r).Error
		missing := err == gorm.ErrRecordNotFound
		if err != nil && !missing {
			return err
		}
		cells := decodeCells(r.Cells)
		for len(cells) < sp.startCol-1+len(vals) {
			cells = append(cells, "")
		}
		copy(cells[sp.startCol-1:], vals)

		r.Num = num
		r.Cells = encodeCells(cells)
		if missing {
			err = s.db.Create(&r).Error
		} else {
			err = s.db.Save(&r).Error
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Sqlite) Append(a1 string, values [][]string) error {
	sp, err := parseA1(a1)
	if err != nil {
		return err
	}

	var last struct{ Max int }
	if err := s.db.Model(&sheetRow{}).
		Select("COALESCE(MAX(num), 0) as max").
		Where("num >= ?", sp.startRow).
		Scan(&last).Error; err != nil {
		return err
	}
	next := last.Max + 1
	if next < sp.startRow {
		next = sp.startRow
	}

	for i, vals := range values {
		cells := make([]string, sp.startCol-1, sp.startCol-1+len(vals))
		cells = append(cells, vals...)
		r := sheetRow{Num: next + i, Cells: encodeCells(cells)}
		if err := s.db.Create(&r).Error; err != nil {
			return err
		}
	}
	return nil
}
