package timetable

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"
)

// LoadRows reads the timetable source into raw rows. The source is either a
// local file path or an http(s) URL; the format is picked from the
// extension: .csv, .xlsx, or .html/.htm. Remote sources and parsed local
// files go through the disk cache so repeated invocations skip the parse.
func LoadRows(source string) ([]Row, error) {
	if isURL(source) {
		return loadRemote(source)
	}
	return loadLocal(source)
}

func isURL(source string) bool {
	u, err := url.Parse(source)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

func loadLocal(path string) ([]Row, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read timetable %s: %w", path, err)
	}

	if rows, ok := readCache(path, info.ModTime()); ok {
		return rows, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read timetable %s: %w", path, err)
	}
	defer f.Close()

	rows, err := parseByExtension(path, f)
	if err != nil {
		return nil, err
	}

	writeCache(path, info.ModTime(), rows)
	return rows, nil
}

func loadRemote(source string) ([]Row, error) {
	if rows, ok := readRemoteCache(source); ok {
		return rows, nil
	}

	client := NewClient()
	body, err := client.Fetch(source)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	u, _ := url.Parse(source)
	rows, err := parseByExtension(u.Path, body)
	if err != nil {
		return nil, err
	}

	writeRemoteCache(source, rows)
	return rows, nil
}

func parseByExtension(path string, r io.Reader) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return parseXLSX(r)
	case ".html", ".htm":
		return parseHTML(r)
	case ".csv", "":
		return parseCSV(r)
	default:
		return nil, fmt.Errorf("unsupported timetable format %q (want .csv, .xlsx or .html)", filepath.Ext(path))
	}
}

// parseCSV reads the delimited export. Rows have varying widths, so the
// per-record field count check is disabled, and fully blank lines are
// dropped the way the original spreadsheet export produces them.
func parseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed CSV: %w", err)
		}
		if isBlankRecord(record) {
			continue
		}
		rows = append(rows, Row(record))
	}
	return rows, nil
}

// parseXLSX reads the first sheet of a native spreadsheet file.
func parseXLSX(r io.Reader) ([]Row, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("malformed XLSX: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("XLSX file has no sheets")
	}

	records, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %s: %w", sheets[0], err)
	}

	var rows []Row
	for _, record := range records {
		if isBlankRecord(record) {
			continue
		}
		rows = append(rows, Row(record))
	}
	return rows, nil
}

// parseHTML reads a "Save as Web Page" export: the first <table> in the
// document, one Row per <tr>, cell text from <td>/<th>.
func parseHTML(r io.Reader) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("malformed HTML: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no <table> found in HTML timetable")
	}

	var rows []Row
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		var record []string
		tr.Find("td, th").Each(func(j int, cell *goquery.Selection) {
			record = append(record, strings.TrimSpace(cell.Text()))
		})
		if !isBlankRecord(record) {
			rows = append(rows, Row(record))
		}
	})
	return rows, nil
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
