package inspect

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/xuri/excelize/v2"
)

const minColumns = 2

func checkWorkbook(r io.ReadSeeker) (err error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return fmt.Errorf("file is not a readable workbook: %w", err)
	}
	defer func() { err = errors.Join(err, wb.Close()) }()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return errors.New("workbook has no sheets")
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	for _, row := range rows {
		if countFilled(row) == 0 {
			continue
		}
		if countFilled(row) < minColumns {
			return fmt.Errorf("sheet %q header has fewer than %d columns", sheets[0], minColumns)
		}
		return nil
	}

	return fmt.Errorf("sheet %q is empty", sheets[0])
}

func checkCSV(r io.ReadSeeker) error {
	br := bufio.NewReader(r)

	first, err := br.Peek(4 << 10)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return fmt.Errorf("failed to read CSV: %w", err)
	}

	reader := csv.NewReader(br)
	reader.Comma = sniffDelimiter(string(first))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	dec, err := csvutil.NewDecoder(reader)
	if errors.Is(err, io.EOF) {
		return errors.New("CSV file is empty")
	}
	if err != nil {
		return fmt.Errorf("failed to read CSV header: %w", err)
	}

	if countFilled(dec.Header()) < minColumns {
		return fmt.Errorf("CSV header has fewer than %d columns", minColumns)
	}

	return nil
}

// sniffDelimiter picks the separator that occurs most often in the first line.
func sniffDelimiter(sample string) rune {
	line, _, _ := strings.Cut(sample, "\n")

	best, bestCount := ',', strings.Count(line, ",")
	for _, d := range []rune{';', '\t'} {
		if n := strings.Count(line, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}

	return best
}

func countFilled(cells []string) int {
	n := 0
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			n++
		}
	}
	return n
}
