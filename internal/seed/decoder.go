package seed

import (
	"context"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/psds-microservice/employee-seed/internal/errors"
)

// Decoder читает CSV построчно: первая строка — заголовок, остальные сопоставляются с ним по позиции
type Decoder struct {
	delimiter rune
	strict    bool
}

// NewDecoder создаёт декодер. delimiter == 0 означает запятую.
func NewDecoder(delimiter rune, strict bool) *Decoder {
	if delimiter == 0 {
		delimiter = ','
	}
	return &Decoder{delimiter: delimiter, strict: strict}
}

// Decode вызывает fn для каждой строки данных в порядке файла. Ошибки чтения и разбора
// возвращаются как *errors.ReadError; ошибка fn возвращается как есть.
func (d *Decoder) Decode(ctx context.Context, r io.Reader, path string, fn func(Record) error) error {
	cr := csv.NewReader(r)
	cr.Comma = d.delimiter
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return readError(path, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	if d.strict {
		if err := checkHeader(header); err != nil {
			return &errors.ReadError{Path: path, Line: 1, Err: err}
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		row, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return readError(path, err)
		}
		line, _ := cr.FieldPos(0)

		if d.strict && len(row) < len(header) {
			return &errors.ReadError{
				Path: path,
				Line: line,
				Err:  fmt.Errorf("%w: %q", errors.ErrMissingField, header[len(row)]),
			}
		}

		fields := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				fields[name] = row[i]
			}
		}
		if err := fn(Record{Line: line, Fields: fields}); err != nil {
			return err
		}
	}
}

func checkHeader(header []string) error {
	seen := make(map[string]struct{}, len(header))
	for _, h := range header {
		seen[h] = struct{}{}
	}
	for _, c := range columns {
		if _, ok := seen[c.header]; !ok {
			return fmt.Errorf("%w: header %q", errors.ErrMissingField, c.header)
		}
	}
	return nil
}

func readError(path string, err error) error {
	var pe *csv.ParseError
	if stderrors.As(err, &pe) {
		return &errors.ReadError{Path: path, Line: pe.Line, Err: pe.Err}
	}
	return &errors.ReadError{Path: path, Err: err}
}
