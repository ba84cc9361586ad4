package scad

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"html"
	"io"

	"github.com/pkg/errors"

	"github.com/chassiskit/romibase/geom"
)

// WriteKeysCSV renders the sorted feature keys as a CSV table with a
// header row.
func WriteKeysCSV(w io.Writer, keys []geom.Key) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(geom.KeyHeader()); err != nil {
		return errors.Wrap(err, "scad: write csv header")
	}
	for _, key := range keys {
		if err := cw.Write(key.Record()); err != nil {
			return errors.Wrapf(err, "scad: write csv row %q", key.Name)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "scad: flush csv")
}

// WriteKeysHTML renders the sorted feature keys as a standalone HTML
// page holding one table, titled as given.
func WriteKeysHTML(w io.Writer, keys []geom.Key, title string) error {
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&buf, " <title>%s</title>\n", html.EscapeString(title))
	buf.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&buf, " <h1>%s</h1>\n", html.EscapeString(title))
	buf.WriteString(" <table border=\"1\">\n  <tr>\n")
	for _, header := range geom.KeyHeader() {
		fmt.Fprintf(&buf, "   <th>%s</th>\n", html.EscapeString(header))
	}
	buf.WriteString("  </tr>\n")
	for _, key := range keys {
		buf.WriteString("  <tr>\n")
		for _, field := range key.Record() {
			fmt.Fprintf(&buf, "   <td>%s</td>\n", html.EscapeString(field))
		}
		buf.WriteString("  </tr>\n")
	}
	buf.WriteString(" </table>\n</body>\n</html>\n")
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrapf(err, "scad: write html report %q", title)
	}
	return nil
}
