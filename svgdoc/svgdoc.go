// Package svgdoc extracts the path data of SVG documents.
package svgdoc

import (
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"

	"github.com/tdewolff/pathdata"
)

// Element is a path element of an SVG document.
type Element struct {
	ID   string
	D    string              // path data as written in the document
	Path pathdata.PathVector // path data as far as it could be read

	// Err is the condition that stopped reading the path data, positioned in the document. Path still holds
	// everything read before it.
	Err error
}

// Paths returns the path elements of an SVG document in document order. Path data is read best-effort and never
// fails, only XML errors are returned.
func Paths(r io.Reader) ([]Element, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	l := xml.NewLexer(z)
	elems := []Element{}
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return elems, l.Err()
			}
			return elems, nil
		case xml.StartTagToken:
			attrs := map[string]string{}
			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				if 2 <= len(val) && (val[0] == '"' || val[0] == '\'') {
					val = val[1 : len(val)-1]
				}
				attrs[string(l.Text())] = string(val)
			}

			tag := string(data[1:])
			if i := strings.IndexByte(tag, ':'); i != -1 {
				tag = tag[i+1:] // namespaced, as in svg:path
			}
			d, ok := attrs["d"]
			if tag != "path" || !ok {
				continue
			}
			pv, err := pathdata.ParseStrict(d)
			elem := Element{
				ID:   attrs["id"],
				D:    d,
				Path: pv,
			}
			if err != nil {
				elem.Err = parse.NewErrorLexer(z, "path %q: %v", elem.ID, err)
			}
			elems = append(elems, elem)
		}
	}
}
