package content

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// LoadLibraryFile reads a JSON catalog of the form
//
//	{"hiragana": [{"id": "ka", "kana": "か", "romaji": ["ka"]}], "katakana": [...]}
//
// Malformed rows are skipped and logged, as are spellings the input cannot
// produce; a script missing from the file is left empty. Only an unreadable or syntactically invalid file is an error.
func LoadLibraryFile(path string, log logrus.FieldLogger) (Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Library{}, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ParseLibrary(data, log)
}

// ParseLibrary decodes catalog JSON, see LoadLibraryFile
func ParseLibrary(data []byte, log logrus.FieldLogger) (Library, error) {
	if !gjson.ValidBytes(data) {
		return Library{}, fmt.Errorf("catalog is not valid JSON")
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	var lib Library
	lib.Hiragana = parseScript(gjson.GetBytes(data, "hiragana"), Hiragana, log)
	lib.Katakana = parseScript(gjson.GetBytes(data, "katakana"), Katakana, log)
	return lib, nil
}

func parseScript(res gjson.Result, t Type, log logrus.FieldLogger) Catalog {
	if !res.Exists() || !res.IsArray() {
		return nil
	}

	var out Catalog
	seen := make(map[string]bool)
	idx := -1
	res.ForEach(func(_, v gjson.Result) bool {
		idx++
		id := strings.TrimSpace(v.Get("id").String())
		glyph := strings.TrimSpace(v.Get("kana").String())

		entry := log.WithFields(logrus.Fields{"script": t.String(), "index": idx})

		var romaji []string
		v.Get("romaji").ForEach(func(_, s gjson.Result) bool {
			sp := strings.ToLower(strings.TrimSpace(s.String()))
			switch {
			case sp == "":
			case !Typeable(sp):
				entry.WithFields(logrus.Fields{"id": id, "romaji": sp}).Warn("romaji cannot be typed, spelling dropped")
			default:
				romaji = append(romaji, sp)
			}
			return true
		})

		switch {
		case id == "" || glyph == "":
			entry.Warn("catalog row missing id or kana, skipped")
			return true
		case len(romaji) == 0:
			entry.WithField("id", id).Warn("catalog row has no typeable romaji, skipped")
			return true
		case seen[id]:
			entry.WithField("id", id).Warn("duplicate catalog id, skipped")
			return true
		}

		seen[id] = true
		out = append(out, Entry{ID: id, Kana: glyph, Romaji: romaji, Type: t})
		return true
	})
	return out
}
