package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Wire shapes for the document's game bodies. The top-level object is
// marshalled by hand so game order survives the round trip.
type gameDoc struct {
	Difficulties []string        `json:"difficulties,omitempty"`
	RecordTypes  []recordTypeDoc `json:"record_types,omitempty"`
	Records      []recordDoc     `json:"records,omitempty"`
}

type recordTypeDoc struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	DisplayName string `json:"display_name"`
	Description string `json:"description,omitempty"`
}

type recordDoc struct {
	RecordType      string   `json:"record_type"`
	Date            string   `json:"date"`
	Description     string   `json:"description,omitempty"`
	Screenshot      string   `json:"screenshot,omitempty"`
	Difficulty      string   `json:"difficulty,omitempty"`
	DurationSeconds *float64 `json:"duration_seconds,omitempty"`
	Value           *float64 `json:"value,omitempty"`
}

// MarshalJSON serializes the ledger to the document shape, preserving game
// order. Re-validating the output yields an equal ledger.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range l.Games {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(g.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		body, err := json.Marshal(encodeGame(g))
		if err != nil {
			return nil, fmt.Errorf("encoding game %q: %w", g.Name, err)
		}
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// EncodeIndent serializes the ledger as indented JSON suitable for writing
// back to a records file.
func (l *Ledger) EncodeIndent() ([]byte, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func encodeGame(g Game) gameDoc {
	doc := gameDoc{Difficulties: g.Difficulties}
	for _, rt := range g.RecordTypes {
		doc.RecordTypes = append(doc.RecordTypes, recordTypeDoc{
			ID:          rt.ID,
			Kind:        string(rt.Kind),
			DisplayName: rt.DisplayName,
			Description: rt.Description,
		})
	}
	for _, r := range g.Records {
		doc.Records = append(doc.Records, encodeRecord(r))
	}
	return doc
}

func encodeRecord(r Record) recordDoc {
	base := r.Entry.Base()
	doc := recordDoc{
		RecordType:  r.TypeID,
		Date:        FormatDate(base.Date),
		Description: base.Description,
		Screenshot:  base.Screenshot,
	}
	switch e := r.Entry.(type) {
	case CompletedEntry:
	case CompletedAtDifficultyEntry:
		doc.Difficulty = e.Difficulty
	case TimeEntry:
		seconds := e.Duration.Seconds()
		doc.DurationSeconds = &seconds
	case ScoreEntry:
		value := e.Value
		doc.Value = &value
	}
	return doc
}
