package ledger

import "fmt"

// RecordType declares a category of achievement tracking for a game, e.g.
// "any% speedrun" as a fastest_time kind.
type RecordType struct {
	ID          string
	Kind        Kind
	DisplayName string
	Description string
}

// Record pairs one concrete entry with the record type it conforms to.
type Record struct {
	TypeID string
	Entry  Entry
}

// Game is a tracked title: a name, optional difficulty labels, declared
// record types (unique by id), and the record entries conforming to them.
type Game struct {
	Name         string
	Difficulties []string
	RecordTypes  []RecordType
	Records      []Record
}

// RecordTypeByID returns the declared record type with the given id, or nil.
func (g *Game) RecordTypeByID(id string) *RecordType {
	for i := range g.RecordTypes {
		if g.RecordTypes[i].ID == id {
			return &g.RecordTypes[i]
		}
	}
	return nil
}

// HasDifficulty reports whether the game declares the given difficulty label.
func (g *Game) HasDifficulty(label string) bool {
	for _, d := range g.Difficulties {
		if d == label {
			return true
		}
	}
	return false
}

// AddRecord appends a record after checking it against the game's
// declarations: the record type must exist, the entry variant must match
// the declared kind, and a difficulty reference must resolve.
func (g *Game) AddRecord(r Record) error {
	rt := g.RecordTypeByID(r.TypeID)
	if rt == nil {
		return fmt.Errorf("game %q declares no record type %q", g.Name, r.TypeID)
	}
	if r.Entry.Variant() != rt.Kind.Variant() {
		return fmt.Errorf("entry shape %s does not match record type %q of kind %s",
			r.Entry.Variant(), rt.ID, rt.Kind)
	}
	if e, ok := r.Entry.(CompletedAtDifficultyEntry); ok && !g.HasDifficulty(e.Difficulty) {
		return fmt.Errorf("game %q declares no difficulty %q", g.Name, e.Difficulty)
	}
	g.Records = append(g.Records, r)
	return nil
}

// Ledger is the top-level validated document: an ordered collection of
// games with unique names.
type Ledger struct {
	Games []Game
}

// GameByName returns the game with the given name, or nil.
func (l *Ledger) GameByName(name string) *Game {
	for i := range l.Games {
		if l.Games[i].Name == name {
			return &l.Games[i]
		}
	}
	return nil
}

// AddGame appends a game, rejecting duplicate names.
func (l *Ledger) AddGame(g Game) error {
	if _, err := ParseIdentifier(g.Name); err != nil {
		return fmt.Errorf("game name: %w", err)
	}
	if l.GameByName(g.Name) != nil {
		return fmt.Errorf("game %q already exists", g.Name)
	}
	l.Games = append(l.Games, g)
	return nil
}

// summarize counts the ledger's contents for reporting.
func (l *Ledger) summarize() *Summary {
	s := &Summary{Games: len(l.Games)}
	for _, g := range l.Games {
		s.RecordTypes += len(g.RecordTypes)
		s.Records += len(g.Records)
	}
	return s
}
