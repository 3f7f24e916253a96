package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Validate checks an untyped parsed document against the ledger invariants.
// Every structural, format, uniqueness, and referential error is collected;
// only a malformed outer shape short-circuits. The input node is never
// mutated.
func Validate(root *yaml.Node) *Result {
	return ValidateWithEntries(root, nil)
}

// ValidateBytes parses raw document bytes and validates them. JSON documents
// are accepted directly since JSON is a YAML subset; parsing through the
// YAML node API preserves line and column information for error reporting.
func ValidateBytes(data []byte) *Result {
	result := &Result{Valid: true}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		result.AddError(&ValidationError{
			Code:    CodeStructure,
			Message: fmt.Sprintf("failed to parse document: %v", err),
			Hint:    "Check the JSON syntax for errors",
		})
		return result
	}
	if node.Kind == 0 {
		result.AddError(&ValidationError{
			Code:    CodeStructure,
			Message: "document is empty",
			Hint:    "A records file must contain at least an empty object: {}",
		})
		return result
	}
	return Validate(&node)
}

// TaggedEntry is an externally-supplied record entry together with the game
// name and record-type id it claims to belong to.
type TaggedEntry struct {
	Game         string
	RecordTypeID string
	Entry        Entry
}

// ValidateWithEntries validates a document plus a set of externally-supplied
// tagged entries against the schema the document declares.
func ValidateWithEntries(root *yaml.Node, extra []TaggedEntry) *Result {
	result := &Result{Valid: true}

	mapping := getRootMapping(root)
	if mapping == nil {
		result.AddError(&ValidationError{
			Code:    CodeStructure,
			Line:    nodeLine(root),
			Message: "document root must be an object mapping game names to game bodies",
			Hint:    "The records file should be a JSON object keyed by game name",
		})
		return result
	}

	led := &Ledger{}
	seen := make(map[string]bool)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode := mapping.Content[i]
		bodyNode := mapping.Content[i+1]
		name := keyNode.Value

		if _, err := ParseIdentifier(name); err != nil {
			result.AddError(&ValidationError{
				Code:    CodeFormat,
				Line:    nodeLine(keyNode),
				Column:  nodeColumn(keyNode),
				Message: "game name must be a non-empty string",
			})
			continue
		}

		dup := seen[name]
		if dup {
			result.AddError(&ValidationError{
				Code:    CodeDuplicateGame,
				Path:    name,
				Line:    nodeLine(keyNode),
				Column:  nodeColumn(keyNode),
				Game:    name,
				Message: fmt.Sprintf("duplicate game name: %q", name),
				Hint:    "Game names must be unique within the ledger",
			})
		}
		seen[name] = true

		// Parse the body even for a duplicate so its own defects are still
		// reported; only the first occurrence joins the ledger.
		game := parseGame(name, bodyNode, result)
		if !dup {
			led.Games = append(led.Games, game)
		}
	}

	for i, te := range extra {
		validateTaggedEntry(led, i, te, result)
	}

	if result.Valid {
		result.Ledger = led
		result.Summary = led.summarize()
	}
	return result
}

// ValidateEntries checks externally-supplied tagged entries against an
// already-validated ledger and returns every referential error found.
func ValidateEntries(led *Ledger, entries []TaggedEntry) []*ValidationError {
	result := &Result{Valid: true}
	for i, te := range entries {
		validateTaggedEntry(led, i, te, result)
	}
	return result.Errors
}

func validateTaggedEntry(led *Ledger, index int, te TaggedEntry, result *Result) {
	path := fmt.Sprintf("entries[%d]", index)

	game := led.GameByName(te.Game)
	if game == nil {
		result.AddError(&ValidationError{
			Code:    CodeUnknownGame,
			Path:    path,
			Message: fmt.Sprintf("unknown game: %q", te.Game),
			Hint:    "The entry references a game the ledger does not declare",
		})
		return
	}

	rt := game.RecordTypeByID(te.RecordTypeID)
	if rt == nil {
		result.AddError(&ValidationError{
			Code:    CodeUnknownRecordType,
			Path:    path,
			Game:    te.Game,
			Message: fmt.Sprintf("game %q declares no record type %q", te.Game, te.RecordTypeID),
		})
		return
	}

	if te.Entry == nil {
		result.AddError(&ValidationError{
			Code:    CodeFormat,
			Path:    path,
			Game:    te.Game,
			Message: "entry is missing",
		})
		return
	}

	if te.Entry.Variant() != rt.Kind.Variant() {
		result.AddError(&ValidationError{
			Code:     CodeVariantMismatch,
			Path:     path,
			Game:     te.Game,
			Message:  fmt.Sprintf("entry shape does not match record type %q", rt.ID),
			Expected: string(rt.Kind),
			Actual:   string(te.Entry.Variant()),
		})
		return
	}

	if e, ok := te.Entry.(CompletedAtDifficultyEntry); ok && !game.HasDifficulty(e.Difficulty) {
		result.AddError(&ValidationError{
			Code:    CodeUnknownDifficulty,
			Path:    path,
			Game:    te.Game,
			Message: fmt.Sprintf("unknown difficulty: %q", e.Difficulty),
			Hint:    fmt.Sprintf("Game %q declares: %s", te.Game, strings.Join(game.Difficulties, ", ")),
		})
	}
}

// parseGame parses one game body, collecting every error rather than
// stopping at the first failure within the game.
func parseGame(name string, node *yaml.Node, result *Result) Game {
	game := Game{Name: name}

	if node.Kind != yaml.MappingNode {
		result.AddError(&ValidationError{
			Code:     CodeFormat,
			Path:     name,
			Line:     nodeLine(node),
			Column:   nodeColumn(node),
			Game:     name,
			Message:  "game body must be an object",
			Expected: "object",
			Actual:   nodeKindToString(node.Kind),
		})
		return game
	}

	parseDifficulties(&game, node, result)
	parseRecordTypes(&game, node, result)
	parseRecords(&game, node, result)

	return game
}

func parseDifficulties(game *Game, body *yaml.Node, result *Result) {
	node := findNode(body, "difficulties")
	if node == nil {
		return
	}
	path := game.Name + ".difficulties"
	if !expectKind(node, path, game.Name, yaml.SequenceNode, "array", result) {
		return
	}

	for i, item := range node.Content {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		label, ok := scalarString(item)
		if !ok || strings.TrimSpace(label) == "" {
			result.AddError(&ValidationError{
				Code:    CodeFormat,
				Path:    itemPath,
				Line:    nodeLine(item),
				Column:  nodeColumn(item),
				Game:    game.Name,
				Message: "difficulty must be a non-empty string",
			})
			continue
		}
		if game.HasDifficulty(label) {
			result.AddError(&ValidationError{
				Code:    CodeDuplicateDifficulty,
				Path:    itemPath,
				Line:    nodeLine(item),
				Column:  nodeColumn(item),
				Game:    game.Name,
				Message: fmt.Sprintf("duplicate difficulty: %q", label),
				Hint:    "Difficulty labels must be unique within a game",
			})
			continue
		}
		game.Difficulties = append(game.Difficulties, label)
	}
}

func parseRecordTypes(game *Game, body *yaml.Node, result *Result) {
	node := findNode(body, "record_types")
	if node == nil {
		return
	}
	path := game.Name + ".record_types"
	if !expectKind(node, path, game.Name, yaml.SequenceNode, "array", result) {
		return
	}

	for i, item := range node.Content {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		rt, ok := parseRecordType(game, itemPath, item, result)
		if !ok {
			continue
		}
		if game.RecordTypeByID(rt.ID) != nil {
			result.AddError(&ValidationError{
				Code:    CodeDuplicateRecordType,
				Path:    itemPath,
				Line:    nodeLine(item),
				Game:    game.Name,
				Message: fmt.Sprintf("duplicate record type id: %q", rt.ID),
				Hint:    "Record type ids must be unique within a game",
			})
			continue
		}
		if rt.Kind.RequiresDifficulty() && len(game.Difficulties) == 0 {
			result.AddError(&ValidationError{
				Code:    CodeDifficultyRequired,
				Path:    itemPath,
				Line:    nodeLine(item),
				Game:    game.Name,
				Message: fmt.Sprintf("record type %q tracks completion at difficulty, but game %q declares no difficulties", rt.ID, game.Name),
				Hint:    "Add a non-empty 'difficulties' list to the game",
			})
			// The declaration still joins the game so its records can be
			// checked; the game is already invalid either way.
		}
		game.RecordTypes = append(game.RecordTypes, rt)
	}
}

// parseRecordType parses one record-type declaration. Returns ok=false only
// when the id is unusable, since a declaration without an id cannot be
// addressed at all. A bad kind is reported but leaves the declaration in
// place with a zero Kind, so records referencing it resolve without
// cascading unknown-record-type errors; their kind-agreement checks are
// skipped.
func parseRecordType(game *Game, path string, node *yaml.Node, result *Result) (RecordType, bool) {
	var rt RecordType

	if node.Kind != yaml.MappingNode {
		result.AddError(&ValidationError{
			Code:     CodeFormat,
			Path:     path,
			Line:     nodeLine(node),
			Game:     game.Name,
			Message:  "record type must be an object",
			Expected: "object",
			Actual:   nodeKindToString(node.Kind),
		})
		return rt, false
	}

	ok := true

	idNode := findNode(node, "id")
	if id, valid := requireString(idNode, path+".id", game.Name, node, result); valid {
		rt.ID = id
	} else {
		ok = false
	}

	kindNode := findNode(node, "kind")
	if kindNode == nil {
		result.AddError(&ValidationError{
			Code:    CodeFormat,
			Path:    path + ".kind",
			Line:    nodeLine(node),
			Game:    game.Name,
			Message: "missing required field: kind",
		})
	} else {
		kind, err := ParseKind(kindNode.Value)
		if err != nil {
			result.AddError(&ValidationError{
				Code:     CodeUnknownKind,
				Path:     path + ".kind",
				Line:     nodeLine(kindNode),
				Column:   nodeColumn(kindNode),
				Game:     game.Name,
				Message:  fmt.Sprintf("unknown record kind: %q", kindNode.Value),
				Expected: "one of: " + strings.Join(ValidKinds(), ", "),
				Actual:   fmt.Sprintf("%q", kindNode.Value),
			})
		} else {
			rt.Kind = kind
		}
	}

	if name, valid := requireString(findNode(node, "display_name"), path+".display_name", game.Name, node, result); valid {
		rt.DisplayName = name
	}

	if descNode := findNode(node, "description"); descNode != nil {
		if desc, valid := scalarString(descNode); valid {
			rt.Description = desc
		} else {
			result.AddError(&ValidationError{
				Code:     CodeFormat,
				Path:     path + ".description",
				Line:     nodeLine(descNode),
				Game:     game.Name,
				Message:  "description must be a string",
				Expected: "string",
				Actual:   nodeKindToString(descNode.Kind),
			})
		}
	}

	return rt, ok
}

func parseRecords(game *Game, body *yaml.Node, result *Result) {
	node := findNode(body, "records")
	if node == nil {
		return
	}
	path := game.Name + ".records"
	if !expectKind(node, path, game.Name, yaml.SequenceNode, "array", result) {
		return
	}

	for i, item := range node.Content {
		parseRecord(game, fmt.Sprintf("%s[%d]", path, i), item, result)
	}
}

// parseRecord parses one record entry and cross-checks it against the
// game's declarations. The entry joins the game only when every check on it
// passed; the surrounding result keeps collecting regardless.
func parseRecord(game *Game, path string, node *yaml.Node, result *Result) {
	if node.Kind != yaml.MappingNode {
		result.AddError(&ValidationError{
			Code:     CodeFormat,
			Path:     path,
			Line:     nodeLine(node),
			Game:     game.Name,
			Message:  "record must be an object",
			Expected: "object",
			Actual:   nodeKindToString(node.Kind),
		})
		return
	}

	before := len(result.Errors)

	var rt *RecordType
	if typeID, valid := requireString(findNode(node, "record_type"), path+".record_type", game.Name, node, result); valid {
		rt = game.RecordTypeByID(typeID)
		if rt == nil {
			result.AddError(&ValidationError{
				Code:    CodeUnknownRecordType,
				Path:    path + ".record_type",
				Line:    nodeLine(node),
				Game:    game.Name,
				Message: fmt.Sprintf("game %q declares no record type %q", game.Name, typeID),
				Hint:    "Declare the record type under 'record_types' first",
			})
		}
	}

	base := parseEntryBase(game, path, node, result)

	// The entry's variant is implied by which payload field is present.
	diffNode := findNode(node, "difficulty")
	durNode := findNode(node, "duration_seconds")
	valNode := findNode(node, "value")

	payloads := 0
	actual := VariantCompleted
	actualField := ""
	for field, n := range map[string]*yaml.Node{
		"difficulty":       diffNode,
		"duration_seconds": durNode,
		"value":            valNode,
	} {
		if n != nil {
			payloads++
			actualField = field
		}
	}
	switch {
	case diffNode != nil:
		actual = VariantCompletedAtDifficulty
	case durNode != nil:
		actual = VariantTime
	case valNode != nil:
		actual = VariantScore
	}

	if payloads > 1 {
		result.AddError(&ValidationError{
			Code:    CodeFormat,
			Path:    path,
			Line:    nodeLine(node),
			Game:    game.Name,
			Message: "conflicting payload fields: a record carries at most one of difficulty, duration_seconds, value",
		})
		return
	}

	// A nil record type or a declaration whose kind failed to parse already
	// produced its own error; the entry cannot be typed against it.
	if rt == nil || rt.Kind == "" {
		return
	}

	declared := rt.Kind.Variant()
	if actual != declared {
		expectedDesc := string(rt.Kind)
		if f := declared.PayloadField(); f != "" {
			expectedDesc = fmt.Sprintf("%s (field %q)", rt.Kind, f)
		}
		actualDesc := "no payload field"
		if actualField != "" {
			actualDesc = fmt.Sprintf("field %q", actualField)
		}
		result.AddError(&ValidationError{
			Code:     CodeVariantMismatch,
			Path:     path,
			Line:     nodeLine(node),
			Game:     game.Name,
			Message:  fmt.Sprintf("entry shape does not match record type %q of kind %s", rt.ID, rt.Kind),
			Expected: expectedDesc,
			Actual:   actualDesc,
		})
		return
	}

	var entry Entry
	switch declared {
	case VariantCompleted:
		entry = CompletedEntry{base}
	case VariantCompletedAtDifficulty:
		label, valid := scalarString(diffNode)
		if !valid || label == "" {
			result.AddError(&ValidationError{
				Code:    CodeFormat,
				Path:    path + ".difficulty",
				Line:    nodeLine(diffNode),
				Game:    game.Name,
				Message: "difficulty must be a non-empty string",
			})
			return
		}
		if !game.HasDifficulty(label) {
			result.AddError(&ValidationError{
				Code:    CodeUnknownDifficulty,
				Path:    path + ".difficulty",
				Line:    nodeLine(diffNode),
				Column:  nodeColumn(diffNode),
				Game:    game.Name,
				Message: fmt.Sprintf("unknown difficulty: %q", label),
				Hint:    fmt.Sprintf("Game %q declares: %s", game.Name, strings.Join(game.Difficulties, ", ")),
			})
			return
		}
		entry = CompletedAtDifficultyEntry{EntryBase: base, Difficulty: label}
	case VariantTime:
		seconds, valid := scalarNumber(durNode)
		if !valid {
			result.AddError(&ValidationError{
				Code:     CodeFormat,
				Path:     path + ".duration_seconds",
				Line:     nodeLine(durNode),
				Game:     game.Name,
				Message:  "duration_seconds must be a number",
				Expected: "number",
				Actual:   nodeKindToString(durNode.Kind),
			})
			return
		}
		d, err := ParseDurationSeconds(seconds)
		if err != nil {
			result.AddError(&ValidationError{
				Code:    CodeFormat,
				Path:    path + ".duration_seconds",
				Line:    nodeLine(durNode),
				Game:    game.Name,
				Message: err.Error(),
			})
			return
		}
		entry = TimeEntry{EntryBase: base, Duration: d}
	case VariantScore:
		value, valid := scalarNumber(valNode)
		if !valid {
			result.AddError(&ValidationError{
				Code:     CodeFormat,
				Path:     path + ".value",
				Line:     nodeLine(valNode),
				Game:     game.Name,
				Message:  "value must be a number",
				Expected: "number",
				Actual:   nodeKindToString(valNode.Kind),
			})
			return
		}
		entry = ScoreEntry{EntryBase: base, Value: value}
	}

	if len(result.Errors) == before {
		game.Records = append(game.Records, Record{TypeID: rt.ID, Entry: entry})
	}
}

func parseEntryBase(game *Game, path string, node *yaml.Node, result *Result) EntryBase {
	var base EntryBase

	dateNode := findNode(node, "date")
	if dateNode == nil {
		result.AddError(&ValidationError{
			Code:    CodeFormat,
			Path:    path + ".date",
			Line:    nodeLine(node),
			Game:    game.Name,
			Message: "missing required field: date",
			Hint:    "Add a 'date' field in YYYY-MM-DD format",
		})
	} else if date, err := ParseDate(dateNode.Value); err != nil {
		result.AddError(&ValidationError{
			Code:     CodeFormat,
			Path:     path + ".date",
			Line:     nodeLine(dateNode),
			Column:   nodeColumn(dateNode),
			Game:     game.Name,
			Message:  err.Error(),
			Expected: "YYYY-MM-DD",
			Actual:   fmt.Sprintf("%q", dateNode.Value),
		})
	} else {
		base.Date = date
	}

	if descNode := findNode(node, "description"); descNode != nil {
		if desc, valid := scalarString(descNode); valid {
			base.Description = desc
		} else {
			result.AddError(&ValidationError{
				Code:     CodeFormat,
				Path:     path + ".description",
				Line:     nodeLine(descNode),
				Game:     game.Name,
				Message:  "description must be a string",
				Expected: "string",
				Actual:   nodeKindToString(descNode.Kind),
			})
		}
	}

	if shotNode := findNode(node, "screenshot"); shotNode != nil {
		if shot, valid := scalarString(shotNode); valid {
			base.Screenshot = shot
		} else {
			result.AddError(&ValidationError{
				Code:     CodeFormat,
				Path:     path + ".screenshot",
				Line:     nodeLine(shotNode),
				Game:     game.Name,
				Message:  "screenshot must be a relative path string",
				Expected: "string",
				Actual:   nodeKindToString(shotNode.Kind),
			})
		}
	}

	return base
}

// requireString extracts a required non-empty string field, reporting a
// format error against parent when it is missing or mistyped.
func requireString(node *yaml.Node, path, game string, parent *yaml.Node, result *Result) (string, bool) {
	if node == nil {
		field := path
		if i := strings.LastIndex(path, "."); i >= 0 {
			field = path[i+1:]
		}
		result.AddError(&ValidationError{
			Code:    CodeFormat,
			Path:    path,
			Line:    nodeLine(parent),
			Game:    game,
			Message: fmt.Sprintf("missing required field: %s", field),
		})
		return "", false
	}
	s, valid := scalarString(node)
	if !valid || strings.TrimSpace(s) == "" {
		result.AddError(&ValidationError{
			Code:     CodeFormat,
			Path:     path,
			Line:     nodeLine(node),
			Column:   nodeColumn(node),
			Game:     game,
			Message:  "must be a non-empty string",
			Expected: "string",
			Actual:   nodeKindToString(node.Kind),
		})
		return "", false
	}
	return s, true
}

func expectKind(node *yaml.Node, path, game string, kind yaml.Kind, kindName string, result *Result) bool {
	if node.Kind != kind {
		result.AddError(&ValidationError{
			Code:     CodeFormat,
			Path:     path,
			Line:     nodeLine(node),
			Column:   nodeColumn(node),
			Game:     game,
			Message:  fmt.Sprintf("wrong type for field '%s'", path),
			Expected: kindName,
			Actual:   nodeKindToString(node.Kind),
		})
		return false
	}
	return true
}

// getRootMapping returns the root mapping node from a document, or nil when
// the outer shape is not a mapping.
func getRootMapping(root *yaml.Node) *yaml.Node {
	if root == nil {
		return nil
	}
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		return getRootMapping(root.Content[0])
	}
	if root.Kind == yaml.MappingNode {
		return root
	}
	return nil
}

// findNode finds a value node by key in a mapping node.
func findNode(root *yaml.Node, key string) *yaml.Node {
	if root == nil || root.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == key {
			return root.Content[i+1]
		}
	}
	return nil
}

func scalarString(node *yaml.Node) (string, bool) {
	if node == nil || node.Kind != yaml.ScalarNode {
		return "", false
	}
	switch node.Tag {
	case "!!str", "":
		return node.Value, true
	default:
		return "", false
	}
}

func scalarNumber(node *yaml.Node) (float64, bool) {
	if node == nil || node.Kind != yaml.ScalarNode {
		return 0, false
	}
	switch node.Tag {
	case "!!int", "!!float", "":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func nodeLine(node *yaml.Node) int {
	if node == nil {
		return 0
	}
	return node.Line
}

func nodeColumn(node *yaml.Node) int {
	if node == nil {
		return 0
	}
	return node.Column
}

// nodeKindToString converts a yaml.Kind to a human-readable string.
func nodeKindToString(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "array"
	case yaml.MappingNode:
		return "object"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
