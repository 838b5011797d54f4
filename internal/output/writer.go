// Package output writes simulation results as JSON.
package output

import (
	"encoding/json"
	"io"
)

// GameWriter is the interface for writing games to output.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(game *JSONGame) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers, this also writes any pending output.
	Close() error
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games   []*JSONGame `json:"games"`
	Summary *Summary    `json:"summary,omitempty"`
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON document on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	pretty  bool
	games   []*JSONGame
	summary *Summary
	single  bool // If true, write each game immediately as one line
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer, pretty bool) *JSONWriter {
	return &JSONWriter{
		w:      w,
		pretty: pretty,
		games:  make([]*JSONGame, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game
// immediately, one JSON object per line.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(game *JSONGame) error {
	if jw.single {
		return json.NewEncoder(jw.w).Encode(game)
	}

	// Buffer for batch output
	jw.games = append(jw.games, game)
	return nil
}

// SetSummary attaches a summary to the batch document. In single mode the
// summary is written as a final line on Flush.
func (jw *JSONWriter) SetSummary(s *Summary) {
	jw.summary = s
}

// Flush writes all buffered games, and the summary if set.
func (jw *JSONWriter) Flush() error {
	if jw.single {
		if jw.summary == nil {
			return nil
		}
		err := json.NewEncoder(jw.w).Encode(jw.summary)
		jw.summary = nil
		return err
	}
	if len(jw.games) == 0 && jw.summary == nil {
		return nil
	}

	output := &JSONOutput{Games: jw.games, Summary: jw.summary}
	err := jw.encoder().Encode(output)

	// Clear buffer after writing
	jw.games = jw.games[:0]
	jw.summary = nil

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encoder() *json.Encoder {
	enc := json.NewEncoder(jw.w)
	if jw.pretty {
		enc.SetIndent("", "  ")
	}
	return enc
}

// WriteSummary writes s alone as a JSON object.
func WriteSummary(w io.Writer, s *Summary, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(s)
}
